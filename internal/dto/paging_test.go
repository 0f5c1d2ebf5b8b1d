package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0))
	assert.Equal(t, 1, ClampPage(-3))
	assert.Equal(t, 7, ClampPage(7))
}

func TestClampPageSize(t *testing.T) {
	assert.Equal(t, 12, ClampPageSize(0, 12))
	assert.Equal(t, 1, ClampPageSize(-1, 12))
	assert.Equal(t, 50, ClampPageSize(200, 12))
	assert.Equal(t, 25, ClampPageSize(25, 12))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, 1, 2))
	assert.Equal(t, []int{3, 4}, Paginate(items, 2, 2))
	assert.Equal(t, []int{5}, Paginate(items, 3, 2))
	assert.Empty(t, Paginate(items, 4, 2))
	assert.Empty(t, Paginate([]int{}, 1, 10))
}
