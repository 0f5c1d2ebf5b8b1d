package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeshare/server/internal/apierr"
	"github.com/recipeshare/server/internal/authz"
)

func TestRateInsertsThenUpdates(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewRatingService(st)

	// Ana has no rating on r1 yet; Ben's 4 is already there.
	summary, err := svc.Rate(ctx, credsFor(anaID), "r1", 5)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 4.5, summary.AvgRating)
	require.NotNil(t, summary.MyRating)
	assert.Equal(t, 5, *summary.MyRating)

	// A repeat call updates the same row instead of inserting.
	summary, err = svc.Rate(ctx, credsFor(anaID), "r1", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 3.0, summary.AvgRating)
	require.NotNil(t, summary.MyRating)
	assert.Equal(t, 2, *summary.MyRating)

	ds, err := st.Load(ctx)
	require.NoError(t, err)
	mine := 0
	for _, r := range ds.Ratings {
		if r.RecipeID == "r1" && r.UserID == anaID {
			mine++
		}
	}
	assert.Equal(t, 1, mine)
}

func TestRateFloorsFractionalValues(t *testing.T) {
	svc := NewRatingService(newTestStore(t))

	summary, err := svc.Rate(context.Background(), credsFor(anaID), "r1", 3.9)
	require.NoError(t, err)
	require.NotNil(t, summary.MyRating)
	assert.Equal(t, 3, *summary.MyRating)
}

func TestRateRejectsOutOfRange(t *testing.T) {
	ctx := context.Background()
	svc := NewRatingService(newTestStore(t))

	_, err := svc.Rate(ctx, credsFor(anaID), "r1", 0)
	requireCode(t, err, apierr.CodeValidation)

	_, err = svc.Rate(ctx, credsFor(anaID), "r1", 6)
	requireCode(t, err, apierr.CodeValidation)

	// 0.9 floors to 0, below range.
	_, err = svc.Rate(ctx, credsFor(anaID), "r1", 0.9)
	requireCode(t, err, apierr.CodeValidation)
}

func TestRatePermissionsAndTargets(t *testing.T) {
	ctx := context.Background()
	svc := NewRatingService(newTestStore(t))

	_, err := svc.Rate(ctx, authz.Anonymous, "r1", 4)
	requireCode(t, err, apierr.CodeAuthRequired)

	_, err = svc.Rate(ctx, credsFor(managerID), "r1", 4)
	requireCode(t, err, apierr.CodeForbidden)

	// Private and missing recipes both read as not-found.
	_, err = svc.Rate(ctx, credsFor(benID), "r2", 4)
	requireCode(t, err, apierr.CodeNotFound)

	_, err = svc.Rate(ctx, credsFor(benID), "missing", 4)
	requireCode(t, err, apierr.CodeNotFound)
}

func TestRatingSummary(t *testing.T) {
	ctx := context.Background()
	svc := NewRatingService(newTestStore(t))

	// r3 carries Ben's 5 and Ana's 3.
	summary, err := svc.Summary(ctx, credsFor(benID), "r3")
	require.NoError(t, err)
	assert.Equal(t, "r3", summary.RecipeID)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 4.0, summary.AvgRating)
	require.NotNil(t, summary.MyRating)
	assert.Equal(t, 5, *summary.MyRating)

	// Anonymous callers get the aggregate without a personal rating.
	summary, err = svc.Summary(ctx, authz.Anonymous, "r3")
	require.NoError(t, err)
	assert.Nil(t, summary.MyRating)

	_, err = svc.Summary(ctx, authz.Anonymous, "r2")
	requireCode(t, err, apierr.CodeNotFound)
}

func TestListRatingsByRecipe(t *testing.T) {
	svc := NewRatingService(newTestStore(t))

	ratings, err := svc.ListByRecipe(context.Background(), authz.Anonymous, "r3")
	require.NoError(t, err)
	assert.Len(t, ratings, 2)
}
