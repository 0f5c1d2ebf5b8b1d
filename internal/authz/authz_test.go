package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeshare/server/internal/apierr"
	"github.com/recipeshare/server/internal/models"
)

var testUsers = []models.User{
	{ID: "u1", Name: "Ana", Role: models.RoleCreator},
	{ID: "u2", Name: "Ben", Role: models.RoleExplorer},
	{ID: "u3", Name: "Mia", Role: models.RoleManager},
	{ID: "u4", Name: "Ada", Role: models.RoleAdmin},
}

func TestTokenRoundTrip(t *testing.T) {
	token := MakeToken("u1")
	assert.True(t, len(token) > len("mock.u1."))

	id, ok := TokenUserID(token)
	require.True(t, ok)
	assert.Equal(t, "u1", id)
}

func TestTokenUserIDRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"mock",
		"mock.u1",
		"jwt.u1.abc",
		"mock..abc",
	}
	for _, token := range cases {
		_, ok := TokenUserID(token)
		assert.False(t, ok, "token %q should not parse", token)
	}
}

func TestCurrentUser(t *testing.T) {
	assert.Nil(t, CurrentUser(testUsers, Anonymous))
	assert.Nil(t, CurrentUser(testUsers, Credentials{Token: "garbage"}))
	assert.Nil(t, CurrentUser(testUsers, Credentials{Token: MakeToken("gone")}))

	user := CurrentUser(testUsers, Credentials{Token: MakeToken("u2")})
	require.NotNil(t, user)
	assert.Equal(t, "Ben", user.Name)
	assert.Equal(t, models.RoleExplorer, user.Role)
}

func TestCurrentUserRoleOverride(t *testing.T) {
	creds := Credentials{Token: MakeToken("u2"), RoleOverride: models.RoleAdmin}
	user := CurrentUser(testUsers, creds)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleAdmin, user.Role)

	// The underlying account is untouched.
	assert.Equal(t, models.RoleExplorer, testUsers[1].Role)

	// An invalid override is ignored.
	creds.RoleOverride = models.Role("superuser")
	user = CurrentUser(testUsers, creds)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleExplorer, user.Role)
}

func TestRequireUser(t *testing.T) {
	_, err := RequireUser(testUsers, Anonymous)
	require.Error(t, err)
	apiErr, ok := apierr.From(err)
	require.True(t, ok)
	assert.Equal(t, apierr.CodeAuthRequired, apiErr.Code)

	user, err := RequireUser(testUsers, Credentials{Token: MakeToken("u1")})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestRolePredicates(t *testing.T) {
	creator := &testUsers[0]
	explorer := &testUsers[1]
	manager := &testUsers[2]
	admin := &testUsers[3]

	assert.True(t, CanExplore(creator))
	assert.True(t, CanExplore(explorer))
	assert.False(t, CanExplore(manager))
	assert.False(t, CanExplore(admin))

	assert.True(t, CanCreateRecipes(creator))
	assert.False(t, CanCreateRecipes(explorer))

	assert.False(t, CanModerate(creator))
	assert.False(t, CanModerate(explorer))
	assert.True(t, CanModerate(manager))
	assert.True(t, CanModerate(admin))
}

func TestRequireRole(t *testing.T) {
	explorer := &testUsers[1]
	admin := &testUsers[3]

	assert.NoError(t, RequireRole(admin, models.RoleAdmin))

	err := RequireRole(explorer, models.RoleManager, models.RoleAdmin)
	require.Error(t, err)
	apiErr, ok := apierr.From(err)
	require.True(t, ok)
	assert.Equal(t, apierr.CodeForbidden, apiErr.Code)
	assert.Equal(t, 403, apiErr.Status)
}
