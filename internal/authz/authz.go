// Package authz resolves the acting user from a session token and expresses
// the role rules as pure predicates, independent of storage and transport.
package authz

import (
	"github.com/recipeshare/server/internal/apierr"
	"github.com/recipeshare/server/internal/models"
)

// Credentials is what the transport layer hands to every service call: the
// raw bearer token and, outside production, an optional role override used
// for manual QA of permission paths.
type Credentials struct {
	Token        string
	RoleOverride models.Role
}

// Anonymous is the zero credential set.
var Anonymous = Credentials{}

// CurrentUser resolves creds against the user collection, or nil when there
// is no usable session. A valid role override substitutes the effective role
// without touching the underlying account.
func CurrentUser(users []models.User, creds Credentials) *models.User {
	if creds.Token == "" {
		return nil
	}
	userID, ok := TokenUserID(creds.Token)
	if !ok {
		return nil
	}

	var user *models.User
	for i := range users {
		if users[i].ID == userID {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return nil
	}

	if !creds.RoleOverride.Valid() || creds.RoleOverride == user.Role {
		return user
	}
	overridden := *user
	overridden.Role = creds.RoleOverride
	return &overridden
}

// RequireUser resolves creds or fails with the auth-required error.
func RequireUser(users []models.User, creds Credentials) (*models.User, error) {
	user := CurrentUser(users, creds)
	if user == nil {
		return nil, apierr.AuthRequired()
	}
	return user, nil
}

// HasRole reports whether the user's role is in the allowed set.
func HasRole(user *models.User, roles ...models.Role) bool {
	for _, r := range roles {
		if user.Role == r {
			return true
		}
	}
	return false
}

// RequireRole fails with the forbidden error when the user's role is not in
// the allowed set.
func RequireRole(user *models.User, roles ...models.Role) error {
	if !HasRole(user, roles...) {
		return apierr.Forbidden("")
	}
	return nil
}

// CanExplore gates favorites, ratings, comments and reports.
func CanExplore(user *models.User) bool {
	return user.Role == models.RoleExplorer || user.Role == models.RoleCreator
}

// CanCreateRecipes is true only for creators.
func CanCreateRecipes(user *models.User) bool {
	return user.Role == models.RoleCreator
}

// CanModerate is true for the privileged roles that bypass visibility.
func CanModerate(user *models.User) bool {
	return user.Role == models.RoleAdmin || user.Role == models.RoleManager
}
