package services

import (
	"log/slog"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/recipeshare/server/internal/apierr"
	"github.com/recipeshare/server/internal/authz"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/store"

	"github.com/stretchr/testify/require"
)

// Fixture user ids. Ana authors r1 (public) and r2 (private); Noah authors
// r3 (public).
const (
	anaID      = "u_ana"      // creator
	benID      = "u_ben"      // explorer
	noahID     = "u_noah"     // creator
	managerID  = "u_manager"  // manager
	adminID    = "u_admin"    // admin
	fixtureKey = "Password123!"
)

var fixtureHash = func() string {
	h, err := bcrypt.GenerateFromPassword([]byte(fixtureKey), bcrypt.MinCost)
	if err != nil {
		slog.Error("fixture hash failed", "error", err)
	}
	return string(h)
}()

func fixtureDataset() *models.Dataset {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	at := func(days int) time.Time { return base.AddDate(0, 0, days) }

	users := []models.User{
		{ID: anaID, Name: "Ana Vega", Email: "ana@example.com", Role: models.RoleCreator, CreatedAt: at(0)},
		{ID: benID, Name: "Ben Ortiz", Email: "ben@example.com", Role: models.RoleExplorer, CreatedAt: at(1)},
		{ID: noahID, Name: "Noah Lam", Email: "noah@example.com", Role: models.RoleCreator, CreatedAt: at(2)},
		{ID: managerID, Name: "Mia Park", Email: "mia@example.com", Role: models.RoleManager, CreatedAt: at(3)},
		{ID: adminID, Name: "Ada Byrne", Email: "ada@example.com", Role: models.RoleAdmin, CreatedAt: at(4)},
	}

	private := make([]models.UserPrivate, 0, len(users))
	for _, u := range users {
		private = append(private, models.UserPrivate{UserID: u.ID, PasswordHash: fixtureHash})
	}

	return &models.Dataset{
		Version:     models.SchemaVersion,
		Users:       users,
		UserPrivate: private,
		Categories: []models.Category{
			{ID: "c1", Name: "Soups", CreatedAt: at(0)},
			{ID: "c2", Name: "Salads", CreatedAt: at(0)},
			{ID: "c3", Name: "Baking", CreatedAt: at(0)},
		},
		Recipes: []models.Recipe{
			{
				ID: "r1", Title: "Tomato Soup", Description: "Rich and creamy",
				CategoryID: "c1", Tags: []string{"comfort", "quick"},
				Ingredients: []models.Ingredient{{Text: "Tomatoes"}, {Text: "Cream"}},
				Steps:       []string{"Simmer", "Blend"},
				AuthorID:    anaID, CreatedAt: at(1), UpdatedAt: at(1),
				IsPublic: true, Views: 10,
			},
			{
				ID: "r2", Title: "Secret Stew", Description: "Work in progress",
				CategoryID: "c1", Tags: []string{"comfort"},
				Ingredients: []models.Ingredient{{Text: "Beef"}},
				Steps:       []string{"Stew"},
				AuthorID:    anaID, CreatedAt: at(2), UpdatedAt: at(2),
				IsPublic: false, Views: 0,
			},
			{
				ID: "r3", Title: "Citrus Salad", Description: "Bright and fresh",
				CategoryID: "c2", Tags: []string{"healthy", "quick"},
				Ingredients: []models.Ingredient{{Text: "Oranges"}, {Text: "Fennel"}},
				Steps:       []string{"Slice", "Toss"},
				AuthorID:    noahID, CreatedAt: at(3), UpdatedAt: at(3),
				IsPublic: true, Views: 50,
			},
		},
		Comments: []models.Comment{
			{ID: "com1", RecipeID: "r1", AuthorID: benID, Body: "Loved it", CreatedAt: at(4), Status: models.CommentActive},
			{ID: "com2", RecipeID: "r1", AuthorID: noahID, Body: "Too salty", CreatedAt: at(5), Status: models.CommentActive},
		},
		Ratings: []models.Rating{
			{ID: "rate1", RecipeID: "r1", UserID: benID, Value: 4, CreatedAt: at(4)},
			{ID: "rate2", RecipeID: "r3", UserID: benID, Value: 5, CreatedAt: at(4)},
			{ID: "rate3", RecipeID: "r3", UserID: anaID, Value: 3, CreatedAt: at(5)},
		},
		Favorites: []models.Favorite{
			{ID: "fav1", RecipeID: "r3", UserID: benID, CreatedAt: at(5)},
		},
		Reports: []models.Report{
			{
				ID: "rep1", ReporterID: benID, TargetType: models.ReportTargetComment,
				TargetID: "com2", Reason: "Spam", Status: models.ReportOpen, CreatedAt: at(6),
			},
			{
				ID: "rep2", ReporterID: benID, TargetType: models.ReportTargetRecipe,
				TargetID: "r3", Reason: "Copyright", Status: models.ReportOpen, CreatedAt: at(7),
			},
		},
	}
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(store.NewMemoryKV(), fixtureDataset)
}

func credsFor(userID string) authz.Credentials {
	return authz.Credentials{Token: authz.MakeToken(userID)}
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := apierr.From(err)
	require.True(t, ok, "expected api error, got %v", err)
	require.Equal(t, code, apiErr.Code)
}
