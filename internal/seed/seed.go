// Package seed builds the initial demo dataset. The structure of the data is
// deterministic: every slice draws from its own fixed-seed generator, so a
// reset always produces the same users, recipes and relations.
package seed

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/recipeshare/server/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is the password of every seeded account and the value an admin
// password reset falls back to.
const DemoPassword = "Password123!"

var tags = []string{
	"quick", "family", "spicy", "healthy", "comfort", "budget",
	"high-protein", "gluten-free", "vegan", "vegetarian", "one-pan",
	"weeknight", "meal-prep", "dessert", "breakfast",
}

var categoryNames = []string{
	"Breakfast", "Lunch", "Dinner", "Desserts", "Vegetarian",
	"Vegan", "Gluten-Free", "Soups", "Salads", "Baking",
}

var recipeTitles = []string{
	"Lemon Garlic Pasta",
	"One-Pan Chicken & Veggies",
	"Creamy Tomato Soup",
	"Sheet Pan Nachos",
	"Classic Banana Bread",
	"Crispy Tofu Bowl",
	"Overnight Oats",
	"Spicy Chickpea Curry",
	"Berry Yogurt Parfait",
	"Herb Roasted Potatoes",
}

var commentSnippets = []string{
	"Made this tonight—so good!",
	"Loved the flavors. Will make again.",
	"I swapped in what I had and it worked great.",
	"Perfect weeknight recipe.",
	"Next time I'll add more spice.",
	"My family asked for seconds.",
}

var reportReasons = []string{"Spam", "Inappropriate", "Copyright", "Harassment", "Other"}

// ID builds the deterministic id used for seeded rows and sequence-numbered
// inserts: <prefix>_<n in base 36>.
func ID(prefix string, n int) string {
	return prefix + "_" + strconv.FormatInt(int64(n), 36)
}

// Dataset generates a complete seeded container.
func Dataset() *models.Dataset {
	users, userPrivate := seedUsers()
	categories := seedCategories()
	recipes := seedRecipes(users, categories)
	comments := seedComments(users, recipes)
	ratings := seedRatings(users, recipes)
	favorites := seedFavorites(users, recipes)
	reports := seedReports(users, recipes, comments)

	return &models.Dataset{
		Version:     models.SchemaVersion,
		Users:       users,
		UserPrivate: userPrivate,
		Categories:  categories,
		Recipes:     recipes,
		Comments:    comments,
		Ratings:     ratings,
		Favorites:   favorites,
		Reports:     reports,
	}
}

func demoPasswordHash() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on oversized input; the demo password is fixed.
		slog.Error("failed to hash demo password", "error", err)
		return ""
	}
	return string(hash)
}

func seedUsers() ([]models.User, []models.UserPrivate) {
	createdAt := time.Now().UTC()
	hash := demoPasswordHash()

	users := []models.User{
		{ID: "u_demo", Name: "Demo User", Email: "user@demo.com", Role: models.RoleCreator, CreatedAt: createdAt},
		{ID: "u_manager", Name: "Demo Manager", Email: "manager@demo.com", Role: models.RoleManager, CreatedAt: createdAt},
		{ID: "u_admin", Name: "Demo Admin", Email: "admin@demo.com", Role: models.RoleAdmin, CreatedAt: createdAt},
	}

	extra := []struct {
		name  string
		email string
		role  models.Role
	}{
		{"Ava Cook", "ava@example.com", models.RoleExplorer},
		{"Noah Baker", "noah@example.com", models.RoleCreator},
		{"Mia Chen", "mia@example.com", models.RoleExplorer},
		{"Liam Patel", "liam@example.com", models.RoleExplorer},
		{"Sophia Nguyen", "sophia@example.com", models.RoleCreator},
		{"Ethan Rivera", "ethan@example.com", models.RoleExplorer},
		{"Isabella Rossi", "isabella@example.com", models.RoleExplorer},
		{"Lucas Silva", "lucas@example.com", models.RoleExplorer},
		{"Charlotte King", "charlotte@example.com", models.RoleExplorer},
	}
	for i, u := range extra {
		users = append(users, models.User{
			ID:        ID("u", i+1),
			Name:      u.name,
			Email:     u.email,
			Role:      u.role,
			CreatedAt: createdAt,
		})
	}

	private := make([]models.UserPrivate, 0, len(users))
	for _, u := range users {
		private = append(private, models.UserPrivate{UserID: u.ID, PasswordHash: hash})
	}
	return users, private
}

func seedCategories() []models.Category {
	createdAt := time.Now().UTC()
	categories := make([]models.Category, 0, len(categoryNames))
	for i, name := range categoryNames {
		categories = append(categories, models.Category{
			ID:          ID("c", i+1),
			Name:        name,
			Description: fmt.Sprintf("Hand-picked %s recipes with clean ingredients and cozy vibes.", strings.ToLower(name)),
			ImageURL:    fmt.Sprintf("https://picsum.photos/seed/category-%d/1200/700", i+1),
			CreatedAt:   createdAt,
		})
	}
	return categories
}

func ingredientsFor(title string, rng *RNG) []models.Ingredient {
	base := []string{
		"Olive oil", "Salt", "Black pepper", "Garlic", "Lemon", "Onion",
		"Butter", "Flour", "Eggs", "Milk", "Tomatoes",
	}

	picks := PickMany(rng, base, rng.Int(5, 8))
	picks = append(picks, firstWord(title)+" (optional)")

	ingredients := make([]models.Ingredient, 0, len(picks))
	for _, text := range picks {
		ingredients = append(ingredients, models.Ingredient{Text: text})
	}
	return ingredients
}

func stepsFor(rng *RNG) []string {
	steps := []string{
		"Prep ingredients and preheat as needed.",
		"Mix and season until balanced.",
		"Cook over medium heat, stirring occasionally.",
		"Taste and adjust seasoning.",
		"Serve and garnish.",
	}
	return steps[:rng.Int(3, 5)]
}

func seedRecipes(users []models.User, categories []models.Category) []models.Recipe {
	rng := NewRNG(1337)
	now := time.Now().UTC()

	recipes := make([]models.Recipe, 0, 50)
	for i := 1; i <= 50; i++ {
		title := fmt.Sprintf("%s #%d", Pick(rng, recipeTitles), i)
		category := Pick(rng, categories)
		author := Pick(rng, users)

		recipes = append(recipes, models.Recipe{
			ID:          ID("r", i),
			Title:       title,
			Description: "A modern, approachable recipe with clear steps, minimal fuss, and maximum flavor. Perfect for weeknights.",
			ImageURL:    fmt.Sprintf("https://picsum.photos/seed/recipe-%d/1200/800", i),
			CategoryID:  category.ID,
			Tags:        PickMany(rng, tags, rng.Int(2, 5)),
			Ingredients: ingredientsFor(title, rng),
			Steps:       stepsFor(rng),
			AuthorID:    author.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
			IsPublic:    true,
			Views:       rng.Int(0, 2500),
		})
	}
	return recipes
}

func seedRatings(users []models.User, recipes []models.Recipe) []models.Rating {
	rng := NewRNG(2024)
	var ratings []models.Rating
	n := 1

	raterPool := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role != models.RoleManager {
			raterPool = append(raterPool, u)
		}
	}

	for _, recipe := range recipes {
		count := rng.Int(0, 10)
		for _, rater := range PickMany(rng, raterPool, count) {
			ratings = append(ratings, models.Rating{
				ID:        ID("rate", n),
				RecipeID:  recipe.ID,
				UserID:    rater.ID,
				Value:     rng.Int(2, 5),
				CreatedAt: time.Now().UTC(),
			})
			n++
		}
	}
	return ratings
}

func seedComments(users []models.User, recipes []models.Recipe) []models.Comment {
	rng := NewRNG(777)
	var comments []models.Comment
	n := 1

	for _, recipe := range recipes[:min(30, len(recipes))] {
		count := rng.Int(0, 4)
		for _, author := range PickMany(rng, users, count) {
			comments = append(comments, models.Comment{
				ID:        ID("com", n),
				RecipeID:  recipe.ID,
				AuthorID:  author.ID,
				Body:      Pick(rng, commentSnippets),
				CreatedAt: time.Now().UTC(),
				Status:    models.CommentActive,
			})
			n++
		}
	}
	return comments
}

func seedFavorites(users []models.User, recipes []models.Recipe) []models.Favorite {
	rng := NewRNG(5150)
	var favorites []models.Favorite
	n := 1

	for _, user := range users {
		if user.Role == models.RoleManager {
			continue
		}
		count := rng.Int(0, 12)
		for _, recipe := range PickMany(rng, recipes, count) {
			favorites = append(favorites, models.Favorite{
				ID:        ID("fav", n),
				RecipeID:  recipe.ID,
				UserID:    user.ID,
				CreatedAt: time.Now().UTC(),
			})
			n++
		}
	}
	return favorites
}

func seedReports(users []models.User, recipes []models.Recipe, comments []models.Comment) []models.Report {
	rng := NewRNG(9001)
	var reports []models.Report
	n := 1

	for _, c := range comments[:min(12, len(comments))] {
		reports = append(reports, models.Report{
			ID:         ID("rep", n),
			ReporterID: Pick(rng, users).ID,
			TargetType: models.ReportTargetComment,
			TargetID:   c.ID,
			Reason:     Pick(rng, reportReasons),
			Details:    "This feels off for a recipe site.",
			Status:     Pick(rng, []models.ReportStatus{models.ReportOpen, models.ReportOpen, models.ReportResolved}),
			CreatedAt:  time.Now().UTC(),
		})
		n++
	}

	for _, r := range recipes[:min(10, len(recipes))] {
		reports = append(reports, models.Report{
			ID:         ID("rep", n),
			ReporterID: Pick(rng, users).ID,
			TargetType: models.ReportTargetRecipe,
			TargetID:   r.ID,
			Reason:     Pick(rng, reportReasons),
			Details:    "Please review this content.",
			Status:     Pick(rng, []models.ReportStatus{models.ReportOpen, models.ReportRemoved, models.ReportResolved}),
			CreatedAt:  time.Now().UTC(),
		})
		n++
	}
	return reports
}

func firstWord(s string) string {
	word, _, _ := strings.Cut(s, " ")
	return word
}
