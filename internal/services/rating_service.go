package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/recipeshare/server/internal/apierr"
	"github.com/recipeshare/server/internal/authz"
	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/store"
)

type RatingService struct {
	store *store.Store
}

func NewRatingService(st *store.Store) *RatingService {
	return &RatingService{store: st}
}

func (s *RatingService) Summary(ctx context.Context, creds authz.Credentials, recipeID string) (*dto.RatingSummary, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor := authz.CurrentUser(ds.Users, creds)

	recipe := ds.RecipeByID(recipeID)
	if recipe == nil || !recipeVisible(actor, recipe) {
		return nil, apierr.NotFound("Recipe not found.")
	}

	return summaryFor(ds, recipeID, actor), nil
}

func (s *RatingService) ListByRecipe(ctx context.Context, creds authz.Credentials, recipeID string) ([]models.Rating, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor := authz.CurrentUser(ds.Users, creds)

	recipe := ds.RecipeByID(recipeID)
	if recipe == nil || !recipeVisible(actor, recipe) {
		return nil, apierr.NotFound("Recipe not found.")
	}

	ratings := make([]models.Rating, 0)
	for _, r := range ds.Ratings {
		if r.RecipeID == recipeID {
			ratings = append(ratings, r)
		}
	}
	return ratings, nil
}

// Rate upserts the caller's rating for a public recipe: a repeat call updates
// the existing row rather than inserting a second one.
func (s *RatingService) Rate(ctx context.Context, creds authz.Credentials, recipeID string, value float64) (*dto.RatingSummary, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return nil, err
	}
	if !authz.CanExplore(actor) {
		return nil, apierr.Forbidden("Ratings are not available for this role.")
	}

	recipe := ds.RecipeByID(recipeID)
	if recipe == nil || !recipe.IsPublic {
		return nil, apierr.NotFound("Recipe not found.")
	}

	v := int(math.Floor(value))
	if v < 1 || v > 5 {
		return nil, apierr.Validation("Rating must be between 1 and 5.")
	}

	updated, err := s.store.Update(ctx, func(d *models.Dataset) {
		for i := range d.Ratings {
			if d.Ratings[i].RecipeID == recipeID && d.Ratings[i].UserID == actor.ID {
				d.Ratings[i].Value = v
				return
			}
		}
		d.Ratings = append(d.Ratings, models.Rating{
			ID:        uuid.NewString(),
			RecipeID:  recipeID,
			UserID:    actor.ID,
			Value:     v,
			CreatedAt: time.Now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}

	return summaryFor(updated, recipeID, actor), nil
}

func summaryFor(ds *models.Dataset, recipeID string, actor *models.User) *dto.RatingSummary {
	var values []int
	var my *int
	for _, r := range ds.Ratings {
		if r.RecipeID != recipeID {
			continue
		}
		values = append(values, r.Value)
		if actor != nil && r.UserID == actor.ID {
			v := r.Value
			my = &v
		}
	}
	return &dto.RatingSummary{
		RecipeID:  recipeID,
		AvgRating: avgOf(values),
		Count:     len(values),
		MyRating:  my,
	}
}
