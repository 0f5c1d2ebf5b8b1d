package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/recipeshare/server/internal/apierr"
	"github.com/recipeshare/server/internal/authz"
	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/store"
)

type FavoriteService struct {
	store *store.Store
}

func NewFavoriteService(st *store.Store) *FavoriteService {
	return &FavoriteService{store: st}
}

// ListMine pages the caller's favorited recipes. Only public recipes appear;
// a recipe pulled private drops out of the list without unfavoriting it.
func (s *FavoriteService) ListMine(ctx context.Context, creds authz.Credentials, q dto.RecipeListQuery) (*dto.PagedResult[dto.RecipeListItem], error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return nil, err
	}
	if !authz.CanExplore(actor) {
		return nil, apierr.Forbidden("Favorites are not available for this role.")
	}

	myFavs := make(map[string]bool)
	for _, f := range ds.Favorites {
		if f.UserID == actor.ID {
			myFavs[f.RecipeID] = true
		}
	}

	ratings := ratingValuesByRecipe(ds)
	favoritesCount := favoritesCountByRecipe(ds)

	items := make([]dto.RecipeListItem, 0, len(myFavs))
	for i := range ds.Recipes {
		recipe := &ds.Recipes[i]
		if !recipe.IsPublic || !myFavs[recipe.ID] {
			continue
		}
		items = append(items, listItemFor(recipe, ratings[recipe.ID], favoritesCount[recipe.ID]))
	}

	page := dto.ClampPage(q.Page)
	pageSize := dto.ClampPageSize(q.PageSize, defaultRecipePageSize)
	return &dto.PagedResult[dto.RecipeListItem]{
		Items:    dto.Paginate(items, page, pageSize),
		Total:    len(items),
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Toggle flips the favorite for (recipe, caller) and reports the new state.
func (s *FavoriteService) Toggle(ctx context.Context, creds authz.Credentials, recipeID string) (bool, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return false, err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return false, err
	}
	if !authz.CanExplore(actor) {
		return false, apierr.Forbidden("Favorites are not available for this role.")
	}

	recipe := ds.RecipeByID(recipeID)
	if recipe == nil || !recipe.IsPublic {
		return false, apierr.NotFound("Recipe not found.")
	}

	// The presence check and the flip run in one mutation; a check against a
	// dataset loaded before the lock would let two concurrent toggles both
	// insert.
	var nowFavorite bool
	_, err = s.store.Update(ctx, func(d *models.Dataset) {
		kept := d.Favorites[:0]
		removed := false
		for _, f := range d.Favorites {
			if f.RecipeID == recipeID && f.UserID == actor.ID {
				removed = true
				continue
			}
			kept = append(kept, f)
		}
		if removed {
			d.Favorites = kept
			nowFavorite = false
			return
		}
		d.Favorites = append(d.Favorites, models.Favorite{
			ID:        uuid.NewString(),
			RecipeID:  recipeID,
			UserID:    actor.ID,
			CreatedAt: time.Now().UTC(),
		})
		nowFavorite = true
	})
	return nowFavorite, err
}

// IsFavorite reports whether the caller favorited the recipe; anonymous
// callers get false rather than an error.
func (s *FavoriteService) IsFavorite(ctx context.Context, creds authz.Credentials, recipeID string) (bool, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return false, err
	}
	actor := authz.CurrentUser(ds.Users, creds)
	if actor == nil {
		return false, nil
	}
	for _, f := range ds.Favorites {
		if f.RecipeID == recipeID && f.UserID == actor.ID {
			return true, nil
		}
	}
	return false, nil
}
