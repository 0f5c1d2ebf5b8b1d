package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/recipeshare/server/internal/apierr"
	"github.com/recipeshare/server/internal/authz"
	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/store"
)

type CommentService struct {
	store *store.Store
}

func NewCommentService(st *store.Store) *CommentService {
	return &CommentService{store: st}
}

// ListByRecipe returns all comments on a visible recipe, newest first.
// Soft-removed comments stay in the list with their status flag.
func (s *CommentService) ListByRecipe(ctx context.Context, creds authz.Credentials, recipeID string) ([]models.Comment, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor := authz.CurrentUser(ds.Users, creds)

	recipe := ds.RecipeByID(recipeID)
	if recipe == nil || !recipeVisible(actor, recipe) {
		return nil, apierr.NotFound("Recipe not found.")
	}

	comments := make([]models.Comment, 0)
	for _, c := range ds.Comments {
		if c.RecipeID == recipeID {
			comments = append(comments, c)
		}
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (s *CommentService) Create(ctx context.Context, creds authz.Credentials, recipeID string, req dto.CommentCreate) (*models.Comment, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return nil, err
	}
	if !authz.CanExplore(actor) {
		return nil, apierr.Forbidden("Comments are not available for this role.")
	}

	recipe := ds.RecipeByID(recipeID)
	if recipe == nil || !recipe.IsPublic {
		return nil, apierr.NotFound("Recipe not found.")
	}

	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, apierr.Validation("Comment cannot be empty.")
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		RecipeID:  recipeID,
		AuthorID:  actor.ID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
		Status:    models.CommentActive,
	}

	if _, err := s.store.Update(ctx, func(d *models.Dataset) {
		d.Comments = append([]models.Comment{comment}, d.Comments...)
	}); err != nil {
		return nil, err
	}
	return &comment, nil
}

// Remove soft-deletes a comment. Allowed for moderators, the comment's
// author, and creators moderating their own recipe.
func (s *CommentService) Remove(ctx context.Context, creds authz.Credentials, commentID string) error {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return err
	}

	comment := ds.CommentByID(commentID)
	if comment == nil {
		return apierr.NotFound("Comment not found.")
	}
	recipe := ds.RecipeByID(comment.RecipeID)
	if recipe == nil {
		return apierr.NotFound("Comment not found.")
	}

	canModerate := authz.CanModerate(actor)
	canRemoveOwn := comment.AuthorID == actor.ID
	canRemoveOnOwnRecipe := actor.Role == models.RoleCreator && recipe.AuthorID == actor.ID
	if !canModerate && !canRemoveOwn && !canRemoveOnOwnRecipe {
		return apierr.Forbidden("You do not have permission to remove this comment.")
	}

	_, err = s.store.Update(ctx, func(d *models.Dataset) {
		if c := d.CommentByID(commentID); c != nil {
			c.Status = models.CommentRemoved
		}
	})
	return err
}
