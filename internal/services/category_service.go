package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/recipeshare/server/internal/apierr"
	"github.com/recipeshare/server/internal/authz"
	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/store"
)

type CategoryService struct {
	store *store.Store
}

func NewCategoryService(st *store.Store) *CategoryService {
	return &CategoryService{store: st}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Category, len(ds.Categories))
	copy(out, ds.Categories)
	return out, nil
}

func (s *CategoryService) Create(ctx context.Context, creds authz.Credentials, req dto.CategoryUpsert) (*models.Category, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireRole(actor, models.RoleManager, models.RoleAdmin); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apierr.Validation("Category name is required.")
	}
	for _, c := range ds.Categories {
		if strings.EqualFold(c.Name, name) {
			return nil, apierr.Duplicate("A category with that name already exists.")
		}
	}

	category := models.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := s.store.Update(ctx, func(d *models.Dataset) {
		d.Categories = append([]models.Category{category}, d.Categories...)
	}); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Update(ctx context.Context, creds authz.Credentials, id string, req dto.CategoryUpsert) (*models.Category, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireRole(actor, models.RoleManager, models.RoleAdmin); err != nil {
		return nil, err
	}

	existing := ds.CategoryByID(id)
	if existing == nil {
		return nil, apierr.NotFound("Category not found.")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apierr.Validation("Category name is required.")
	}
	for _, c := range ds.Categories {
		if c.ID != id && strings.EqualFold(c.Name, name) {
			return nil, apierr.Duplicate("A category with that name already exists.")
		}
	}

	updated := *existing
	updated.Name = name
	updated.Description = strings.TrimSpace(req.Description)
	updated.ImageURL = strings.TrimSpace(req.ImageURL)

	if _, err := s.store.Update(ctx, func(d *models.Dataset) {
		if c := d.CategoryByID(id); c != nil {
			*c = updated
		}
	}); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete refuses to remove a category any recipe still references.
func (s *CategoryService) Delete(ctx context.Context, creds authz.Credentials, id string) error {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return err
	}
	if err := authz.RequireRole(actor, models.RoleManager, models.RoleAdmin); err != nil {
		return err
	}

	for _, r := range ds.Recipes {
		if r.CategoryID == id {
			return apierr.CategoryInUse()
		}
	}
	if ds.CategoryByID(id) == nil {
		return apierr.NotFound("Category not found.")
	}

	_, err = s.store.Update(ctx, func(d *models.Dataset) {
		kept := d.Categories[:0]
		for _, c := range d.Categories {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		d.Categories = kept
	})
	return err
}
