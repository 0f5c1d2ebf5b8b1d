package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/recipeshare/server/internal/apierr"
	"github.com/recipeshare/server/internal/authz"
	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/seed"
	"github.com/recipeshare/server/internal/store"
)

// UserService is the admin-only account surface.
type UserService struct {
	store *store.Store
}

func NewUserService(st *store.Store) *UserService {
	return &UserService{store: st}
}

const defaultUserPageSize = 10

func (s *UserService) List(ctx context.Context, creds authz.Credentials, q dto.UserListQuery) (*dto.PagedResult[models.User], error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireRole(actor, models.RoleAdmin); err != nil {
		return nil, err
	}

	search := normalize(q.Search)
	items := make([]models.User, 0, len(ds.Users))
	for _, u := range ds.Users {
		if search != "" && !strings.Contains(normalize(u.Name+" "+u.Email), search) {
			continue
		}
		if q.Role != "" && u.Role != q.Role {
			continue
		}
		items = append(items, u)
	}

	sort.SliceStable(items, func(i, j int) bool {
		switch q.SortBy {
		case dto.UserSortEmail:
			return items[i].Email < items[j].Email
		case dto.UserSortCreatedAt:
			return items[i].CreatedAt.After(items[j].CreatedAt)
		default:
			return items[i].Name < items[j].Name
		}
	})

	page := dto.ClampPage(q.Page)
	pageSize := dto.ClampPageSize(q.PageSize, defaultUserPageSize)
	return &dto.PagedResult[models.User]{
		Items:    dto.Paginate(items, page, pageSize),
		Total:    len(items),
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *UserService) GetByID(ctx context.Context, creds authz.Credentials, id string) (*models.User, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireRole(actor, models.RoleAdmin); err != nil {
		return nil, err
	}

	user := ds.UserByID(id)
	if user == nil {
		return nil, apierr.NotFound("User not found.")
	}
	return user, nil
}

func (s *UserService) SetRole(ctx context.Context, creds authz.Credentials, id string, role models.Role) (*models.User, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireRole(actor, models.RoleAdmin); err != nil {
		return nil, err
	}

	if !role.Valid() {
		return nil, apierr.Validation("Unknown role.")
	}
	if ds.UserByID(id) == nil {
		return nil, apierr.NotFound("User not found.")
	}

	var updated models.User
	if _, err := s.store.Update(ctx, func(d *models.Dataset) {
		if u := d.UserByID(id); u != nil {
			u.Role = role
			updated = *u
		}
	}); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ResetPassword sets the target's password back to the demo default. Existing
// sessions stay valid.
func (s *UserService) ResetPassword(ctx context.Context, creds authz.Credentials, id string) error {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return err
	}
	if err := authz.RequireRole(actor, models.RoleAdmin); err != nil {
		return err
	}

	found := false
	for _, p := range ds.UserPrivate {
		if p.UserID == id {
			found = true
			break
		}
	}
	if !found {
		return apierr.NotFound("User not found.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.store.Update(ctx, func(d *models.Dataset) {
		for i := range d.UserPrivate {
			if d.UserPrivate[i].UserID == id {
				d.UserPrivate[i].PasswordHash = string(hash)
				return
			}
		}
	})
	return err
}
