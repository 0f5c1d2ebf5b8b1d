package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/recipeshare/server/internal/apierr"
	"github.com/recipeshare/server/internal/authz"
	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/store"
)

type AuthService struct {
	store *store.Store
}

func NewAuthService(st *store.Store) *AuthService {
	return &AuthService{store: st}
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(req.Email)
	var user *models.User
	for i := range ds.Users {
		if strings.ToLower(ds.Users[i].Email) == email {
			user = &ds.Users[i]
			break
		}
	}
	if user == nil {
		return nil, apierr.AuthInvalid()
	}

	var private *models.UserPrivate
	for i := range ds.UserPrivate {
		if ds.UserPrivate[i].UserID == user.ID {
			private = &ds.UserPrivate[i]
			break
		}
	}
	if private == nil {
		return nil, apierr.AuthInvalid()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(private.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierr.AuthInvalid()
	}

	return &dto.LoginResponse{Token: authz.MakeToken(user.ID), User: *user}, nil
}

// Register creates a new creator account. Email uniqueness is
// case-insensitive.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, apierr.Validation("Email is required.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "New User"
	}

	user := models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Role:      models.RoleCreator,
		CreatedAt: time.Now().UTC(),
	}

	// The uniqueness check runs inside the mutation so two concurrent
	// registrations cannot both claim the email.
	taken := false
	if _, err := s.store.Update(ctx, func(d *models.Dataset) {
		for _, u := range d.Users {
			if strings.ToLower(u.Email) == email {
				taken = true
				return
			}
		}
		d.Users = append([]models.User{user}, d.Users...)
		d.UserPrivate = append(d.UserPrivate, models.UserPrivate{UserID: user.ID, PasswordHash: string(hash)})
	}); err != nil {
		return nil, err
	}
	if taken {
		return nil, apierr.EmailTaken()
	}

	return &dto.LoginResponse{Token: authz.MakeToken(user.ID), User: user}, nil
}

// Me resolves the session, returning nil for an absent or unusable token
// rather than failing.
func (s *AuthService) Me(ctx context.Context, creds authz.Credentials) (*models.User, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	return authz.CurrentUser(ds.Users, creds), nil
}
