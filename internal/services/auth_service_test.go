package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeshare/server/internal/apierr"
	"github.com/recipeshare/server/internal/authz"
	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/models"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newTestStore(t))

	resp, err := svc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: fixtureKey})
	require.NoError(t, err)
	assert.Equal(t, anaID, resp.User.ID)

	id, ok := authz.TokenUserID(resp.Token)
	require.True(t, ok)
	assert.Equal(t, anaID, id)
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	svc := NewAuthService(newTestStore(t))

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ANA@Example.COM", Password: fixtureKey})
	require.NoError(t, err)
	assert.Equal(t, anaID, resp.User.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newTestStore(t))

	_, err := svc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	requireCode(t, err, apierr.CodeAuthInvalid)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: fixtureKey})
	requireCode(t, err, apierr.CodeAuthInvalid)
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewAuthService(st)

	resp, err := svc.Register(ctx, dto.RegisterRequest{Name: "Omar", Email: "Omar@Example.com", Password: "Pw1!passw"})
	require.NoError(t, err)
	assert.Equal(t, "Omar", resp.User.Name)
	assert.Equal(t, "omar@example.com", resp.User.Email)
	assert.Equal(t, models.RoleCreator, resp.User.Role)
	assert.NotEmpty(t, resp.Token)

	// New accounts land at the front of the collection.
	ds, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, ds.Users[0].ID)

	login, err := svc.Login(ctx, dto.LoginRequest{Email: "omar@example.com", Password: "Pw1!passw"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDefaultsName(t *testing.T) {
	svc := NewAuthService(newTestStore(t))

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{Email: "x@example.com", Password: "Pw1!passw"})
	require.NoError(t, err)
	assert.Equal(t, "New User", resp.User.Name)
}

func TestRegisterRejectsTakenEmailAnyCase(t *testing.T) {
	svc := NewAuthService(newTestStore(t))

	_, err := svc.Register(context.Background(), dto.RegisterRequest{Email: "ANA@EXAMPLE.COM", Password: "Pw1!passw"})
	requireCode(t, err, apierr.CodeEmailTaken)
}

func TestRegisterConcurrentSameEmail(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewAuthService(st)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(ctx, dto.RegisterRequest{Email: "race@example.com", Password: "Pw1!passw"})
		}(i)
	}
	wg.Wait()

	// Exactly one attempt wins; the other sees the conflict.
	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		requireCode(t, err, apierr.CodeEmailTaken)
	}
	assert.Equal(t, 1, winners)

	ds, err := st.Load(ctx)
	require.NoError(t, err)
	accounts := 0
	for _, u := range ds.Users {
		if u.Email == "race@example.com" {
			accounts++
		}
	}
	assert.Equal(t, 1, accounts)
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newTestStore(t))

	user, err := svc.Me(ctx, credsFor(benID))
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, benID, user.ID)

	// Anonymous and stale sessions resolve to nil, not an error.
	user, err = svc.Me(ctx, authz.Anonymous)
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = svc.Me(ctx, credsFor("deleted-user"))
	require.NoError(t, err)
	assert.Nil(t, user)
}
