package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUsers struct {
	byEmail map[string]User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byEmail: map[string]User{}}
}

func (m *memoryUsers) Create(ctx context.Context, user User) error {
	m.byEmail[user.Email] = user
	return nil
}

func (m *memoryUsers) GetByEmail(ctx context.Context, email string) (User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

type staticTokens struct{}

func (staticTokens) Generate(ctx context.Context, user User) (string, error) {
	return "token-" + user.Email, nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newMemoryUsers(), staticTokens{})

	reg, err := svc.Register(context.Background(), "Jane@Example.com", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", reg.User.Email)
	assert.NotEmpty(t, reg.Token)
	// The hash is stored, never the password itself.
	assert.NotContains(t, reg.User.PasswordHash, "correct horse")

	login, err := svc.Login(context.Background(), "  jane@example.COM ", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	svc := NewAuthService(newMemoryUsers(), staticTokens{})

	_, err := svc.Register(context.Background(), "", "correct horse battery")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register(context.Background(), "jane@example.com", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newMemoryUsers(), staticTokens{})

	_, err := svc.Register(context.Background(), "jane@example.com", "correct horse battery")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "JANE@example.com", "another password")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newMemoryUsers(), staticTokens{})

	_, err := svc.Register(context.Background(), "jane@example.com", "correct horse battery")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "jane@example.com", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "whatever else")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
