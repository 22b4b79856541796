package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/repository"
)

func newAuthService(t *testing.T) (AuthService, repository.SessionRepository, repository.UserRepository) {
	t.Helper()

	s := newTestStore(t)
	sessionRepo := repository.NewSessionRepository(s)
	userRepo := repository.NewUserRepository(s)
	tasks := NewTaskService(userRepo, testLogger())

	return NewAuthService(sessionRepo, userRepo, tasks, testLogger()), sessionRepo, userRepo
}

func TestAuthServiceLoginOpensSession(t *testing.T) {
	svc, sessionRepo, userRepo := newAuthService(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, "  alice  ", "secret", "")
	require.NoError(t, err)
	require.True(t, session.LoggedIn)
	require.Equal(t, "alice", session.Username)
	require.Equal(t, models.RoleStudent, session.Role)

	stored, err := sessionRepo.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, session, stored)

	students, err := userRepo.Students(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"alice"}, students)

	tasks, found, err := userRepo.Tasks(ctx, "alice")
	require.NoError(t, err)
	require.True(t, found)
	require.NotEmpty(t, tasks["Accounts"])
}

func TestAuthServiceLoginValidation(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "   ", "secret", "")
	require.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Login(ctx, "alice", "", "")
	require.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Login(ctx, "alice", "secret", "superuser")
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestAuthServiceStudentRegistryDedups(t *testing.T) {
	svc, _, userRepo := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "alice", "pw", models.RoleStudent)
	require.NoError(t, err)
	_, err = svc.Login(ctx, "bob", "pw", models.RoleStudent)
	require.NoError(t, err)
	_, err = svc.Login(ctx, "alice", "pw", models.RoleStudent)
	require.NoError(t, err)

	students, err := userRepo.Students(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"alice", "bob"}, students)
}

func TestAuthServiceAdminLoginSkipsStudentBootstrap(t *testing.T) {
	svc, _, userRepo := newAuthService(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, "registrar", "pw", models.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, session.Role)

	students, err := userRepo.Students(ctx)
	require.NoError(t, err)
	require.Empty(t, students)

	_, found, err := userRepo.Tasks(ctx, "registrar")
	require.NoError(t, err)
	require.False(t, found)
}

func TestAuthServiceLogoutOverwritesAnyLogin(t *testing.T) {
	svc, sessionRepo, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "alice", "pw", models.RoleStudent)
	require.NoError(t, err)

	// A second login replaces the single global session.
	_, err = svc.Login(ctx, "registrar", "pw", models.RoleAdmin)
	require.NoError(t, err)

	current, err := sessionRepo.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, "registrar", current.Username)

	require.NoError(t, svc.Logout(ctx))

	current, err = sessionRepo.Current(ctx)
	require.NoError(t, err)
	require.False(t, current.LoggedIn)
	require.Empty(t, current.Username)
}
