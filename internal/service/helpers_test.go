package service

import (
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/campusmesh/portal-api/internal/repository"
	"github.com/campusmesh/portal-api/internal/store"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	mini, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mini.Close)

	return store.NewRedis(redis.NewClient(&redis.Options{Addr: mini.Addr()}))
}

func newTestRepos(t *testing.T) (repository.CatalogRepository, repository.UserRepository) {
	t.Helper()

	s := newTestStore(t)
	return repository.NewCatalogRepository(s), repository.NewUserRepository(s)
}

func fixedGrades(grade string) GradeSource {
	return GradeSourceFunc(func(string) string { return grade })
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
