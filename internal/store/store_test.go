package store

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type samplePayload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func backends(t *testing.T) map[string]Store {
	t.Helper()

	mini, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mini.Close)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return map[string]Store{
		"redis": NewRedis(redis.NewClient(&redis.Options{Addr: mini.Addr()})),
		"sql":   NewSQL(db),
	}
}

func TestStoreJSONRoundTrip(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			var missing samplePayload
			found, err := s.GetJSON(ctx, "absent", &missing)
			require.NoError(t, err)
			require.False(t, found)

			require.NoError(t, s.SetJSON(ctx, "sample", samplePayload{Name: "alice", Count: 3}))

			var loaded samplePayload
			found, err = s.GetJSON(ctx, "sample", &loaded)
			require.NoError(t, err)
			require.True(t, found)
			require.Equal(t, samplePayload{Name: "alice", Count: 3}, loaded)

			// Writes replace the whole entry.
			require.NoError(t, s.SetJSON(ctx, "sample", samplePayload{Name: "bob"}))
			found, err = s.GetJSON(ctx, "sample", &loaded)
			require.NoError(t, err)
			require.True(t, found)
			require.Equal(t, "bob", loaded.Name)
			require.Zero(t, loaded.Count)
		})
	}
}

func TestStoreStringAndDelete(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, found, err := s.GetString(ctx, "loggedIn")
			require.NoError(t, err)
			require.False(t, found)

			require.NoError(t, s.SetString(ctx, "loggedIn", "true"))
			require.NoError(t, s.SetString(ctx, "username", "alice"))

			value, found, err := s.GetString(ctx, "loggedIn")
			require.NoError(t, err)
			require.True(t, found)
			require.Equal(t, "true", value)

			require.NoError(t, s.Delete(ctx, "loggedIn", "username"))
			require.NoError(t, s.Delete(ctx))

			_, found, err = s.GetString(ctx, "username")
			require.NoError(t, err)
			require.False(t, found)
		})
	}
}

func TestStoreEmptyListStaysPresent(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.SetJSON(ctx, "notices", []string{}))

			var notices []string
			found, err := s.GetJSON(ctx, "notices", &notices)
			require.NoError(t, err)
			require.True(t, found)
			require.Empty(t, notices)
		})
	}
}
