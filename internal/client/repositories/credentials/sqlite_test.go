package credentials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := OpenDatabase(context.Background(), "file:credrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db)
}

func TestToken_EmptyWhenAbsent(t *testing.T) {
	repo := setupRepo(t)

	token, err := repo.Token(context.Background())
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestSaveAndToken_RoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tok-1"))

	token, err := repo.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)
}

func TestSave_OverwritesPrevious(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "old"))
	require.NoError(t, repo.Save(ctx, "new"))

	token, err := repo.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "new", token)
}

func TestClear_RemovesToken(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tok"))
	require.NoError(t, repo.Clear(ctx))

	token, err := repo.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestClear_NoTokenIsHarmless(t *testing.T) {
	repo := setupRepo(t)

	require.NoError(t, repo.Clear(context.Background()))
	require.NoError(t, repo.Clear(context.Background()))
}
