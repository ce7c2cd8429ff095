package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkhub/internal/database"
	"linkhub/internal/store"
)

func newTestPostStore(t *testing.T) *store.PostStore {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return store.NewPostStore(db)
}

func TestPostInsertAndList(t *testing.T) {
	s := newTestPostStore(t)

	_, err := s.Insert("hello", "first post", "ada")
	require.NoError(t, err)
	_, err = s.Insert("second", "", "")
	require.NoError(t, err)

	posts, err := s.ListAll()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "second", posts[0].Title)
	assert.Equal(t, "hello", posts[1].Title)
	assert.Equal(t, "ada", posts[1].Author)
}

func TestPostInsertRequiresTitle(t *testing.T) {
	s := newTestPostStore(t)

	_, err := s.Insert("", "body", "")
	assert.ErrorIs(t, err, store.ErrMissingField)

	posts, err := s.ListAll()
	require.NoError(t, err)
	assert.Empty(t, posts)
}
