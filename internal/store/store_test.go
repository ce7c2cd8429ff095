package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkhub/internal/database"
	"linkhub/internal/store"
)

func newTestStore(t *testing.T) *store.ResourceStore {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return store.NewResourceStore(db)
}

func TestInsertAndGetByID(t *testing.T) {
	s := newTestStore(t)

	inserted, err := s.Insert("Algo Notes", "http://x.test/a", "lecture notes", "1234")
	require.NoError(t, err)
	require.NotZero(t, inserted.ID)
	assert.False(t, inserted.Verified)
	assert.False(t, inserted.CreatedAt.IsZero())

	got, err := s.GetByID(inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, "Algo Notes", got.Title)
	assert.Equal(t, "http://x.test/a", got.URL)
	assert.Equal(t, "lecture notes", got.Description)
	assert.Equal(t, "1234", got.Code)
	assert.False(t, got.Verified)
}

func TestInsertRequiresTitleAndURL(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Insert("", "http://x.test/a", "", "")
	assert.ErrorIs(t, err, store.ErrMissingField)

	_, err = s.Insert("Algo Notes", "", "", "")
	assert.ErrorIs(t, err, store.ErrMissingField)

	all, err := s.ListAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetByIDNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetByID(42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListAllNewestFirst(t *testing.T) {
	s := newTestStore(t)

	for _, title := range []string{"first", "second", "third"} {
		_, err := s.Insert(title, "http://x.test/"+title, "", "")
		require.NoError(t, err)
	}

	all, err := s.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Title)
	assert.Equal(t, "second", all[1].Title)
	assert.Equal(t, "first", all[2].Title)
}

func TestUpdateClearsVerified(t *testing.T) {
	s := newTestStore(t)

	inserted, err := s.Insert("Algo Notes", "http://x.test/a", "", "")
	require.NoError(t, err)
	_, err = s.ToggleVerified(inserted.ID)
	require.NoError(t, err)

	_, err = s.Update(inserted.ID, "Algo Notes v2", "http://x.test/b", "updated", false)
	require.NoError(t, err)

	got, err := s.GetByID(inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, "Algo Notes v2", got.Title)
	assert.Equal(t, "http://x.test/b", got.URL)
	assert.Equal(t, "updated", got.Description)
	assert.False(t, got.Verified)
}

func TestUpdatePreservesVerified(t *testing.T) {
	s := newTestStore(t)

	inserted, err := s.Insert("Algo Notes", "http://x.test/a", "", "")
	require.NoError(t, err)
	_, err = s.ToggleVerified(inserted.ID)
	require.NoError(t, err)

	_, err = s.Update(inserted.ID, "Algo Notes v2", "http://x.test/b", "", true)
	require.NoError(t, err)

	got, err := s.GetByID(inserted.ID)
	require.NoError(t, err)
	assert.True(t, got.Verified)
}

func TestUpdateRequiresTitleAndURL(t *testing.T) {
	s := newTestStore(t)

	inserted, err := s.Insert("Algo Notes", "http://x.test/a", "", "")
	require.NoError(t, err)

	_, err = s.Update(inserted.ID, "", "http://x.test/b", "", false)
	assert.ErrorIs(t, err, store.ErrMissingField)

	got, err := s.GetByID(inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, "Algo Notes", got.Title)
}

func TestUpdateNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Update(42, "Algo Notes", "http://x.test/a", "", false)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestToggleVerifiedInvolution(t *testing.T) {
	s := newTestStore(t)

	inserted, err := s.Insert("Algo Notes", "http://x.test/a", "", "")
	require.NoError(t, err)

	verified, err := s.ToggleVerified(inserted.ID)
	require.NoError(t, err)
	assert.True(t, verified)

	verified, err = s.ToggleVerified(inserted.ID)
	require.NoError(t, err)
	assert.False(t, verified)

	got, err := s.GetByID(inserted.ID)
	require.NoError(t, err)
	assert.False(t, got.Verified)
}

func TestToggleVerifiedNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ToggleVerified(42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteIdempotent(t *testing.T) {
	s := newTestStore(t)

	kept, err := s.Insert("keep me", "http://x.test/keep", "", "")
	require.NoError(t, err)
	doomed, err := s.Insert("delete me", "http://x.test/del", "", "")
	require.NoError(t, err)

	require.NoError(t, s.Delete(999))
	all, err := s.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, s.Delete(doomed.ID))
	all, err = s.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, kept.ID, all[0].ID)

	// deleting again is still fine
	require.NoError(t, s.Delete(doomed.ID))
}
