package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/gracechapel/api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSermon(title, date string) *model.Sermon {
	now := time.Now()
	return &model.Sermon{
		Title:       title,
		Speaker:     "Pastor John Smith",
		Date:        date,
		Description: "A word of encouragement",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestSermonCreateAndByID(t *testing.T) {
	repo := NewSermonRepository(newTestDB(t))

	sermon := newSermon("Walking in Faith", "2026-01-05")
	sermon.Featured = true
	sermon.Scripture = strPtr("Hebrews 11:1")

	err := repo.Create(sermon)
	require.NoError(t, err)
	assert.Positive(t, sermon.ID)

	got, err := repo.ByID(sermon.ID)
	require.NoError(t, err)
	assert.Equal(t, "Walking in Faith", got.Title)
	assert.Equal(t, "2026-01-05", got.Date)
	assert.True(t, got.Featured)
	require.NotNil(t, got.Scripture)
	assert.Equal(t, "Hebrews 11:1", *got.Scripture)
	assert.Nil(t, got.AudioPath)
}

func TestSermonByIDNotFound(t *testing.T) {
	repo := NewSermonRepository(newTestDB(t))

	_, err := repo.ByID(12345)
	assert.ErrorIs(t, err, ErrSermonNotFound)
}

func TestSermonUpdate(t *testing.T) {
	repo := NewSermonRepository(newTestDB(t))

	sermon := newSermon("Original", "2026-01-05")
	require.NoError(t, repo.Create(sermon))

	sermon.Title = "Updated"
	sermon.Featured = true
	require.NoError(t, repo.Update(sermon))

	got, err := repo.ByID(sermon.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated", got.Title)
	assert.True(t, got.Featured)
}

func TestSermonUpdateNotFound(t *testing.T) {
	repo := NewSermonRepository(newTestDB(t))

	missing := newSermon("Ghost", "2026-01-05")
	missing.ID = 999
	assert.ErrorIs(t, repo.Update(missing), ErrSermonNotFound)
}

func TestSermonDelete(t *testing.T) {
	repo := NewSermonRepository(newTestDB(t))

	sermon := newSermon("To delete", "2026-01-05")
	require.NoError(t, repo.Create(sermon))

	require.NoError(t, repo.Delete(sermon.ID))

	// Second delete reports not found, never an unhandled error
	assert.ErrorIs(t, repo.Delete(sermon.ID), ErrSermonNotFound)

	_, err := repo.ByID(sermon.ID)
	assert.ErrorIs(t, err, ErrSermonNotFound)
}

func TestSermonListOrderAndTotal(t *testing.T) {
	repo := NewSermonRepository(newTestDB(t))

	for i := 1; i <= 12; i++ {
		s := newSermon(fmt.Sprintf("Sermon %02d", i), fmt.Sprintf("2026-01-%02d", i))
		require.NoError(t, repo.Create(s))
	}

	sermons, total, err := repo.List(5, 0)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, sermons, 5)

	// Newest date first
	assert.Equal(t, "2026-01-12", sermons[0].Date)
	assert.Equal(t, "2026-01-08", sermons[4].Date)

	// Window past the end: total still reported, rows empty
	sermons, total, err = repo.List(5, 20)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Empty(t, sermons)
}
