package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/gracechapel/api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMinistry(title string, active bool) *model.Ministry {
	now := time.Now()
	return &model.Ministry{
		Title:       title,
		Description: "Serving the congregation",
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestMinistryCreateAndByID(t *testing.T) {
	repo := NewMinistryRepository(newTestDB(t))

	ministry := newMinistry("Youth Ministry", true)
	ministry.ContactEmail = strPtr("youth@gracechapel.org")

	require.NoError(t, repo.Create(ministry))
	assert.Positive(t, ministry.ID)

	got, err := repo.ByID(ministry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Youth Ministry", got.Title)
	assert.True(t, got.Active)
	require.NotNil(t, got.ContactEmail)
	assert.Equal(t, "youth@gracechapel.org", *got.ContactEmail)
	assert.Nil(t, got.Schedule)
}

func TestMinistryListActiveFilter(t *testing.T) {
	repo := NewMinistryRepository(newTestDB(t))

	for i := 1; i <= 4; i++ {
		require.NoError(t, repo.Create(newMinistry(fmt.Sprintf("Active %d", i), true)))
	}
	for i := 1; i <= 2; i++ {
		require.NoError(t, repo.Create(newMinistry(fmt.Sprintf("Inactive %d", i), false)))
	}

	all, total, err := repo.List(nil, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.Len(t, all, 6)

	activeOnly := true
	actives, total, err := repo.List(&activeOnly, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, actives, 4)
	for _, m := range actives {
		assert.True(t, m.Active)
	}

	inactiveOnly := false
	inactives, total, err := repo.List(&inactiveOnly, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, inactives, 2)
}

func TestMinistryDeleteTwice(t *testing.T) {
	repo := NewMinistryRepository(newTestDB(t))

	ministry := newMinistry("Hospitality", true)
	require.NoError(t, repo.Create(ministry))

	require.NoError(t, repo.Delete(ministry.ID))
	assert.ErrorIs(t, repo.Delete(ministry.ID), ErrMinistryNotFound)
}
