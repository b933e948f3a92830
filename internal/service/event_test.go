package service

import (
	"fmt"
	"testing"

	"github.com/gracechapel/api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEventService(t *testing.T) *EventService {
	t.Helper()

	repo := repository.NewEventRepository(newTestDB(t))
	attachments, _ := newTestAttachments(t)
	return NewEventService(repo, attachments)
}

func eventInput(title, date, clock string) EventInput {
	return EventInput{
		Title:       sPtr(title),
		Description: sPtr("All welcome."),
		Date:        sPtr(date),
		Time:        sPtr(clock),
		Location:    sPtr("Fellowship Hall"),
	}
}

func TestEventCreateAndGet(t *testing.T) {
	svc := newEventService(t)

	created, err := svc.Create(eventInput("Potluck", "2026-09-12", "18:30"), nil)
	require.NoError(t, err)
	require.Positive(t, created.ID)

	got, err := svc.ByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Potluck", got.Title)
	assert.Equal(t, "2026-09-12", got.Date)
	assert.Equal(t, "18:30", got.Time)
	assert.Nil(t, got.ImagePath)
}

func TestEventValidation(t *testing.T) {
	svc := newEventService(t)

	tests := []struct {
		name string
		in   EventInput
	}{
		{"missing title", EventInput{Description: sPtr("d"), Date: sPtr("2026-09-12"), Time: sPtr("18:30"), Location: sPtr("here")}},
		{"bad date", eventInput("Potluck", "12/09/2026", "18:30")},
		{"bad time", eventInput("Potluck", "2026-09-12", "6:30 PM")},
		{"missing location", EventInput{Title: sPtr("Potluck"), Description: sPtr("d"), Date: sPtr("2026-09-12"), Time: sPtr("18:30")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.in, nil)
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestEventListChronological(t *testing.T) {
	svc := newEventService(t)

	// Inserted out of order on purpose
	days := []string{"2026-09-20", "2026-09-05", "2026-09-12"}
	for i, day := range days {
		_, err := svc.Create(eventInput(fmt.Sprintf("Event %d", i), day, "10:00"), nil)
		require.NoError(t, err)
	}
	// Same day, earlier time sorts first
	_, err := svc.Create(eventInput("Early Service", "2026-09-05", "08:00"), nil)
	require.NoError(t, err)

	events, meta, err := svc.List(1, 10)
	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, 4, meta.TotalItems)

	assert.Equal(t, "Early Service", events[0].Title)
	assert.Equal(t, "2026-09-05", events[1].Date)
	assert.Equal(t, "2026-09-12", events[2].Date)
	assert.Equal(t, "2026-09-20", events[3].Date)
}

func TestEventDeleteMissing(t *testing.T) {
	svc := newEventService(t)

	err := svc.Delete(42)
	assert.ErrorIs(t, err, repository.ErrEventNotFound)
}
