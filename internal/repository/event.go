package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gracechapel/api/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrEventNotFound = errors.New("event not found")
)

type EventRepository interface {
	Create(event *model.Event) error
	ByID(id int64) (*model.Event, error)
	Update(event *model.Event) error
	Delete(id int64) error
	List(limit, offset int) ([]*model.Event, int, error)
}

type eventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *model.Event) error {
	query := `INSERT INTO events (title, description, date, time, location, image_path, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id`

	return r.db.QueryRow(query,
		event.Title,
		event.Description,
		event.Date,
		event.Time,
		event.Location,
		event.ImagePath,
		event.CreatedAt,
		event.UpdatedAt,
	).Scan(&event.ID)
}

func (r *eventRepository) ByID(id int64) (*model.Event, error) {
	event := &model.Event{}
	query := `SELECT * FROM events WHERE id = $1`

	err := r.db.Get(event, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}

	return event, err
}

func (r *eventRepository) Update(event *model.Event) error {
	query := `UPDATE events
	          SET title = $1, description = $2, date = $3, time = $4, location = $5, image_path = $6, updated_at = $7
	          WHERE id = $8`

	result, err := r.db.Exec(query,
		event.Title,
		event.Description,
		event.Date,
		event.Time,
		event.Location,
		event.ImagePath,
		time.Now(),
		event.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (r *eventRepository) Delete(id int64) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrEventNotFound
	}

	return nil
}

// List returns a window of events soonest-first plus the total count ignoring
// the window.
func (r *eventRepository) List(limit, offset int) ([]*model.Event, int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	events := []*model.Event{}
	query := `SELECT * FROM events ORDER BY date ASC, time ASC LIMIT $1 OFFSET $2`
	err = r.db.Select(&events, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}
