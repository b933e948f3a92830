package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gracechapel/api/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrSermonNotFound = errors.New("sermon not found")
)

type SermonRepository interface {
	Create(sermon *model.Sermon) error
	ByID(id int64) (*model.Sermon, error)
	Update(sermon *model.Sermon) error
	Delete(id int64) error
	List(limit, offset int) ([]*model.Sermon, int, error)
}

type sermonRepository struct {
	db *sqlx.DB
}

func NewSermonRepository(db *sqlx.DB) SermonRepository {
	return &sermonRepository{db: db}
}

func (r *sermonRepository) Create(sermon *model.Sermon) error {
	// RETURNING works on both drivers; pgx has no LastInsertId
	query := `INSERT INTO sermons (title, speaker, date, scripture, duration, description, audio_path, video_url, featured, image_path, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	          RETURNING id`

	return r.db.QueryRow(query,
		sermon.Title,
		sermon.Speaker,
		sermon.Date,
		sermon.Scripture,
		sermon.Duration,
		sermon.Description,
		sermon.AudioPath,
		sermon.VideoURL,
		sermon.Featured,
		sermon.ImagePath,
		sermon.CreatedAt,
		sermon.UpdatedAt,
	).Scan(&sermon.ID)
}

func (r *sermonRepository) ByID(id int64) (*model.Sermon, error) {
	sermon := &model.Sermon{}
	query := `SELECT * FROM sermons WHERE id = $1`

	err := r.db.Get(sermon, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrSermonNotFound
	}

	return sermon, err
}

func (r *sermonRepository) Update(sermon *model.Sermon) error {
	query := `UPDATE sermons
	          SET title = $1, speaker = $2, date = $3, scripture = $4, duration = $5, description = $6,
	              audio_path = $7, video_url = $8, featured = $9, image_path = $10, updated_at = $11
	          WHERE id = $12`

	result, err := r.db.Exec(query,
		sermon.Title,
		sermon.Speaker,
		sermon.Date,
		sermon.Scripture,
		sermon.Duration,
		sermon.Description,
		sermon.AudioPath,
		sermon.VideoURL,
		sermon.Featured,
		sermon.ImagePath,
		time.Now(),
		sermon.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrSermonNotFound
	}

	return nil
}

func (r *sermonRepository) Delete(id int64) error {
	query := `DELETE FROM sermons WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrSermonNotFound
	}

	return nil
}

// List returns a window of sermons newest-first plus the total count ignoring
// the window.
func (r *sermonRepository) List(limit, offset int) ([]*model.Sermon, int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM sermons`).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	sermons := []*model.Sermon{}
	query := `SELECT * FROM sermons ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	err = r.db.Select(&sermons, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return sermons, total, nil
}
