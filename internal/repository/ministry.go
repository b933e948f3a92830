package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gracechapel/api/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrMinistryNotFound = errors.New("ministry not found")
)

type MinistryRepository interface {
	Create(ministry *model.Ministry) error
	ByID(id int64) (*model.Ministry, error)
	Update(ministry *model.Ministry) error
	Delete(id int64) error
	List(active *bool, limit, offset int) ([]*model.Ministry, int, error)
}

type ministryRepository struct {
	db *sqlx.DB
}

func NewMinistryRepository(db *sqlx.DB) MinistryRepository {
	return &ministryRepository{db: db}
}

func (r *ministryRepository) Create(ministry *model.Ministry) error {
	query := `INSERT INTO ministries (title, description, schedule, icon, image_path, coordinator, contact_email, active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING id`

	return r.db.QueryRow(query,
		ministry.Title,
		ministry.Description,
		ministry.Schedule,
		ministry.Icon,
		ministry.ImagePath,
		ministry.Coordinator,
		ministry.ContactEmail,
		ministry.Active,
		ministry.CreatedAt,
		ministry.UpdatedAt,
	).Scan(&ministry.ID)
}

func (r *ministryRepository) ByID(id int64) (*model.Ministry, error) {
	ministry := &model.Ministry{}
	query := `SELECT * FROM ministries WHERE id = $1`

	err := r.db.Get(ministry, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrMinistryNotFound
	}

	return ministry, err
}

func (r *ministryRepository) Update(ministry *model.Ministry) error {
	query := `UPDATE ministries
	          SET title = $1, description = $2, schedule = $3, icon = $4, image_path = $5,
	              coordinator = $6, contact_email = $7, active = $8, updated_at = $9
	          WHERE id = $10`

	result, err := r.db.Exec(query,
		ministry.Title,
		ministry.Description,
		ministry.Schedule,
		ministry.Icon,
		ministry.ImagePath,
		ministry.Coordinator,
		ministry.ContactEmail,
		ministry.Active,
		time.Now(),
		ministry.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrMinistryNotFound
	}

	return nil
}

func (r *ministryRepository) Delete(id int64) error {
	query := `DELETE FROM ministries WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrMinistryNotFound
	}

	return nil
}

// List returns a window of ministries newest-first plus the total count
// ignoring the window. An active filter narrows both the rows and the count.
func (r *ministryRepository) List(active *bool, limit, offset int) ([]*model.Ministry, int, error) {
	where := ""
	countArgs := []any{}
	if active != nil {
		where = ` WHERE active = $1`
		countArgs = append(countArgs, *active)
	}

	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM ministries`+where, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	ministries := []*model.Ministry{}
	if active != nil {
		query := `SELECT * FROM ministries WHERE active = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		err = r.db.Select(&ministries, query, *active, limit, offset)
	} else {
		query := `SELECT * FROM ministries ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		err = r.db.Select(&ministries, query, limit, offset)
	}
	if err != nil {
		return nil, 0, err
	}

	return ministries, total, nil
}
