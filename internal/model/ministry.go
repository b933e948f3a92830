package model

import (
	"time"
)

type Ministry struct {
	ID           int64     `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	Schedule     *string   `db:"schedule" json:"schedule"`
	Icon         *string   `db:"icon" json:"icon"`
	ImagePath    *string   `db:"image_path" json:"imagePath"`
	Coordinator  *string   `db:"coordinator" json:"coordinator"`
	ContactEmail *string   `db:"contact_email" json:"contactEmail"`
	Active       bool      `db:"active" json:"active"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
