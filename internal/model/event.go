package model

import (
	"time"
)

type Event struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Date        string    `db:"date" json:"date"`
	Time        string    `db:"time" json:"time"`
	Location    string    `db:"location" json:"location"`
	ImagePath   *string   `db:"image_path" json:"image"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
