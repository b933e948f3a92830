package model

import (
	"time"
)

type Sermon struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Speaker     string    `db:"speaker" json:"speaker"`
	Date        string    `db:"date" json:"date"`
	Scripture   *string   `db:"scripture" json:"scripture"`
	Duration    *string   `db:"duration" json:"duration"`
	Description string    `db:"description" json:"description"`
	AudioPath   *string   `db:"audio_path" json:"audioPath"`
	VideoURL    *string   `db:"video_url" json:"videoUrl"`
	Featured    bool      `db:"featured" json:"featured"`
	ImagePath   *string   `db:"image_path" json:"image"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
