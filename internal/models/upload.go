package models

import "time"

// Upload is the uploads table row.
type Upload struct {
	UploadID     string     `db:"upload_id"`
	FileName     string     `db:"file_name"`
	FileSize     int64      `db:"file_size"`
	Status       string     `db:"status"`
	ErrorMessage *string    `db:"error_message"`
	CreatedAt    time.Time  `db:"created_at"`
	FinishedAt   *time.Time `db:"finished_at"`
}
