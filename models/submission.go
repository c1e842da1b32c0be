package models

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus defines the lifecycle status of a submission
type SubmissionStatus string

const (
	SubmissionStatusPending SubmissionStatus = "pending"
)

// FileType classifies an uploaded attachment
type FileType string

const (
	FileTypePhoto    FileType = "photo"
	FileTypeDocument FileType = "document"
)

// Submission represents one vehicle-owner intake form.
// Rows are insert-only; status transitions happen out-of-band.
type Submission struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string           `json:"email"`
	OrderNumber string           `json:"order_number"`
	FullName    string           `json:"full_name"`
	VIN         string           `gorm:"column:vin" json:"vin"`
	Make        string           `json:"make"`
	Model       string           `json:"model"`
	Year        string           `json:"year"`
	Color       string           `json:"color"`
	CreatedAt   time.Time        `json:"created_at"`
	Status      SubmissionStatus `gorm:"type:varchar(32);default:'pending'" json:"status"`
}

// UploadedFile is the metadata row for one stored attachment.
type UploadedFile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubmissionID uuid.UUID `gorm:"type:uuid;not null;index" json:"submission_id"`
	FilePath     string    `gorm:"not null" json:"file_path"`
	FileType     FileType  `gorm:"type:varchar(16)" json:"file_type"`
	OriginalName string    `json:"original_name"`
	FileSize     int64     `json:"file_size"`
}
