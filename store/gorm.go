package store

import (
	"gorm.io/gorm"

	"vehicle-intake/models"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore returns a SubmissionStore backed by the given database.
func NewGormStore(db *gorm.DB) SubmissionStore {
	return &gormStore{db: db}
}

func (s *gormStore) CreateSubmission(sub *models.Submission) error {
	return s.db.Create(sub).Error
}

func (s *gormStore) CreateFiles(files []models.UploadedFile) error {
	return s.db.Create(&files).Error
}
