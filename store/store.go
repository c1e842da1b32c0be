package store

import "vehicle-intake/models"

// SubmissionStore persists intake metadata. The upload handler depends on
// this interface so tests can substitute a fake for the real database.
type SubmissionStore interface {
	// CreateSubmission inserts one submission row.
	CreateSubmission(sub *models.Submission) error
	// CreateFiles bulk-inserts the collected file rows in one call.
	CreateFiles(files []models.UploadedFile) error
}
