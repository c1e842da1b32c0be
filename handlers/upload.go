package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"vehicle-intake/models"
	"vehicle-intake/storage"
	"vehicle-intake/store"
)

const (
	maxFileParts  = 100
	maxFileSize   = 10 << 20 // 10MB per file
	maxFormMemory = 32 << 20
)

// UploadHandler serves the vehicle intake form endpoint. Its dependencies
// are injected so tests can swap in fakes for the database and the bucket.
type UploadHandler struct {
	store   store.SubmissionStore
	objects storage.ObjectStore
}

func NewUploadHandler(s store.SubmissionStore, o storage.ObjectStore) *UploadHandler {
	return &UploadHandler{store: s, objects: o}
}

// Upload accepts a multipart intake form: scalar vehicle/owner fields plus
// any number of named file fields. The submission row is written first,
// then each file is streamed to object storage; per-file failures are
// logged and skipped so a partially-successful upload still returns the
// submission id.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "Method not allowed"})
		return
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		writeFailure(w, http.StatusInternalServerError, "failed to parse form: "+err.Error())
		return
	}
	defer r.MultipartForm.RemoveAll()

	if err := checkLimits(r.MultipartForm); err != nil {
		writeFailure(w, http.StatusInternalServerError, err.Error())
		return
	}

	sub := buildSubmission(r.MultipartForm.Value)

	if err := h.store.CreateSubmission(sub); err != nil {
		writeFailure(w, http.StatusInternalServerError, "database error: "+err.Error())
		return
	}

	uploaded := h.transferFiles(r, sub.ID)

	if len(uploaded) > 0 {
		if err := h.store.CreateFiles(uploaded); err != nil {
			// Best effort: the submission row is already committed and the
			// response is not failed by a file-table error.
			logrus.WithField("submission_id", sub.ID).Error("files table error: ", err)
		}
	}

	// TODO: send a confirmation email to sub.Email once a mail provider is wired up

	writeJSON(w, http.StatusOK, uploadResponse{
		Success:      true,
		SubmissionID: sub.ID.String(),
		Message:      "Upload successful! You will receive an email confirmation shortly.",
	})
}

// transferFiles streams every file part to object storage and collects the
// metadata rows for the parts that made it. A failed transfer is logged and
// skipped; it never fails the request.
func (h *UploadHandler) transferFiles(r *http.Request, submissionID uuid.UUID) []models.UploadedFile {
	var uploaded []models.UploadedFile

	for fieldName, parts := range r.MultipartForm.File {
		for i, part := range parts {
			if part == nil || (part.Filename == "" && part.Size == 0) {
				continue
			}

			key := objectKey(submissionID.String(), fieldName, i+1, part.Filename)

			if err := h.transferOne(r, key, part); err != nil {
				logrus.WithFields(logrus.Fields{
					"submission_id": submissionID,
					"field":         fieldName,
					"index":         i + 1,
				}).Error("upload error: ", err)
				continue
			}

			uploaded = append(uploaded, models.UploadedFile{
				ID:           uuid.New(),
				SubmissionID: submissionID,
				FilePath:     key,
				FileType:     classifyFile(fieldName),
				OriginalName: part.Filename,
				FileSize:     part.Size,
			})
		}
	}

	return uploaded
}

func (h *UploadHandler) transferOne(r *http.Request, key string, part *multipart.FileHeader) error {
	f, err := part.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	return h.objects.Put(r.Context(), key, part.Header.Get("Content-Type"), f)
}

// buildSubmission normalizes the parsed form fields into a canonical record.
// A field submitted multiple times collapses to its first value; absent
// fields stay empty. Nothing is validated here.
func buildSubmission(fields url.Values) *models.Submission {
	return &models.Submission{
		ID:          uuid.New(),
		Email:       firstValue(fields["email"]),
		OrderNumber: firstValue(fields["orderNumber"]),
		FullName:    firstValue(fields["fullName"]),
		VIN:         firstValue(fields["vin"]),
		Make:        firstValue(fields["make"]),
		Model:       firstValue(fields["model"]),
		Year:        firstValue(fields["year"]),
		Color:       firstValue(fields["color"]),
		CreatedAt:   time.Now().UTC(),
		Status:      models.SubmissionStatusPending,
	}
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// checkLimits enforces the part-count and per-file size caps before any
// row or object is written.
func checkLimits(form *multipart.Form) error {
	count := 0
	for _, parts := range form.File {
		count += len(parts)
		for _, part := range parts {
			if part.Size > maxFileSize {
				return fmt.Errorf("file %q exceeds the %dMB limit", part.Filename, maxFileSize>>20)
			}
		}
	}
	if count > maxFileParts {
		return fmt.Errorf("too many files: %d (max %d)", count, maxFileParts)
	}
	return nil
}

// objectKey derives the storage key for one file part. The index is 1-based
// within its field; the extension comes from the original filename and is
// omitted when the name has none.
func objectKey(submissionID, fieldName string, index int, originalName string) string {
	return fmt.Sprintf("%s/%s_%d%s", submissionID, fieldName, index, filepath.Ext(originalName))
}

// classifyFile marks a part as a photo when its field name contains "photo".
func classifyFile(fieldName string) models.FileType {
	if strings.Contains(fieldName, "photo") {
		return models.FileTypePhoto
	}
	return models.FileTypeDocument
}
