package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"vehicle-intake/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20260815_create_intake_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Submission{}, &models.UploadedFile{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("uploaded_files", "submissions")
			},
		},
	})

	return m.Migrate()
}
