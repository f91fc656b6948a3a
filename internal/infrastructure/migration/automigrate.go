package migration

import (
	"sdc/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AdminModel{},
		&models.TestimonialModel{},
		&models.PersonModel{},
		&models.ProjectModel{},
		&models.FAQModel{},
		&models.GalleryImageModel{},
		&models.ContactMessageModel{},
		&models.ApplicationModel{},
	}
}
