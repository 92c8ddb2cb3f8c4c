package database

import "inkwell/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Theme{},
		&models.Post{},
		&models.Comment{},
		&models.Image{},
		&models.Profile{},
	}
}
