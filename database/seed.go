package database

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/junaidrashid-git/orbit-aether/models"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog returns the storefront catalog bundled with the binary.
func Catalog() ([]models.StoreProduct, error) {
	var products []models.StoreProduct
	if err := yaml.Unmarshal(catalogYAML, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(products) == 0 {
		return nil, errors.New("catalog is empty")
	}
	return products, nil
}

// SeedCatalog upserts the bundled catalog so prices in the database always
// match the shipped catalog.
func SeedCatalog(db *gorm.DB) (int, error) {
	products, err := Catalog()
	if err != nil {
		return 0, err
	}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "price", "category", "image", "hover_image", "description", "is_new"}),
	}).Create(&products).Error
	if err != nil {
		return 0, fmt.Errorf("failed to seed catalog: %w", err)
	}
	return len(products), nil
}

// HashPassword returns the bcrypt hash stored for team member passwords.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// SeedOrbitAdmin creates the first administrator when the users table is
// empty. It reports whether a user was created.
func SeedOrbitAdmin(db *gorm.DB, name, email, password string) (bool, error) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}
	admin := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Status:       models.MemberStatusActive,
		LastActive:   "Never",
	}
	if err := db.Create(&admin).Error; err != nil {
		return false, fmt.Errorf("failed to create admin: %w", err)
	}
	return true, nil
}
