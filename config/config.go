package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/prameswara/restofoh/models"
)

// InitDB membuka koneksi database sesuai env:
//
//	DB_DRIVER = sqlite (default) | mysql
//	DB_DSN    = DSN driver; default sqlite file lokal
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}
	dsn := os.Getenv("DB_DSN")

	switch driver {
	case "sqlite":
		if dsn == "" {
			dsn = "restofoh.db"
		}
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "mysql":
		if dsn == "" {
			return nil, fmt.Errorf("DB_DSN is required for mysql")
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

type sectionsFile struct {
	Sections []models.FloorSection `yaml:"sections"`
}

// LoadSections membaca data referensi section denah dari file YAML.
// Kalau file tidak ada, dipakai daftar default supaya server tetap jalan.
func LoadSections(path string) ([]models.FloorSection, error) {
	if path == "" {
		path = "config/sections.yaml"
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSections(), nil
		}
		return nil, fmt.Errorf("read sections file: %w", err)
	}

	var f sectionsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse sections file: %w", err)
	}
	if len(f.Sections) == 0 {
		return DefaultSections(), nil
	}
	for _, s := range f.Sections {
		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("sections file: every section needs id and name")
		}
	}
	return f.Sections, nil
}

// DefaultSections adalah denah bawaan kalau tidak ada file konfigurasi.
func DefaultSections() []models.FloorSection {
	return []models.FloorSection{
		{ID: "main", Name: "Main Dining", Color: "#4f86c6"},
		{ID: "terrace", Name: "Terrace", Color: "#6cb86a"},
		{ID: "bar", Name: "Bar", Color: "#c9803a"},
	}
}
