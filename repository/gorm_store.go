package repository

import (
	"gorm.io/gorm"

	"github.com/prameswara/restofoh/models"
)

// GormStore menyimpan snapshot koordinator ke database via gorm.
// Save mengganti seluruh isi tabel dengan snapshot terbaru; durabilitas
// antar-sesi bukan tujuan, ini hanya supaya state lantai selamat dari restart.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Save(snap Snapshot) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		session := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := session.Delete(&models.FloorTable{}).Error; err != nil {
			return err
		}
		if err := session.Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		if err := session.Delete(&models.WaitlistEntry{}).Error; err != nil {
			return err
		}

		if len(snap.Tables) > 0 {
			if err := tx.Create(&snap.Tables).Error; err != nil {
				return err
			}
		}
		if len(snap.Reservations) > 0 {
			if err := tx.Create(&snap.Reservations).Error; err != nil {
				return err
			}
		}
		if len(snap.Waitlist) > 0 {
			if err := tx.Create(&snap.Waitlist).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) Load() (Snapshot, error) {
	var snap Snapshot
	if err := s.DB.Find(&snap.Tables).Error; err != nil {
		return Snapshot{}, err
	}
	if err := s.DB.Find(&snap.Reservations).Error; err != nil {
		return Snapshot{}, err
	}
	if err := s.DB.Find(&snap.Waitlist).Error; err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
