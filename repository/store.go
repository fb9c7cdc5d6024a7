package repository

import "github.com/prameswara/restofoh/models"

// Snapshot adalah potret lengkap state lantai (meja, reservasi, waitlist)
// yang dipersist sebagai satu kesatuan.
type Snapshot struct {
	Tables       []models.FloorTable
	Reservations []models.Reservation
	Waitlist     []models.WaitlistEntry
}

// Store adalah abstraksi record-store untuk state koordinator lantai.
// Koordinator tidak peduli backend-nya apa; implementasi default memakai gorm.
type Store interface {
	Save(snap Snapshot) error
	Load() (Snapshot, error)
}
