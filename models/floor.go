package models

import "time"

// FloorSection adalah data referensi statis untuk area denah (indoor, terrace, dst).
type FloorSection struct {
	ID    string `gorm:"primaryKey;type:varchar(36)" json:"id" yaml:"id"`
	Name  string `gorm:"type:varchar(100);not null" json:"name" yaml:"name"`
	Color string `gorm:"type:varchar(20)" json:"color" yaml:"color"`
}

// FloorTable adalah satu meja pada denah restoran.
//
// Field occupancy (Customer..PhoneNumber) hanya terisi saat status 'occupied',
// field reservasi (CustomerName, ReservationTime) hanya saat 'reserved'.
// Keduanya wajib dikosongkan saat meja kembali 'available' atau 'cleaning'.
type FloorTable struct {
	ID        string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Number    int     `gorm:"uniqueIndex;not null" json:"number"`
	Capacity  int     `gorm:"not null" json:"capacity"`
	Shape     string  `gorm:"type:varchar(20);not null;default:'rectangle'" json:"shape"`
	SectionID string  `gorm:"type:varchar(36);index" json:"section_id"`
	PosX      float64 `json:"pos_x"`
	PosY      float64 `json:"pos_y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Status    string  `gorm:"type:varchar(20);not null;default:'available'" json:"status"`

	Customer         *string    `gorm:"type:varchar(100)" json:"customer,omitempty"`
	TimeSeated       *time.Time `json:"time_seated,omitempty"`
	EstimatedEndTime *time.Time `json:"estimated_end_time,omitempty"`
	Server           *string    `gorm:"type:varchar(100)" json:"server,omitempty"`
	PhoneNumber      *string    `gorm:"type:varchar(30)" json:"phone_number,omitempty"`

	CustomerName    *string    `gorm:"type:varchar(100)" json:"customer_name,omitempty"`
	ReservationTime *time.Time `json:"reservation_time,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// Reservation adalah permintaan kursi terjadwal untuk satu meja.
type Reservation struct {
	ID              string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	TableID         string     `gorm:"type:varchar(36);index;not null" json:"table_id"`
	CustomerName    string     `gorm:"type:varchar(100);not null" json:"customer_name"`
	PhoneNumber     string     `gorm:"type:varchar(30)" json:"phone_number"`
	PartySize       int        `gorm:"not null" json:"party_size"`
	ReservationTime time.Time  `gorm:"not null" json:"reservation_time"`
	DurationMinutes int        `gorm:"not null;default:90" json:"duration_minutes"`
	Notes           string     `gorm:"type:text" json:"notes"`
	Status          string     `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	CancelReason    string     `gorm:"type:varchar(255)" json:"cancel_reason,omitempty"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`
}

// WaitlistEntry adalah rombongan walk-in yang menunggu meja kosong.
// EstimatedWaitMinutes dihitung sekali saat entry dibuat dan tidak pernah
// dihitung ulang mengikuti perubahan antrian.
type WaitlistEntry struct {
	ID                   string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CustomerName         string     `gorm:"type:varchar(100);not null" json:"customer_name"`
	PhoneNumber          string     `gorm:"type:varchar(30)" json:"phone_number"`
	PartySize            int        `gorm:"not null" json:"party_size"`
	Notes                string     `gorm:"type:text" json:"notes"`
	TimeAdded            time.Time  `gorm:"not null" json:"time_added"`
	EstimatedWaitMinutes int        `gorm:"not null" json:"estimated_wait_minutes"`
	Status               string     `gorm:"type:varchar(20);not null;default:'waiting'" json:"status"`
	Notified             bool       `gorm:"not null;default:false" json:"notified"`
	NotifiedAt           *time.Time `json:"notified_at,omitempty"`
	SeatedAt             *time.Time `json:"seated_at,omitempty"`
	CancelledAt          *time.Time `json:"cancelled_at,omitempty"`
	CancelReason         string     `gorm:"type:varchar(255)" json:"cancel_reason,omitempty"`
	CreatedAt            time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"not null" json:"updated_at"`
}
