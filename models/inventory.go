package models

import "time"

type InventoryItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);unique;not null" json:"name"`
	Unit         string    `gorm:"type:varchar(30);not null" json:"unit"`
	Quantity     float64   `gorm:"not null;default:0" json:"quantity"`
	ReorderLevel float64   `gorm:"not null;default:0" json:"reorder_level"`
	UnitCost     float64   `gorm:"type:decimal(10,2);not null;default:0" json:"unit_cost"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
