package models

import (
	"time"

	"gorm.io/datatypes"
)

// Document is the raw uploaded JSON payload, persisted verbatim. Every
// successful ingest stores one regardless of whether the payload matches the
// policy batch shape.
type Document struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Filename  string         `json:"filename,omitempty" gorm:"size:255"`
	Payload   datatypes.JSON `json:"payload" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
}

type Policy struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	PolicyID      string    `json:"policy_id" gorm:"size:50;index;not null"`
	PolicyType    string    `json:"policy_type" gorm:"size:255;not null"`
	BasePremium   float64   `json:"base_premium" gorm:"not null"`
	VehicleDamage float64   `json:"vehicle_damage" gorm:"not null"`
	RiskFactor    string    `json:"risk_factor" gorm:"size:20;not null"`
	Discount      float64   `json:"discount" gorm:"not null"`
	BranchID      string    `json:"branch_id" gorm:"size:10"`
	CreatedAt     time.Time `json:"created_at"`
}

type Customer struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	PolicyID string `json:"policy_id" gorm:"size:50;index;not null"`
	Name     string `json:"name" gorm:"size:255;not null"`
	Age      int    `json:"age" gorm:"not null"`
	Address  string `json:"address" gorm:"size:255;not null"`
}

type Vehicle struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	PolicyID      string  `json:"policy_id" gorm:"size:50;index;not null"`
	Make          string  `json:"make" gorm:"size:255;not null"`
	Model         string  `json:"model" gorm:"size:255;not null"`
	Year          int     `json:"year" gorm:"not null"`
	VehicleDamage float64 `json:"vehicle_damage" gorm:"not null"`
}

type Coverage struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	PolicyID      string  `json:"policy_id" gorm:"size:50;index;not null"`
	Liability     float64 `json:"liability" gorm:"not null"`
	Collision     float64 `json:"collision" gorm:"not null"`
	Comprehensive float64 `json:"comprehensive" gorm:"not null"`
	Discount      float64 `json:"discount" gorm:"not null"`
}
