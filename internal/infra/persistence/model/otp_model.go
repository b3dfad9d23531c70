package model

import (
	"time"

	"github.com/google/uuid"
)

// OtpModel mirrors the 'otps' table.
type OtpModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);index:idx_otps_email_used;not null"`
	Code      string    `gorm:"type:varchar(6);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"index:idx_otps_email_used;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OtpModel) TableName() string {
	return "otps"
}
