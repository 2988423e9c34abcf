package model

import "time"

// PrincipalModel mirrors the 'principals' table, the credential store of
// the auth service.
type PrincipalModel struct {
	UserID       string `gorm:"type:varchar(36);primary_key"`
	Username     string `gorm:"type:varchar(100);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Locked       bool   `gorm:"not null;default:false"`
	Disabled     bool   `gorm:"not null;default:false"`
	ExpiresAt    *time.Time
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PrincipalModel) TableName() string {
	return "principals"
}
