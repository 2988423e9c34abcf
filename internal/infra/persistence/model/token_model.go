package model

import "time"

// RefreshTokenModel mirrors the 'refresh_tokens' table. The opaque token
// string is the primary key; one row per session.
type RefreshTokenModel struct {
	Token     string    `gorm:"type:varchar(36);primary_key"`
	UserID    string    `gorm:"type:varchar(36);not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// ActiveTokenModel mirrors the 'active_tokens' table, the ledger of issued
// access tokens consulted at sign-out.
type ActiveTokenModel struct {
	Token     string `gorm:"type:text;primary_key"`
	UserID    string `gorm:"type:varchar(36);not null;index"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActiveTokenModel) TableName() string {
	return "active_tokens"
}
