package model

import "time"

// UserModel mirrors the 'users' table of the user service. Department and
// address live in the directory service, so only their ids are stored.
type UserModel struct {
	UserID       string `gorm:"type:varchar(36);primary_key"`
	Name         string `gorm:"type:varchar(200);not null"`
	Email        string `gorm:"type:varchar(255)"`
	DepartmentID *int64
	AddressID    *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
