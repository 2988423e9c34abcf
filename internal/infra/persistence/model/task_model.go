package model

import "time"

// TaskModel mirrors the 'tasks' table of the task service.
type TaskModel struct {
	TaskID      int64  `gorm:"primary_key;autoIncrement"`
	Name        string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	UserID      string `gorm:"type:varchar(36);index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
