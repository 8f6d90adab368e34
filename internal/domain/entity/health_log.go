package entity

import "time"

// HealthLog is part of the schema only; nothing reads or writes it yet.
type HealthLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"index" json:"user_id"`
	Type      string    `gorm:"type:text" json:"type"`
	Value     string    `gorm:"type:text" json:"value"`
	Unit      string    `gorm:"type:text" json:"unit"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (HealthLog) TableName() string {
	return "health_logs"
}
