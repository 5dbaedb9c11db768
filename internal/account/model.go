package account

import "time"

type User struct {
	ID           int64     `gorm:"primaryKey"`
	Email        string    `gorm:"size:255;uniqueIndex"`
	PasswordHash string    `gorm:"size:255"`
	CreatedAt    time.Time
}
