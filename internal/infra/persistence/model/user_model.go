package model

import "time"

// UserModel mirrors the 'users' table. Roles is stored as a comma separated list.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null"`
	Roles        string `gorm:"type:varchar(255);not null;default:member"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Cards []CardModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
