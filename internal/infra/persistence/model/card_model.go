package model

import "time"

// CardModel mirrors the 'cards' table.
type CardModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OwnerID     int64     `gorm:"column:owner_id;not null;index:idx_cards_owner_name,priority:1"`
	Name        string    `gorm:"type:varchar(255);not null;index:idx_cards_owner_name,priority:2"`
	Description *string   `gorm:"type:text"`
	Color       *string   `gorm:"type:varchar(7)"`
	Status      string    `gorm:"type:varchar(20);not null;default:TO_DO"`
	CreatedAt   time.Time `gorm:"<-:create"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CardModel) TableName() string {
	return "cards"
}
