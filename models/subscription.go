package models

import "time"

// Subscription links a reader to a column they follow. The pair is not unique.
type Subscription struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ReaderID  uint      `json:"reader_id" gorm:"not null;index"`
	Reader    *User     `json:"reader,omitempty" gorm:"foreignKey:ReaderID"`
	ColumnID  uint      `json:"column_id" gorm:"not null;index"`
	Column    *Column   `json:"column,omitempty" gorm:"foreignKey:ColumnID"`
	CreatedAt time.Time `json:"created_at"`
}
