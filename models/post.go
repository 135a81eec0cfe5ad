package models

import "time"

type Visibility string

const (
	VisibilityDraft  Visibility = "draft"
	VisibilityPublic Visibility = "public"
)

type Post struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ColumnID  uint      `json:"column_id" gorm:"not null;index"`
	Column    *Column   `json:"column,omitempty" gorm:"foreignKey:ColumnID"`
	WriterID  uint      `json:"writer_id" gorm:"not null;index"`
	Writer    *User     `json:"writer,omitempty" gorm:"foreignKey:WriterID"`
	Title     string    `json:"title" gorm:"size:100;not null"`
	Text      string    `json:"text" gorm:"type:text"`
	Public    bool      `json:"public" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Visibility is draft until a moderator marks the post public. There is no way back.
func (p *Post) Visibility() Visibility {
	if p.Public {
		return VisibilityPublic
	}
	return VisibilityDraft
}
