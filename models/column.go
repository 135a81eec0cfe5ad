package models

import "time"

type Column struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	CoordinatorID uint      `json:"coordinator_id" gorm:"not null;index"`
	Coordinator   User      `json:"coordinator" gorm:"foreignKey:CoordinatorID"`
	Name          string    `json:"name" gorm:"size:100;not null"`
	Writers       []User    `json:"writers" gorm:"many2many:column_writers;"`
	Moderators    []User    `json:"moderators" gorm:"many2many:column_moderators;"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (c *Column) HasWriter(userID uint) bool {
	return containsUser(c.Writers, userID)
}

func (c *Column) HasModerator(userID uint) bool {
	return containsUser(c.Moderators, userID)
}

func containsUser(users []User, id uint) bool {
	for _, u := range users {
		if u.ID == id {
			return true
		}
	}
	return false
}
