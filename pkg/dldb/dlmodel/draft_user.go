package dlmodel

import "time"

// DraftUser binds a User to a Draft and carries their pick order.
type DraftUser struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	User      *User  `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	DraftID   int    `json:"draft_id"`
	Draft     *Draft `json:"draft,omitempty" gorm:"foreignKey:DraftID;references:ID"`
	PickOrder int    `json:"pick_order"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
