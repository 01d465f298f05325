package dlmodel

import "time"

type Draft struct {
	ID        int     `json:"id"`
	UUID      string  `json:"uuid"`
	Name      string  `json:"name"`
	LeagueID  int     `json:"league_id"`
	League    *League `json:"league,omitempty" gorm:"foreignKey:LeagueID;references:ID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
