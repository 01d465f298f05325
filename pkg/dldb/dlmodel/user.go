package dlmodel

import "time"

type User struct {
	ID        int    `json:"id"`
	UUID      string `json:"uuid"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	ApiToken  string `json:"-"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
