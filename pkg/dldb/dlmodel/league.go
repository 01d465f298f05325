package dlmodel

import "time"

type League struct {
	ID        int    `json:"id"`
	UUID      string `json:"uuid"`
	Name      string `json:"name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
