package dlmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// Player is a catalog entry. Value is the market value every offer for the
// player is validated against.
type Player struct {
	ID        int             `json:"id"`
	UUID      string          `json:"uuid"`
	Slug      string          `json:"slug"`
	Name      string          `json:"name"`
	Gender    string          `json:"gender"`
	Position  string          `json:"position"`
	Element   string          `json:"element"`
	Value     decimal.Decimal `json:"value" gorm:"type:decimal(12,2)"`
	Sprite    string          `json:"sprite"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
