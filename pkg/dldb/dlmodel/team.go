package dlmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// Team is a fantasy squad inside one draft. Budget and ClauseBudget are
// mutated only through the stor.LedgerStor while the team row is locked;
// nothing else is allowed to write them.
type Team struct {
	ID           int             `json:"id"`
	UUID         string          `json:"uuid"`
	Name         string          `json:"name"`
	DraftID      int             `json:"draft_id"`
	Draft        *Draft          `json:"draft,omitempty" gorm:"foreignKey:DraftID;references:ID"`
	DraftUserID  int             `json:"draft_user_id"`
	DraftUser    *DraftUser      `json:"draft_user,omitempty" gorm:"foreignKey:DraftUserID;references:ID"`
	Budget       decimal.Decimal `json:"budget" gorm:"type:decimal(12,2)"`
	ClauseBudget decimal.Decimal `json:"clause_budget" gorm:"type:decimal(12,2)"`
	Points       int             `json:"points"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
