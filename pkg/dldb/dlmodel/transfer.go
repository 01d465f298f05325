package dlmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is the receipt written when a player actually changes hands,
// either through an accepted offer or a release-clause buyout. Rows are
// append-only and never updated.
type Transfer struct {
	ID                int             `json:"id"`
	UUID              string          `json:"uuid"`
	DraftPlayerID     int             `json:"draft_player_id"`
	DraftPlayer       *DraftPlayer    `json:"draft_player,omitempty" gorm:"foreignKey:DraftPlayerID;references:ID"`
	FromTeamID        int             `json:"from_team_id"`
	FromTeam          *Team           `json:"from_team,omitempty" gorm:"foreignKey:FromTeamID;references:ID"`
	ToTeamID          int             `json:"to_team_id"`
	ToTeam            *Team           `json:"to_team,omitempty" gorm:"foreignKey:ToTeamID;references:ID"`
	AcceptedOfferID   int             `json:"accepted_offer_id"`
	AcceptedOffer     *TransferOffer  `json:"accepted_offer,omitempty" gorm:"foreignKey:AcceptedOfferID;references:ID"`
	Amount            decimal.Decimal `json:"amount" gorm:"type:decimal(12,2)"`
	ReleaseClausePaid bool            `json:"release_clause_paid"`
	CreatedAt         time.Time       `json:"created_at"`
}
