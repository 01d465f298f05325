package dlmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OfferPending   = "pending"
	OfferAccepted  = "accepted"
	OfferRejected  = "rejected"
	OfferCountered = "countered"
)

const (
	OfferSourceTeam          = "team"
	OfferSourceCounter       = "counter"
	OfferSourceReleaseClause = "release_clause"
)

// TransferOffer is one priced proposal inside a TransferProcess. Offers are
// immutable except for their status transition; a counter never edits the
// countered offer, it spawns a new pending one that links back through
// SourceOfferID.
//
// Exactly one offer per process is pending at any time.
type TransferOffer struct {
	ID                int             `json:"id"`
	UUID              string          `json:"uuid"`
	TransferProcessID int             `json:"transfer_process_id"`
	TransferProcess   *TransferProcess `json:"transfer_process,omitempty" gorm:"foreignKey:TransferProcessID;references:ID"`
	DraftPlayerID     int             `json:"draft_player_id"`
	DraftPlayer       *DraftPlayer    `json:"draft_player,omitempty" gorm:"foreignKey:DraftPlayerID;references:ID"`
	OfferingTeamID    int             `json:"offering_team_id"`
	OfferingTeam      *Team           `json:"offering_team,omitempty" gorm:"foreignKey:OfferingTeamID;references:ID"`
	TargetTeamID      int             `json:"target_team_id"`
	TargetTeam        *Team           `json:"target_team,omitempty" gorm:"foreignKey:TargetTeamID;references:ID"`
	Offer             decimal.Decimal `json:"offer" gorm:"type:decimal(12,2)"`
	Status            string          `json:"status"`
	Source            string          `json:"source"`
	SourceOfferID     *int            `json:"source_offer_id"`
	AcceptedAt        *time.Time      `json:"accepted_at"`
	RejectedAt        *time.Time      `json:"rejected_at"`
	CounteredAt       *time.Time      `json:"countered_at"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (o *TransferOffer) IsPending() bool {
	return o.Status == OfferPending
}
