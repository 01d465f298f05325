package dlmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ProcessOpen     = "open"
	ProcessFinished = "finished"
)

// TransferProcess groups the chain of offers and counter-offers for one
// player between one bidding team and the team that owned the player when
// the process opened. Amount is the money escrowed from the bidding team's
// budget; it only changes while both team rows are locked.
//
// At most one open process may exist per (offering team, draft player) pair.
type TransferProcess struct {
	ID             int             `json:"id"`
	UUID           string          `json:"uuid"`
	DraftPlayerID  int             `json:"draft_player_id"`
	DraftPlayer    *DraftPlayer    `json:"draft_player,omitempty" gorm:"foreignKey:DraftPlayerID;references:ID"`
	OfferingTeamID int             `json:"offering_team_id"`
	OfferingTeam   *Team           `json:"offering_team,omitempty" gorm:"foreignKey:OfferingTeamID;references:ID"`
	TargetTeamID   int             `json:"target_team_id"`
	TargetTeam     *Team           `json:"target_team,omitempty" gorm:"foreignKey:TargetTeamID;references:ID"`
	Amount         decimal.Decimal `json:"amount" gorm:"type:decimal(12,2)"`
	Status         string          `json:"status"`
	MaxOffers      int             `json:"max_offers"`
	FinishedAt     *time.Time      `json:"finished_at"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (p *TransferProcess) IsOpen() bool {
	return p.Status == ProcessOpen
}
