package dlmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// DraftPlayer is a catalog Player instantiated inside one draft. TeamID is
// null until the player is picked or bought. ReleaseClause, when set by the
// owning team, is the fixed price at which any other team can buy the player
// out instantly.
type DraftPlayer struct {
	ID            int                 `json:"id"`
	PlayerID      int                 `json:"player_id"`
	Player        *Player             `json:"player,omitempty" gorm:"foreignKey:PlayerID;references:ID"`
	DraftID       int                 `json:"draft_id"`
	TeamID        *int                `json:"team_id"`
	Team          *Team               `json:"team,omitempty" gorm:"foreignKey:TeamID;references:ID"`
	Name          string              `json:"name"`
	PickOrder     *int                `json:"pick_order"`
	ReleaseClause decimal.NullDecimal `json:"release_clause" gorm:"type:decimal(12,2)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OwnedBy reports whether the player currently belongs to teamID.
func (dp *DraftPlayer) OwnedBy(teamID int) bool {
	return dp.TeamID != nil && *dp.TeamID == teamID
}
