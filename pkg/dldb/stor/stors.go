package stor

import (
	"github.com/draftleague/marketd/pkg/dldb/dlmodel"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TeamStor interface {
	CreateTeam(team *dlmodel.Team) (*dlmodel.Team, error)
	GetTeamByID(teamID int) (*dlmodel.Team, error)
	GetTeamByUUID(teamUUID string) (*dlmodel.Team, error)
	GetTeamForDraftUser(userID, draftID int) (*dlmodel.Team, error)
	GetTeamsByDraft(draftID int) ([]dlmodel.Team, error)
	UpdateTeamPoints(teamID, points int) error
}

type PlayerStor interface {
	CreatePlayer(player *dlmodel.Player) (*dlmodel.Player, error)
	GetPlayerByID(playerID int) (*dlmodel.Player, error)
	GetPlayerBySlug(playerSlug string) (*dlmodel.Player, error)
	CreateDraftPlayer(dp *dlmodel.DraftPlayer) (*dlmodel.DraftPlayer, error)
	GetDraftPlayerByID(draftPlayerID int) (*dlmodel.DraftPlayer, error)
	GetDraftPlayersByTeam(teamID int) ([]dlmodel.DraftPlayer, error)
	ListUnownedDraftPlayers(draftID int) ([]dlmodel.DraftPlayer, error)
}

type UserStor interface {
	CreateUser(user *dlmodel.User) (*dlmodel.User, error)
	GetUserByAPIToken(apiToken string) (*dlmodel.User, error)
	GetUserByEmail(email string) (*dlmodel.User, error)
}

type DraftStor interface {
	CreateLeague(league *dlmodel.League) (*dlmodel.League, error)
	CreateDraft(draft *dlmodel.Draft) (*dlmodel.Draft, error)
	GetDraftByID(draftID int) (*dlmodel.Draft, error)
	CreateDraftUser(draftUser *dlmodel.DraftUser) (*dlmodel.DraftUser, error)
	GetDraftUserForUserAndDraft(userID, draftID int) (*dlmodel.DraftUser, error)
}

// MarketStor is the negotiation engine. Mutating calls are atomic: they
// either apply every effect they describe or none of them.
type MarketStor interface {
	SubmitOffer(biddingTeamID, draftPlayerID int, amount decimal.Decimal) (*dlmodel.TransferOffer, error)
	AcceptOffer(offerID, actingTeamID int) (*dlmodel.Transfer, error)
	RejectOffer(offerID, actingTeamID int) (*dlmodel.TransferOffer, error)
	CounterOffer(offerID, counteringTeamID int, amount decimal.Decimal) (*dlmodel.TransferOffer, error)
	PayReleaseClause(biddingTeamID, draftPlayerID int) (*dlmodel.Transfer, error)
	SetReleaseClause(actingTeamID, draftPlayerID int, amount decimal.Decimal) (*dlmodel.DraftPlayer, error)
	ClearReleaseClause(actingTeamID, draftPlayerID int) (*dlmodel.DraftPlayer, error)
	GetOffer(offerID int) (*dlmodel.TransferOffer, error)
	GetOffersForDraftPlayer(draftPlayerID int) ([]dlmodel.TransferOffer, error)
	GetProcess(processID int) (*dlmodel.TransferProcess, error)
	GetOpenProcessesForDraftPlayer(draftPlayerID int) ([]dlmodel.TransferProcess, error)
	GetTransfersForDraft(draftID int) ([]dlmodel.Transfer, error)
}

type Stors struct {
	TeamStor   TeamStor
	PlayerStor PlayerStor
	UserStor   UserStor
	DraftStor  DraftStor
	MarketStor MarketStor
}

func NewGormStors(db *gorm.DB, maxOffersPerSide int) *Stors {
	return &Stors{
		TeamStor:   NewGormTeamStor(db),
		PlayerStor: NewGormPlayerStor(db),
		UserStor:   NewGormUserStor(db),
		DraftStor:  NewGormDraftStor(db),
		MarketStor: NewGormMarketStor(db, maxOffersPerSide),
	}
}
