package stor

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/draftleague/marketd/pkg/dldb"
	"github.com/draftleague/marketd/pkg/dldb/dlmodel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Each test gets its own named in-memory database so state never leaks
// between tests in the package.
var testDBCounter int64

func newTestDB(t *testing.T) *gorm.DB {
	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:markettest%d?mode=memory&cache=shared", n)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// sqlite serializes everything through a single connection, which stands
	// in for the row locks mysql takes in production.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dldb.RunMigrations(db))

	return db
}

// marketFixture is a draft with four funded teams and three draft players:
// striker (value 300, owned by B), keeper (value 200, owned by A) and a free
// agent nobody owns. Every team starts with a budget of 1000.
type marketFixture struct {
	db    *gorm.DB
	stors *Stors

	draft *dlmodel.Draft
	teamA *dlmodel.Team
	teamB *dlmodel.Team
	teamC *dlmodel.Team
	teamD *dlmodel.Team

	striker *dlmodel.DraftPlayer
	keeper  *dlmodel.DraftPlayer
	free    *dlmodel.DraftPlayer
}

func newMarketFixture(t *testing.T, maxOffersPerSide int) *marketFixture {
	db := newTestDB(t)
	stors := NewGormStors(db, maxOffersPerSide)

	f := &marketFixture{db: db, stors: stors}

	league, err := stors.DraftStor.CreateLeague(&dlmodel.League{Name: "Test League"})
	require.NoError(t, err)

	f.draft, err = stors.DraftStor.CreateDraft(&dlmodel.Draft{Name: "Test Draft", LeagueID: league.ID})
	require.NoError(t, err)

	makeTeam := func(name, email string, pickOrder int) *dlmodel.Team {
		user, err := stors.UserStor.CreateUser(&dlmodel.User{Name: name, Email: email})
		require.NoError(t, err)

		draftUser, err := stors.DraftStor.CreateDraftUser(&dlmodel.DraftUser{
			UserID:    user.ID,
			DraftID:   f.draft.ID,
			PickOrder: pickOrder,
		})
		require.NoError(t, err)

		team, err := stors.TeamStor.CreateTeam(&dlmodel.Team{
			Name:        name,
			DraftID:     f.draft.ID,
			DraftUserID: draftUser.ID,
			Budget:      decimal.NewFromInt(1000),
		})
		require.NoError(t, err)

		return team
	}

	f.teamA = makeTeam("Team A", "a@test.com", 1)
	f.teamB = makeTeam("Team B", "b@test.com", 2)
	f.teamC = makeTeam("Team C", "c@test.com", 3)
	f.teamD = makeTeam("Team D", "d@test.com", 4)

	makeDraftPlayer := func(name string, value int64, ownerID *int) *dlmodel.DraftPlayer {
		player, err := stors.PlayerStor.CreatePlayer(&dlmodel.Player{
			Name:     name,
			Gender:   "f",
			Position: "forward",
			Element:  "fire",
			Value:    decimal.NewFromInt(value),
		})
		require.NoError(t, err)

		dp, err := stors.PlayerStor.CreateDraftPlayer(&dlmodel.DraftPlayer{
			PlayerID: player.ID,
			DraftID:  f.draft.ID,
			TeamID:   ownerID,
			Name:     name,
		})
		require.NoError(t, err)

		return dp
	}

	f.striker = makeDraftPlayer("Striker", 300, &f.teamB.ID)
	f.keeper = makeDraftPlayer("Keeper", 200, &f.teamA.ID)
	f.free = makeDraftPlayer("Free Agent", 100, nil)

	return f
}

func (f *marketFixture) reloadTeam(t *testing.T, teamID int) *dlmodel.Team {
	team, err := f.stors.TeamStor.GetTeamByID(teamID)
	require.NoError(t, err)
	return team
}

func (f *marketFixture) reloadDraftPlayer(t *testing.T, dpID int) *dlmodel.DraftPlayer {
	dp, err := f.stors.PlayerStor.GetDraftPlayerByID(dpID)
	require.NoError(t, err)
	return dp
}

// totalMoney sums every team budget plus the escrow held by open processes.
// It must stay constant across any sequence of market operations.
func (f *marketFixture) totalMoney(t *testing.T) decimal.Decimal {
	var teams []dlmodel.Team
	require.NoError(t, f.db.Find(&teams).Error)

	total := decimal.Zero
	for _, team := range teams {
		total = total.Add(team.Budget)
	}

	var processes []dlmodel.TransferProcess
	require.NoError(t, f.db.Where("status = ?", dlmodel.ProcessOpen).Find(&processes).Error)
	for _, p := range processes {
		total = total.Add(p.Amount)
	}

	return total
}

func requireDecimalEqual(t *testing.T, expected int64, actual decimal.Decimal) {
	t.Helper()
	require.True(t, actual.Equal(decimal.NewFromInt(expected)),
		"expected %d, got %s", expected, actual)
}
