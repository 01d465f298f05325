package webapi

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/draftleague/marketd/pkg/dldb"
	"github.com/draftleague/marketd/pkg/dldb/dlmodel"
	"github.com/draftleague/marketd/pkg/dldb/stor"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// apiFixture is a two-team draft for exercising the controllers: userA owns
// teamA, userB owns teamB, and teamB owns one draft player worth 300.
type apiFixture struct {
	db    *gorm.DB
	stors *stor.Stors

	draft   *dlmodel.Draft
	userA   *dlmodel.User
	userB   *dlmodel.User
	teamA   *dlmodel.Team
	teamB   *dlmodel.Team
	striker *dlmodel.DraftPlayer
}

func newAPIFixture(t *testing.T) *apiFixture {
	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:webapitest%d?mode=memory&cache=shared", n)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dldb.RunMigrations(db))

	f := &apiFixture{db: db, stors: stor.NewGormStors(db, 0)}

	league, err := f.stors.DraftStor.CreateLeague(&dlmodel.League{Name: "API League"})
	require.NoError(t, err)
	f.draft, err = f.stors.DraftStor.CreateDraft(&dlmodel.Draft{Name: "API Draft", LeagueID: league.ID})
	require.NoError(t, err)

	makeTeam := func(name, email string, pickOrder int) (*dlmodel.User, *dlmodel.Team) {
		user, err := f.stors.UserStor.CreateUser(&dlmodel.User{Name: name, Email: email})
		require.NoError(t, err)

		draftUser, err := f.stors.DraftStor.CreateDraftUser(&dlmodel.DraftUser{
			UserID:    user.ID,
			DraftID:   f.draft.ID,
			PickOrder: pickOrder,
		})
		require.NoError(t, err)

		team, err := f.stors.TeamStor.CreateTeam(&dlmodel.Team{
			Name:        name,
			DraftID:     f.draft.ID,
			DraftUserID: draftUser.ID,
			Budget:      decimal.NewFromInt(1000),
		})
		require.NoError(t, err)

		return user, team
	}

	f.userA, f.teamA = makeTeam("Team A", "a@test.com", 1)
	f.userB, f.teamB = makeTeam("Team B", "b@test.com", 2)

	player, err := f.stors.PlayerStor.CreatePlayer(&dlmodel.Player{
		Name:     "Striker",
		Gender:   "f",
		Position: "forward",
		Element:  "fire",
		Value:    decimal.NewFromInt(300),
	})
	require.NoError(t, err)

	f.striker, err = f.stors.PlayerStor.CreateDraftPlayer(&dlmodel.DraftPlayer{
		PlayerID: player.ID,
		DraftID:  f.draft.ID,
		TeamID:   &f.teamB.ID,
		Name:     player.Name,
	})
	require.NoError(t, err)

	return f
}
