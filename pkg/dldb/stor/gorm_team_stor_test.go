package stor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetTeamForDraftUser(t *testing.T) {
	f := newMarketFixture(t, 0)

	var users []struct{ ID int }
	require.NoError(t, f.db.Table("users").Order("id").Find(&users).Error)
	require.Len(t, users, 4)

	team, err := f.stors.TeamStor.GetTeamForDraftUser(users[0].ID, f.draft.ID)
	require.NoError(t, err)
	require.Equal(t, f.teamA.ID, team.ID)

	_, err = f.stors.TeamStor.GetTeamForDraftUser(users[0].ID, f.draft.ID+100)
	kind, ok := KindOfError(err)
	require.True(t, ok)
	require.Equal(t, ErrKindNotFound, kind)
}

func TestGetTeamByUUID(t *testing.T) {
	f := newMarketFixture(t, 0)

	team, err := f.stors.TeamStor.GetTeamByUUID(f.teamB.UUID)
	require.NoError(t, err)
	require.Equal(t, f.teamB.ID, team.ID)

	_, err = f.stors.TeamStor.GetTeamByUUID("no-such-uuid")
	kind, ok := KindOfError(err)
	require.True(t, ok)
	require.Equal(t, ErrKindNotFound, kind)
}

func TestGetTeamsByDraft(t *testing.T) {
	f := newMarketFixture(t, 0)

	teams, err := f.stors.TeamStor.GetTeamsByDraft(f.draft.ID)
	require.NoError(t, err)
	require.Len(t, teams, 4)
	require.Equal(t, f.teamA.ID, teams[0].ID)
}

func TestUpdateTeamPoints(t *testing.T) {
	f := newMarketFixture(t, 0)

	require.NoError(t, f.stors.TeamStor.UpdateTeamPoints(f.teamA.ID, 12))
	require.NoError(t, f.stors.TeamStor.UpdateTeamPoints(f.teamA.ID, 5))

	team := f.reloadTeam(t, f.teamA.ID)
	require.Equal(t, 17, team.Points)
}
