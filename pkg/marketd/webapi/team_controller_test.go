package webapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMyTeamEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	controller := NewTeamController(f.stors.TeamStor, f.stors.PlayerStor)

	rec, err := doJSON(t, f.userB, http.MethodGet, "",
		map[string]string{"draft_id": fmt.Sprintf("%d", f.draft.ID)},
		controller.MyTeam)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp, "budget")
	require.Contains(t, resp, "clause_budget")

	var players []squadPlayer
	require.NoError(t, json.Unmarshal(resp["players"], &players))
	require.Len(t, players, 1)
	require.Equal(t, f.striker.ID, players[0].ID)
}

func TestViewTeamHidesBudgets(t *testing.T) {
	f := newAPIFixture(t)
	controller := NewTeamController(f.stors.TeamStor, f.stors.PlayerStor)

	rec, err := doJSON(t, f.userA, http.MethodGet, "",
		map[string]string{
			"draft_id": fmt.Sprintf("%d", f.draft.ID),
			"team_id":  fmt.Sprintf("%d", f.teamB.ID),
		},
		controller.ViewTeam)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotContains(t, resp, "budget")
	require.NotContains(t, resp, "clause_budget")
	require.Contains(t, resp, "players")
}
