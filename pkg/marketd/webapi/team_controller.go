package webapi

import (
	"net/http"
	"strconv"

	"github.com/draftleague/marketd/pkg/dldb/dlmodel"
	"github.com/draftleague/marketd/pkg/dldb/stor"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type TeamController struct {
	teamStor   stor.TeamStor
	playerStor stor.PlayerStor
}

func NewTeamController(teamStor stor.TeamStor, playerStor stor.PlayerStor) *TeamController {
	return &TeamController{
		teamStor:   teamStor,
		playerStor: playerStor,
	}
}

type squadPlayer struct {
	ID            int                 `json:"id"`
	Name          string              `json:"name"`
	Gender        string              `json:"gender"`
	Position      string              `json:"position"`
	Element       string              `json:"element"`
	Value         decimal.Decimal     `json:"value"`
	ReleaseClause decimal.NullDecimal `json:"release_clause"`
}

func toSquadPlayers(dps []dlmodel.DraftPlayer) []squadPlayer {
	players := make([]squadPlayer, len(dps))
	for i, dp := range dps {
		players[i] = squadPlayer{
			ID:            dp.ID,
			Name:          dp.Name,
			ReleaseClause: dp.ReleaseClause,
		}
		if dp.Player != nil {
			players[i].Gender = dp.Player.Gender
			players[i].Position = dp.Player.Position
			players[i].Element = dp.Player.Element
			players[i].Value = dp.Player.Value
		}
	}
	return players
}

// MyTeam returns the caller's own team with budgets and squad.
func (c *TeamController) MyTeam(ctx echo.Context) error {
	draftID, err := strconv.Atoi(ctx.Param("draft_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errorJSON("Invalid draft ID"))
	}

	user, ok := ctx.Get("user").(*dlmodel.User)
	if !ok || user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, errorJSON("User not authenticated"))
	}

	team, err := c.teamStor.GetTeamForDraftUser(user.ID, draftID)
	if err != nil {
		return storErrToHTTP(err)
	}

	dps, err := c.playerStor.GetDraftPlayersByTeam(team.ID)
	if err != nil {
		return storErrToHTTP(err)
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"id":            team.ID,
		"name":          team.Name,
		"budget":        team.Budget,
		"clause_budget": team.ClauseBudget,
		"points":        team.Points,
		"players":       toSquadPlayers(dps),
	})
}

// FreeAgents lists the draft players nobody owns yet.
func (c *TeamController) FreeAgents(ctx echo.Context) error {
	draftID, err := strconv.Atoi(ctx.Param("draft_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errorJSON("Invalid draft ID"))
	}

	dps, err := c.playerStor.ListUnownedDraftPlayers(draftID)
	if err != nil {
		return storErrToHTTP(err)
	}

	return ctx.JSON(http.StatusOK, toSquadPlayers(dps))
}

// ViewTeam returns another team's public view: squad but no budgets.
func (c *TeamController) ViewTeam(ctx echo.Context) error {
	teamID, err := strconv.Atoi(ctx.Param("team_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errorJSON("Invalid team ID"))
	}

	team, err := c.teamStor.GetTeamByID(teamID)
	if err != nil {
		return storErrToHTTP(err)
	}

	dps, err := c.playerStor.GetDraftPlayersByTeam(team.ID)
	if err != nil {
		return storErrToHTTP(err)
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"id":      team.ID,
		"name":    team.Name,
		"points":  team.Points,
		"players": toSquadPlayers(dps),
	})
}
