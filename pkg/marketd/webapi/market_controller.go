package webapi

import (
	"net/http"
	"strconv"

	"github.com/apex/log"
	"github.com/draftleague/marketd/pkg/dldb/dlmodel"
	"github.com/draftleague/marketd/pkg/dldb/stor"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type MarketController struct {
	marketStor stor.MarketStor
	teamStor   stor.TeamStor
}

func NewMarketController(marketStor stor.MarketStor, teamStor stor.TeamStor) *MarketController {
	return &MarketController{
		marketStor: marketStor,
		teamStor:   teamStor,
	}
}

// actingTeam resolves the team the authenticated user controls in the draft
// named by the :draft_id route param.
func (c *MarketController) actingTeam(ctx echo.Context) (*dlmodel.Team, error) {
	draftID, err := strconv.Atoi(ctx.Param("draft_id"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errorJSON("Invalid draft ID"))
	}

	user, ok := ctx.Get("user").(*dlmodel.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errorJSON("User not authenticated"))
	}

	team, err := c.teamStor.GetTeamForDraftUser(user.ID, draftID)
	if err != nil {
		return nil, storErrToHTTP(err)
	}

	return team, nil
}

func (c *MarketController) SubmitOffer(ctx echo.Context) error {
	var req struct {
		DraftPlayerID int             `json:"draft_player_id"`
		Offer         decimal.Decimal `json:"offer"`
	}

	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errorJSON("Invalid JSON body"))
	}

	if req.DraftPlayerID == 0 || req.Offer.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, errorJSON("Missing draft_player_id or offer"))
	}

	team, err := c.actingTeam(ctx)
	if err != nil {
		return err
	}

	offer, err := c.marketStor.SubmitOffer(team.ID, req.DraftPlayerID, req.Offer)
	if err != nil {
		return storErrToHTTP(err)
	}

	return ctx.JSON(http.StatusCreated, offer)
}

func (c *MarketController) AcceptOffer(ctx echo.Context) error {
	offerID, err := strconv.Atoi(ctx.Param("offer_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errorJSON("Invalid offer ID"))
	}

	team, err := c.actingTeam(ctx)
	if err != nil {
		return err
	}

	transfer, err := c.marketStor.AcceptOffer(offerID, team.ID)
	if err != nil {
		return storErrToHTTP(err)
	}

	log.WithFields(log.Fields{
		"draft_player_id": transfer.DraftPlayerID,
		"from_team_id":    transfer.FromTeamID,
		"to_team_id":      transfer.ToTeamID,
		"amount":          transfer.Amount,
	}).Info("transfer completed")

	return ctx.JSON(http.StatusOK, transfer)
}

func (c *MarketController) RejectOffer(ctx echo.Context) error {
	offerID, err := strconv.Atoi(ctx.Param("offer_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errorJSON("Invalid offer ID"))
	}

	team, err := c.actingTeam(ctx)
	if err != nil {
		return err
	}

	offer, err := c.marketStor.RejectOffer(offerID, team.ID)
	if err != nil {
		return storErrToHTTP(err)
	}

	return ctx.JSON(http.StatusOK, offer)
}

func (c *MarketController) CounterOffer(ctx echo.Context) error {
	offerID, err := strconv.Atoi(ctx.Param("offer_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errorJSON("Invalid offer ID"))
	}

	var req struct {
		Offer decimal.Decimal `json:"offer"`
	}
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errorJSON("Invalid JSON body"))
	}
	if req.Offer.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, errorJSON("Missing offer"))
	}

	team, err := c.actingTeam(ctx)
	if err != nil {
		return err
	}

	counter, err := c.marketStor.CounterOffer(offerID, team.ID, req.Offer)
	if err != nil {
		return storErrToHTTP(err)
	}

	return ctx.JSON(http.StatusCreated, counter)
}

func (c *MarketController) PayReleaseClause(ctx echo.Context) error {
	draftPlayerID, err := strconv.Atoi(ctx.Param("draft_player_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errorJSON("Invalid draft player ID"))
	}

	team, err := c.actingTeam(ctx)
	if err != nil {
		return err
	}

	transfer, err := c.marketStor.PayReleaseClause(team.ID, draftPlayerID)
	if err != nil {
		return storErrToHTTP(err)
	}

	log.WithFields(log.Fields{
		"draft_player_id": transfer.DraftPlayerID,
		"from_team_id":    transfer.FromTeamID,
		"to_team_id":      transfer.ToTeamID,
		"amount":          transfer.Amount,
	}).Info("release clause paid")

	return ctx.JSON(http.StatusOK, transfer)
}

func (c *MarketController) SetReleaseClause(ctx echo.Context) error {
	draftPlayerID, err := strconv.Atoi(ctx.Param("draft_player_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errorJSON("Invalid draft player ID"))
	}

	var req struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errorJSON("Invalid JSON body"))
	}

	team, err := c.actingTeam(ctx)
	if err != nil {
		return err
	}

	var dp *dlmodel.DraftPlayer
	if req.Amount.IsZero() {
		dp, err = c.marketStor.ClearReleaseClause(team.ID, draftPlayerID)
	} else {
		dp, err = c.marketStor.SetReleaseClause(team.ID, draftPlayerID, req.Amount)
	}
	if err != nil {
		return storErrToHTTP(err)
	}

	return ctx.JSON(http.StatusOK, dp)
}

func (c *MarketController) GetOffer(ctx echo.Context) error {
	offerID, err := strconv.Atoi(ctx.Param("offer_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errorJSON("Invalid offer ID"))
	}

	offer, err := c.marketStor.GetOffer(offerID)
	if err != nil {
		return storErrToHTTP(err)
	}

	return ctx.JSON(http.StatusOK, offer)
}

func (c *MarketController) GetPlayerOffers(ctx echo.Context) error {
	draftPlayerID, err := strconv.Atoi(ctx.Param("draft_player_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errorJSON("Invalid draft player ID"))
	}

	offers, err := c.marketStor.GetOffersForDraftPlayer(draftPlayerID)
	if err != nil {
		return storErrToHTTP(err)
	}

	return ctx.JSON(http.StatusOK, offers)
}

func (c *MarketController) GetTransfers(ctx echo.Context) error {
	draftID, err := strconv.Atoi(ctx.Param("draft_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errorJSON("Invalid draft ID"))
	}

	transfers, err := c.marketStor.GetTransfersForDraft(draftID)
	if err != nil {
		return storErrToHTTP(err)
	}

	return ctx.JSON(http.StatusOK, transfers)
}
