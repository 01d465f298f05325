package cmd

import (
	"github.com/draftleague/marketd/pkg/dldb/stor"
	"github.com/draftleague/marketd/pkg/marketd/webapi"
	"github.com/draftleague/marketd/pkg/marketd/webapi/apimiddleware"
	"github.com/labstack/echo/v4"
)

type RouteOpts struct {
	Stors *stor.Stors
}

func setupRoutes(e *echo.Echo, opts RouteOpts) {
	apikeyCache := apimiddleware.NewAPIKeyCache(opts.Stors.UserStor)

	g := e.Group("/api")
	g.Use(apimiddleware.APIKeyAuth(apimiddleware.APIKeyConfig{
		Keyname:         "apikey",
		GetUserByAPIKey: apikeyCache.GetUserByAPIKey,
	}))

	marketController := webapi.NewMarketController(opts.Stors.MarketStor, opts.Stors.TeamStor)
	g.POST("/drafts/:draft_id/offers", marketController.SubmitOffer)
	g.PATCH("/drafts/:draft_id/offers/:offer_id/accept", marketController.AcceptOffer)
	g.PATCH("/drafts/:draft_id/offers/:offer_id/reject", marketController.RejectOffer)
	g.POST("/drafts/:draft_id/offers/:offer_id/counter", marketController.CounterOffer)
	g.POST("/drafts/:draft_id/players/:draft_player_id/clause/pay", marketController.PayReleaseClause)
	g.PUT("/drafts/:draft_id/players/:draft_player_id/clause", marketController.SetReleaseClause)
	g.GET("/drafts/:draft_id/transfers", marketController.GetTransfers)
	g.GET("/offers/:offer_id", marketController.GetOffer)
	g.GET("/players/:draft_player_id/offers", marketController.GetPlayerOffers)

	teamController := webapi.NewTeamController(opts.Stors.TeamStor, opts.Stors.PlayerStor)
	g.GET("/drafts/:draft_id/team", teamController.MyTeam)
	g.GET("/drafts/:draft_id/teams/:team_id", teamController.ViewTeam)
	g.GET("/drafts/:draft_id/players/free", teamController.FreeAgents)
}
