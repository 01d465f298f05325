package webapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/draftleague/marketd/pkg/dldb/dlmodel"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// doJSON invokes a handler directly with an echo context carrying the given
// user, route params and optional JSON body.
func doJSON(t *testing.T, user *dlmodel.User, method, body string, params map[string]string, handler echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/", nil)
	} else {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", user)

	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for name, value := range params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return rec, handler(c)
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %v", err)
	return he.Code
}

func TestSubmitOfferEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	controller := NewMarketController(f.stors.MarketStor, f.stors.TeamStor)

	body := fmt.Sprintf(`{"draft_player_id": %d, "offer": "500"}`, f.striker.ID)
	rec, err := doJSON(t, f.userA, http.MethodPost, body,
		map[string]string{"draft_id": fmt.Sprintf("%d", f.draft.ID)},
		controller.SubmitOffer)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, rec.Code)

	var offer dlmodel.TransferOffer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &offer))
	require.Equal(t, dlmodel.OfferPending, offer.Status)
	require.Equal(t, f.teamA.ID, offer.OfferingTeamID)

	team, err := f.stors.TeamStor.GetTeamByID(f.teamA.ID)
	require.NoError(t, err)
	require.Equal(t, "500", team.Budget.String())
}

func TestSubmitOfferEndpointMapsBusinessFailures(t *testing.T) {
	f := newAPIFixture(t)
	controller := NewMarketController(f.stors.MarketStor, f.stors.TeamStor)

	// Below market value comes back as a conflict.
	body := fmt.Sprintf(`{"draft_player_id": %d, "offer": "100"}`, f.striker.ID)
	_, err := doJSON(t, f.userA, http.MethodPost, body,
		map[string]string{"draft_id": fmt.Sprintf("%d", f.draft.ID)},
		controller.SubmitOffer)
	require.Equal(t, http.StatusConflict, httpCode(t, err))

	// A missing body field is a bad request.
	_, err = doJSON(t, f.userA, http.MethodPost, `{"offer": "500"}`,
		map[string]string{"draft_id": fmt.Sprintf("%d", f.draft.ID)},
		controller.SubmitOffer)
	require.Equal(t, http.StatusBadRequest, httpCode(t, err))

	// A user with no team in the draft gets a not found.
	outsider, createErr := f.stors.UserStor.CreateUser(&dlmodel.User{Name: "Outsider", Email: "x@test.com"})
	require.NoError(t, createErr)
	body = fmt.Sprintf(`{"draft_player_id": %d, "offer": "500"}`, f.striker.ID)
	_, err = doJSON(t, outsider, http.MethodPost, body,
		map[string]string{"draft_id": fmt.Sprintf("%d", f.draft.ID)},
		controller.SubmitOffer)
	require.Equal(t, http.StatusNotFound, httpCode(t, err))
}

func TestAcceptOfferEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	controller := NewMarketController(f.stors.MarketStor, f.stors.TeamStor)

	offer, err := f.stors.MarketStor.SubmitOffer(f.teamA.ID, f.striker.ID, mustDecimal(t, "500"))
	require.NoError(t, err)

	params := map[string]string{
		"draft_id": fmt.Sprintf("%d", f.draft.ID),
		"offer_id": fmt.Sprintf("%d", offer.ID),
	}

	// The bidder accepting its own offer is forbidden.
	_, handlerErr := doJSON(t, f.userA, http.MethodPatch, "", params, controller.AcceptOffer)
	require.Equal(t, http.StatusForbidden, httpCode(t, handlerErr))

	rec, handlerErr := doJSON(t, f.userB, http.MethodPatch, "", params, controller.AcceptOffer)
	require.NoError(t, handlerErr)
	require.Equal(t, http.StatusOK, rec.Code)

	var transfer dlmodel.Transfer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &transfer))
	require.Equal(t, f.teamA.ID, transfer.ToTeamID)

	// A second accept hits the terminal-state rule.
	_, handlerErr = doJSON(t, f.userB, http.MethodPatch, "", params, controller.AcceptOffer)
	require.Equal(t, http.StatusConflict, httpCode(t, handlerErr))
}

func TestCounterOfferEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	controller := NewMarketController(f.stors.MarketStor, f.stors.TeamStor)

	offer, err := f.stors.MarketStor.SubmitOffer(f.teamA.ID, f.striker.ID, mustDecimal(t, "500"))
	require.NoError(t, err)

	rec, handlerErr := doJSON(t, f.userB, http.MethodPost, `{"offer": "700"}`,
		map[string]string{
			"draft_id": fmt.Sprintf("%d", f.draft.ID),
			"offer_id": fmt.Sprintf("%d", offer.ID),
		},
		controller.CounterOffer)
	require.NoError(t, handlerErr)
	require.Equal(t, http.StatusCreated, rec.Code)

	var counter dlmodel.TransferOffer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counter))
	require.Equal(t, f.teamB.ID, counter.OfferingTeamID)
	require.Equal(t, f.teamA.ID, counter.TargetTeamID)
	require.Equal(t, dlmodel.OfferSourceCounter, counter.Source)
}

func TestReleaseClauseEndpoints(t *testing.T) {
	f := newAPIFixture(t)
	controller := NewMarketController(f.stors.MarketStor, f.stors.TeamStor)

	params := map[string]string{
		"draft_id":        fmt.Sprintf("%d", f.draft.ID),
		"draft_player_id": fmt.Sprintf("%d", f.striker.ID),
	}

	// Owner sets a clause.
	rec, err := doJSON(t, f.userB, http.MethodPut, `{"amount": "600"}`, params, controller.SetReleaseClause)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	// Another team buys the player out.
	rec, err = doJSON(t, f.userA, http.MethodPost, "", params, controller.PayReleaseClause)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var transfer dlmodel.Transfer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &transfer))
	require.True(t, transfer.ReleaseClausePaid)
	require.Equal(t, f.teamA.ID, transfer.ToTeamID)

	// Zero amount clears the clause (which the buyout already did).
	rec, err = doJSON(t, f.userA, http.MethodPut, `{"amount": "0"}`, params, controller.SetReleaseClause)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var dp dlmodel.DraftPlayer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dp))
	require.False(t, dp.ReleaseClause.Valid)
}

func TestGetTransfersEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	controller := NewMarketController(f.stors.MarketStor, f.stors.TeamStor)

	offer, err := f.stors.MarketStor.SubmitOffer(f.teamA.ID, f.striker.ID, mustDecimal(t, "500"))
	require.NoError(t, err)
	_, err = f.stors.MarketStor.AcceptOffer(offer.ID, f.teamB.ID)
	require.NoError(t, err)

	rec, handlerErr := doJSON(t, f.userA, http.MethodGet, "",
		map[string]string{"draft_id": fmt.Sprintf("%d", f.draft.ID)},
		controller.GetTransfers)
	require.NoError(t, handlerErr)
	require.Equal(t, http.StatusOK, rec.Code)

	var transfers []dlmodel.Transfer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &transfers))
	require.Len(t, transfers, 1)
}
