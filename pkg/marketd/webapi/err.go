package webapi

import (
	"net/http"

	"github.com/apex/log"
	"github.com/draftleague/marketd/pkg/dldb/stor"
	"github.com/labstack/echo/v4"
)

// errorJSON is the response body shape for every failed request.
func errorJSON(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// storErrToHTTP maps a stor failure onto an HTTP response. Business-rule
// failures keep their message; anything else is an internal error and the
// details stay in the server log.
func storErrToHTTP(err error) error {
	kind, ok := stor.KindOfError(err)
	if !ok {
		log.WithError(err).Error("internal error handling request")
		return echo.NewHTTPError(http.StatusInternalServerError, errorJSON("internal error"))
	}

	switch kind {
	case stor.ErrKindNotFound:
		return echo.NewHTTPError(http.StatusNotFound, errorJSON(err.Error()))
	case stor.ErrKindValidation:
		return echo.NewHTTPError(http.StatusBadRequest, errorJSON(err.Error()))
	case stor.ErrKindPermissionDenied:
		return echo.NewHTTPError(http.StatusForbidden, errorJSON(err.Error()))
	default:
		return echo.NewHTTPError(http.StatusConflict, errorJSON(err.Error()))
	}
}
