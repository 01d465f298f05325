package apimiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/draftleague/marketd/pkg/dldb/dlmodel"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func lookupFor(users map[string]*dlmodel.User) GetUserByAPIKeyFN {
	return func(apikey string) (*dlmodel.User, error) {
		if user, ok := users[apikey]; ok {
			return user, nil
		}
		return nil, errors.New("no such user")
	}
}

func runWithKey(t *testing.T, useHeader bool, key string, fn GetUserByAPIKeyFN) (*dlmodel.User, error) {
	t.Helper()

	e := echo.New()
	target := "/"
	if !useHeader && key != "" {
		target = "/?apikey=" + key
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if useHeader && key != "" {
		req.Header.Set("apikey", key)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUser *dlmodel.User
	handler := APIKeyAuth(APIKeyConfig{Keyname: "apikey", GetUserByAPIKey: fn})(func(c echo.Context) error {
		gotUser, _ = c.Get("user").(*dlmodel.User)
		return c.NoContent(http.StatusOK)
	})

	return gotUser, handler(c)
}

func TestAPIKeyAuth(t *testing.T) {
	users := map[string]*dlmodel.User{
		"good-key": {ID: 7, Email: "u@test.com"},
	}

	// Key in the header.
	user, err := runWithKey(t, true, "good-key", lookupFor(users))
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, 7, user.ID)

	// Key as a query param.
	user, err = runWithKey(t, false, "good-key", lookupFor(users))
	require.NoError(t, err)
	require.NotNil(t, user)

	// Unknown key.
	_, err = runWithKey(t, true, "bad-key", lookupFor(users))
	require.ErrorIs(t, err, echo.ErrUnauthorized)

	// No key at all.
	_, err = runWithKey(t, true, "", lookupFor(users))
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, he.Code)
}
