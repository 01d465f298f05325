package stor

import (
	"testing"

	"github.com/draftleague/marketd/pkg/dldb/dlmodel"
	"github.com/stretchr/testify/require"
)

func TestCreateUserGeneratesAPIToken(t *testing.T) {
	f := newMarketFixture(t, 0)

	user, err := f.stors.UserStor.CreateUser(&dlmodel.User{Name: "Nat", Email: "nat@test.com"})
	require.NoError(t, err)
	require.NotEmpty(t, user.ApiToken)

	byToken, err := f.stors.UserStor.GetUserByAPIToken(user.ApiToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, byToken.ID)

	byEmail, err := f.stors.UserStor.GetUserByEmail("nat@test.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)
}

func TestGetUserByAPITokenNotFound(t *testing.T) {
	f := newMarketFixture(t, 0)

	_, err := f.stors.UserStor.GetUserByAPIToken("no-such-token")
	kind, ok := KindOfError(err)
	require.True(t, ok)
	require.Equal(t, ErrKindNotFound, kind)
}
