package serrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"newsletter/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrUnauthorized,
		serrors.ErrBadRequest,
		serrors.ErrInternal,
		serrors.ErrRateLimited,
		serrors.ErrInvalidCredentials,
		serrors.ErrTokenNotFound,
		serrors.ErrDispatchPartialFailure,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrTokenNotFound, "token %q unknown", "abc")
	require.Equal(t, `token "abc" unknown`, e1.Error())

	e2 := serrors.Wrap(serrors.ErrInvalidCredentials, base, "checking password")
	require.Equal(t, "checking password: db down", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrBadRequest)
	require.Equal(t, "BAD_REQUEST", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrInvalidCredentials, base, "reading")

	require.ErrorIs(t, e, serrors.ErrInvalidCredentials)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrTokenNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrTokenNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no session")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no session", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))

	wrapped := fmt.Errorf("outer: %w", serrors.With(serrors.ErrBadRequest, "bad form"))
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(wrapped))
}

func TestStatusAndPublicMessage(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{errors.New("pq: connection refused"), http.StatusInternalServerError, "internal error"},
		{serrors.KindOnly(serrors.ErrBadRequest), http.StatusBadRequest, "invalid request"},
		{serrors.Wrap(serrors.ErrInvalidCredentials, errors.New("Unknown username."), "x"),
			http.StatusUnauthorized, "authentication failed"},
		{serrors.KindOnly(serrors.ErrTokenNotFound), http.StatusUnauthorized, "unknown subscription token"},
		{serrors.KindOnly(serrors.ErrRateLimited), http.StatusTooManyRequests, "too many requests"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.status, serrors.Status(tc.err), tc.err.Error())
		require.Equal(t, tc.message, serrors.PublicMessage(tc.err))
		require.NotContains(t, serrors.PublicMessage(tc.err), "Unknown username")
	}
}
