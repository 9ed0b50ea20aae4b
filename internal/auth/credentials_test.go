package auth_test

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"newsletter/internal/auth"
	"newsletter/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func basicHeader(value string) http.Header {
	h := http.Header{}
	h.Set("Authorization", value)

	return h
}

func TestBasicAuthentication(t *testing.T) {
	encode := func(s string) string { return "Basic " + base64.StdEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name     string
		headers  http.Header
		want     auth.Credentials
		errMatch string
	}{
		{
			name:    "valid",
			headers: basicHeader(encode("admin:pa:ss")),
			want:    auth.Credentials{Username: "admin", Password: "pa:ss"},
		},
		{
			name:    "empty password",
			headers: basicHeader(encode("admin:")),
			want:    auth.Credentials{Username: "admin", Password: ""},
		},
		{name: "missing header", headers: http.Header{}, errMatch: "missing"},
		{name: "not utf8", headers: basicHeader("Basic \xff\xfe"), errMatch: "UTF8"},
		{name: "wrong scheme", headers: basicHeader("Bearer abc"), errMatch: "not 'Basic'"},
		{name: "bad base64", headers: basicHeader("Basic ***"), errMatch: "base64"},
		{
			name:     "decoded not utf8",
			headers:  basicHeader("Basic " + base64.StdEncoding.EncodeToString([]byte{0xff, ':', 'a'})),
			errMatch: "decoded credential",
		},
		{name: "no colon", headers: basicHeader(encode("admin")), errMatch: "password must be provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.BasicAuthentication(tt.headers)
			if tt.errMatch != "" {
				require.ErrorIs(t, err, serrors.ErrInvalidCredentials)
				require.ErrorContains(t, err, tt.errMatch)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCredentials_Redacted(t *testing.T) {
	c := auth.Credentials{Username: "admin", Password: "hunter2hunter2"}

	require.NotContains(t, c.String(), "hunter2")
	require.NotContains(t, fmt.Sprintf("%v %+v %#v", c, c, c), "hunter2")

	core, logs := observer.New(zapcore.DebugLevel)
	zap.New(core).Info("login", zap.Object("credentials", c))
	require.Equal(t, map[string]interface{}{"username": "admin"}, logs.All()[0].ContextMap()["credentials"])
}
