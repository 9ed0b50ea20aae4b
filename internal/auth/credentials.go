package auth

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"newsletter/pkg/serrors"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap/zapcore"
)

// Credentials are the username and password presented by a request. They are
// never persisted; String and MarshalLogObject redact the password.
type Credentials struct {
	Username string
	Password string
}

func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{Username: %q, Password: [REDACTED]}", c.Username)
}

func (c Credentials) GoString() string {
	return c.String()
}

func (c Credentials) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("username", c.Username)

	return nil
}

// BasicAuthentication extracts credentials from an "Authorization: Basic"
// header. Every failure is serrors.ErrInvalidCredentials; the message says
// which step failed and is meant for logs only.
func BasicAuthentication(headers http.Header) (Credentials, error) {
	header := headers.Get("Authorization")
	if header == "" {
		return Credentials{}, serrors.With(serrors.ErrInvalidCredentials, "the 'Authorization' header was missing")
	}
	if !utf8.ValidString(header) {
		return Credentials{}, serrors.With(serrors.ErrInvalidCredentials,
			"the 'Authorization' header was not a valid UTF8 string")
	}

	encoded, ok := strings.CutPrefix(header, "Basic ")
	if !ok {
		return Credentials{}, serrors.With(serrors.ErrInvalidCredentials, "the authorization scheme was not 'Basic'")
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Credentials{}, serrors.Wrap(serrors.ErrInvalidCredentials, err,
			"could not base64-decode 'Basic' credentials")
	}
	if !utf8.Valid(decoded) {
		return Credentials{}, serrors.With(serrors.ErrInvalidCredentials,
			"the decoded credential string is not valid UTF8")
	}

	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return Credentials{}, serrors.With(serrors.ErrInvalidCredentials,
			"a password must be provided in 'Basic' auth")
	}

	return Credentials{Username: username, Password: password}, nil
}
