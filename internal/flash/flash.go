// Package flash carries one-shot messages across a redirect in a short-lived
// HS256-signed cookie. A message is shown once: Pop clears the cookie.
package flash

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// CookieName is the cookie carrying the signed message.
	CookieName = "_flash"
	maxAge     = 5 * time.Minute
)

// Level tells the templates how to style a message.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Message is a one-shot notice shown on the next page.
type Message struct {
	Level Level
	Text  string
}

type claims struct {
	Level Level  `json:"lvl"`
	Text  string `json:"msg"`
	jwt.RegisteredClaims
}

// Flasher signs and verifies flash cookies with a shared secret.
type Flasher struct {
	secret []byte
	secure bool
	now    func() time.Time
}

// New returns a Flasher signing with secret, which must be at least 32
// bytes. secure marks the cookie as HTTPS only.
func New(secret []byte, secure bool) (*Flasher, error) {
	if len(secret) < 32 {
		return nil, errors.New("flash secret must be at least 32 bytes")
	}

	return &Flasher{secret: secret, secure: secure, now: time.Now}, nil
}

// Set stores msg in the response cookie.
func (f *Flasher) Set(w http.ResponseWriter, msg Message) error {
	now := f.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Level: msg.Level,
		Text:  msg.Text,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(maxAge)),
		},
	})
	signed, err := token.SignedString(f.secret)
	if err != nil {
		return fmt.Errorf("could not sign flash message: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   f.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Error is shorthand for Set with LevelError.
func (f *Flasher) Error(w http.ResponseWriter, text string) error {
	return f.Set(w, Message{Level: LevelError, Text: text})
}

// Info is shorthand for Set with LevelInfo.
func (f *Flasher) Info(w http.ResponseWriter, text string) error {
	return f.Set(w, Message{Level: LevelInfo, Text: text})
}

// Pop returns the message carried by r, if any, and clears the cookie.
// Tampered or expired cookies are dropped silently.
func (f *Flasher) Pop(w http.ResponseWriter, r *http.Request) *Message {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   f.secure,
		SameSite: http.SameSiteLaxMode,
	})

	var c claims
	_, err = jwt.ParseWithClaims(cookie.Value, &c, func(*jwt.Token) (interface{}, error) {
		return f.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(f.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil
	}

	return &Message{Level: c.Level, Text: c.Text}
}
