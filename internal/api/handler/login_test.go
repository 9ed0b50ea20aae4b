package handler_test

import (
	"errors"
	"net/http"
	"net/url"
	"newsletter/internal/api/handler"
	"newsletter/internal/flash"
	"newsletter/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLogin_SuccessOpensDashboard(t *testing.T) {
	f := newFixture(t, nil)
	sessionCookie := f.login(t)
	require.True(t, sessionCookie.HttpOnly)

	f.store.EXPECT().UserByID(gomock.Any(), f.admin.ID).Return(&f.admin, nil)
	rec := f.get(handler.DashboardPath, sessionCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Welcome admin!")
}

func TestLogin_RotatesSessionID(t *testing.T) {
	f := newFixture(t, nil)
	first := f.login(t)

	f.store.EXPECT().UserCredentials(gomock.Any(), adminUsername).Return(&f.admin, nil)
	rec := f.postForm(handler.LoginPath,
		url.Values{"username": {adminUsername}, "password": {adminPassword}}, first)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	second := findCookie(rec, cookieName)
	require.NotNil(t, second)
	require.NotEqual(t, first.Value, second.Value)

	// the previous session no longer resolves
	rec = f.get(handler.DashboardPath, first)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, handler.LoginPath, rec.Header().Get("Location"))
}

func TestLogin_FailuresAreOpaque(t *testing.T) {
	tests := []struct {
		name   string
		expect func(f *fixture)
		pass   string
	}{
		{
			name: "wrong password",
			expect: func(f *fixture) {
				f.store.EXPECT().UserCredentials(gomock.Any(), adminUsername).Return(&f.admin, nil)
			},
			pass: "not-the-password",
		},
		{
			name: "unknown user",
			expect: func(f *fixture) {
				f.store.EXPECT().UserCredentials(gomock.Any(), adminUsername).Return(nil, nil)
			},
			pass: adminPassword,
		},
		{
			name: "storage fault",
			expect: func(f *fixture) {
				f.store.EXPECT().UserCredentials(gomock.Any(), adminUsername).Return(nil, errors.New("db down"))
			},
			pass: adminPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			tt.expect(f)

			rec := f.postForm(handler.LoginPath, url.Values{"username": {adminUsername}, "password": {tt.pass}})
			require.Equal(t, http.StatusSeeOther, rec.Code)
			require.Equal(t, handler.LoginPath, rec.Header().Get("Location"))
			require.Nil(t, findCookie(rec, cookieName))

			flashCookie := findCookie(rec, flash.CookieName)
			require.NotNil(t, flashCookie)

			page := f.get(handler.LoginPath, flashCookie)
			require.Equal(t, http.StatusOK, page.Code)
			require.Contains(t, page.Body.String(), "Authentication failed")
			require.NotContains(t, page.Body.String(), "db down")

			// shown once
			page = f.get(handler.LoginPath)
			require.NotContains(t, page.Body.String(), "Authentication failed")
		})
	}
}

func TestLogin_RateLimited(t *testing.T) {
	f := newFixture(t, controller.NewIPRateLimiter(0.001, 1))

	f.store.EXPECT().UserCredentials(gomock.Any(), adminUsername).Return(nil, nil)
	form := url.Values{"username": {adminUsername}, "password": {"guess"}}
	require.Equal(t, http.StatusSeeOther, f.postForm(handler.LoginPath, form).Code)

	rec := f.postForm(handler.LoginPath, form)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Contains(t, rec.Body.String(), "RATE_LIMITED")
}

func TestAdmin_AnonymousRedirectsToLogin(t *testing.T) {
	f := newFixture(t, nil)

	for _, req := range []struct{ method, path string }{
		{http.MethodGet, handler.DashboardPath},
		{http.MethodGet, handler.PasswordPath},
		{http.MethodPost, handler.PasswordPath},
		{http.MethodPost, handler.LogoutPath},
	} {
		var code int
		var location string
		if req.method == http.MethodGet {
			rec := f.get(req.path)
			code, location = rec.Code, rec.Header().Get("Location")
		} else {
			rec := f.postForm(req.path, url.Values{})
			code, location = rec.Code, rec.Header().Get("Location")
		}
		require.Equal(t, http.StatusSeeOther, code, req.path)
		require.Equal(t, handler.LoginPath, location, req.path)
	}

	rec := f.get(handler.DashboardPath, &http.Cookie{Name: cookieName, Value: "forged"})
	require.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestLogout(t *testing.T) {
	f := newFixture(t, nil)
	sessionCookie := f.login(t)

	rec := f.postForm(handler.LogoutPath, url.Values{}, sessionCookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, handler.LoginPath, rec.Header().Get("Location"))

	page := f.get(handler.LoginPath, findCookie(rec, flash.CookieName))
	require.Contains(t, page.Body.String(), "You have successfully logged out.")

	rec = f.get(handler.DashboardPath, sessionCookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, handler.LoginPath, rec.Header().Get("Location"))
}
