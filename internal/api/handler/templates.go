package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"newsletter/internal/flash"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html")) //nolint: gochecknoglobals

const (
	homePage      = "home.html"
	loginPage     = "login.html"
	dashboardPage = "dashboard.html"
	passwordPage  = "password.html"
)

type page struct {
	Flash    *flash.Message
	Username string
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data page) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.writeError(w, r, fmt.Errorf("could not render %s: %w", name, err))

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
