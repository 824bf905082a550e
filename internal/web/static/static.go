// Package static renders the embedded widget and legal pages.
package static

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/ynizan/clicker-game/internal/economy"
	"github.com/ynizan/clicker-game/internal/platform/branding"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

// Pages holds markup rendered once at startup.
type Pages struct {
	Widget  string
	Privacy string
	Terms   string
}

type pageData struct {
	AppName string
	Tagline string
	Title   string
	Updated string
	Balance economy.Balance
}

// Render renders every page for balance, dating the legal pages with now.
func Render(balance economy.Balance, now time.Time) (Pages, error) {
	base := pageData{
		AppName: branding.AppName,
		Tagline: branding.Tagline,
		Updated: now.UTC().Format(time.DateOnly),
		Balance: balance,
	}

	widget, err := execute("widget.html.tmpl", base)
	if err != nil {
		return Pages{}, err
	}
	privacyData := base
	privacyData.Title = "Privacy Policy"
	privacy, err := execute("privacy", privacyData)
	if err != nil {
		return Pages{}, err
	}
	termsData := base
	termsData.Title = "Terms of Service"
	terms, err := execute("terms", termsData)
	if err != nil {
		return Pages{}, err
	}
	return Pages{Widget: widget, Privacy: privacy, Terms: terms}, nil
}

func execute(name string, data pageData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
