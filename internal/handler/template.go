package handler

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/ebalci/pazaryeri/internal/model"
)

// currencyTRY formats a price the way the storefront displays it.
func currencyTRY(v float64) string {
	return fmt.Sprintf("₺%.2f", v)
}

func parseTemplates() *template.Template {
	funcs := template.FuncMap{
		"currency": currencyTRY,
	}
	return template.Must(template.New("").Funcs(funcs).ParseGlob("web/templates/*.html"))
}

// pageData is the payload every page template receives.
type pageData struct {
	Title   string
	Session model.Session
	Flash   *Flash
	Errors  map[string]string
	Values  map[string]string
	Data    map[string]any
}

func render(w http.ResponseWriter, t *template.Template, name string, data pageData, logger *slog.Logger) {
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("render template", "template", name, "error", err)
	}
}
