package server

import (
	"embed"
	"html/template"

	"aihustle/internal/domain"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardView = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

type dashboardData struct {
	Stats    domain.Stats
	Products []domain.Product
}
