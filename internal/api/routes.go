package api

import (
	"net/http"

	"rukun/pkg/routes"
	"rukun/web/print"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	renderer *print.Renderer,
) {
	routes.Register(
		mux,
		domain.Citizens.Handler().Routes(),
		domain.Families.Handler().Routes(),
		domain.Treasury.Handler().Routes(),
		domain.Letters.Handler(renderer).Routes(),
		domain.Dashboard.Handler().Routes(),
	)
}
