package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vapemart/vapemart/internal/auth"
	"github.com/vapemart/vapemart/internal/availability"
	"github.com/vapemart/vapemart/internal/catalog/brands"
	"github.com/vapemart/vapemart/internal/catalog/categories"
	"github.com/vapemart/vapemart/internal/catalog/locations"
	"github.com/vapemart/vapemart/internal/catalog/products"
	"github.com/vapemart/vapemart/internal/catalog/tags"
	"github.com/vapemart/vapemart/internal/outreach"
	"github.com/vapemart/vapemart/internal/shared"
	"github.com/vapemart/vapemart/internal/stocksync"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager

	AuthHandler         *auth.Handler
	CategoriesHandler   *categories.Handler
	BrandsHandler       *brands.Handler
	LocationsHandler    *locations.Handler
	TagsHandler         *tags.Handler
	ProductsHandler     *products.Handler
	AvailabilityHandler *availability.Handler
	SyncHandler         *stocksync.Handler
	OutreachHandler     *outreach.Handler
}

// NewRouter constructs the chi.Router with the storefront defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		params.AuthHandler.MountRoutes(r)
		params.OutreachHandler.MountRoutes(r)

		r.Route("/categories", params.CategoriesHandler.MountRoutes)
		r.Route("/brands", params.BrandsHandler.MountRoutes)
		r.Route("/locations", params.LocationsHandler.MountRoutes)
		r.Route("/tags", params.TagsHandler.MountRoutes)

		r.Route("/products", func(r chi.Router) {
			params.ProductsHandler.MountRoutes(r)
			r.Get("/{slug}/availability", params.AvailabilityHandler.ListForProductSlug)
		})

		r.Route("/product-availability", params.AvailabilityHandler.MountRoutes)
		r.Route("/sync", params.SyncHandler.MountRoutes)
	})

	return r
}
