package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/threadline-co/threadline-backend/api/controllers"
	"github.com/threadline-co/threadline-backend/api/middleware"
	cartsvc "github.com/threadline-co/threadline-backend/internal/cart"
	"github.com/threadline-co/threadline-backend/internal/catalog"
	checkoutsvc "github.com/threadline-co/threadline-backend/internal/checkout"
	sessionsvc "github.com/threadline-co/threadline-backend/internal/session"
	"github.com/threadline-co/threadline-backend/pkg/config"
	"github.com/threadline-co/threadline-backend/pkg/db"
	"github.com/threadline-co/threadline-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	provider *catalog.Provider,
	cartService cartsvc.Service,
	sessionService sessionsvc.Service,
	checkoutService checkoutsvc.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.CORS(cfg.CORS),
		middleware.ClientID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", controllers.CatalogProducts(provider, logg))
		r.Get("/products/featured", controllers.CatalogFeaturedProducts(provider, cfg, logg))
		r.Get("/products/{productId}", controllers.CatalogProductByID(provider, logg))
		r.Get("/brands", controllers.CatalogBrands(provider, logg))
		r.Get("/brands/{slug}", controllers.CatalogBrandBySlug(provider, logg))
		r.Get("/brands/{slug}/products", controllers.CatalogBrandProducts(provider, logg))
		r.Get("/categories", controllers.CatalogCategories(provider, logg))
	})

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", controllers.CartGet(cartService, logg))
		r.Delete("/", controllers.CartClear(cartService, logg))
		r.Post("/toggle", controllers.CartToggle(cartService, logg))
		r.Post("/items", controllers.CartAddItem(cartService, provider, logg))
		r.Patch("/items/{productId}", controllers.CartUpdateItem(cartService, logg))
		r.Delete("/items/{productId}", controllers.CartRemoveItem(cartService, logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(sessionService, logg))
		r.Post("/demo-login", controllers.AuthDemoLogin(sessionService, cfg, logg))
		r.Post("/logout", controllers.AuthLogout(sessionService, logg))
		r.Get("/session", controllers.AuthSession(sessionService, logg))
	})

	r.Route("/api/v1/checkout", func(r chi.Router) {
		r.Get("/prefill", controllers.CheckoutPrefill(checkoutService, logg))
		r.Post("/quote", controllers.CheckoutQuote(checkoutService, logg))
		r.Post("/orders", controllers.CheckoutPlaceOrder(checkoutService, logg))
	})

	return r
}
