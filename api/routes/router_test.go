package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	cartsvc "github.com/threadline-co/threadline-backend/internal/cart"
	"github.com/threadline-co/threadline-backend/internal/catalog"
	checkoutsvc "github.com/threadline-co/threadline-backend/internal/checkout"
	sessionsvc "github.com/threadline-co/threadline-backend/internal/session"
	"github.com/threadline-co/threadline-backend/internal/storage"
	"github.com/threadline-co/threadline-backend/pkg/config"
	"github.com/threadline-co/threadline-backend/pkg/db/models"
	"github.com/threadline-co/threadline-backend/pkg/types"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Catalog: config.CatalogConfig{FeaturedLimit: 8},
		Checkout: config.CheckoutConfig{
			TaxRate:               decimal.RequireFromString("0.10"),
			FreeShippingThreshold: decimal.RequireFromString("50"),
			ShippingFlatRate:      decimal.RequireFromString("9.99"),
			OrderNumberPrefix:     "TL",
		},
		DemoUser: config.DemoUserConfig{
			ID:    "demo-user",
			Name:  "Demo Shopper",
			Email: "demo@threadline.shop",
		},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gormDB.AutoMigrate(&models.StorageRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repo := storage.NewRepository(gormDB)

	provider, err := catalog.NewSeededProvider()
	if err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	cartService, err := cartsvc.NewService(repo)
	if err != nil {
		t.Fatalf("cart service: %v", err)
	}
	sessionService, err := sessionsvc.NewService(repo)
	if err != nil {
		t.Fatalf("session service: %v", err)
	}
	cfg := testConfig()
	checkoutService, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		Cart:    cartService,
		Session: sessionService,
		Config:  cfg.Checkout,
	})
	if err != nil {
		t.Fatalf("checkout service: %v", err)
	}

	return NewRouter(cfg, nil, stubPinger{}, provider, cartService, sessionService, checkoutService)
}

func doJSON(t *testing.T, router http.Handler, method, path, clientID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if clientID != "" {
		req.Header.Set("X-Client-Id", clientID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	data, ok := envelope.Data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected data shape %T", envelope.Data)
	}
	return data
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	if w := doJSON(t, router, http.MethodGet, "/health/live", "", nil); w.Code != http.StatusOK {
		t.Fatalf("live status = %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodGet, "/health/ready", "", nil); w.Code != http.StatusOK {
		t.Fatalf("ready status = %d", w.Code)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/catalog/products?gender=women&sort=price-low", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("products status = %d: %s", w.Code, w.Body.String())
	}
	data := decodeData(t, w)
	if _, ok := data["products"]; !ok {
		t.Fatal("expected products key")
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/catalog/products?sort=bogus", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bogus sort status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/catalog/products/prod-001", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("product status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/catalog/products/prod-missing", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing product status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/catalog/brands/brand-missing", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing brand status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/catalog/categories?gender=women", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("categories status = %d", w.Code)
	}
}

func TestCartFlowThroughRouter(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "client-a", map[string]any{
		"product_id": "prod-001",
		"quantity":   2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add status = %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/cart", "client-a", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	data := decodeData(t, w)
	if got := data["total_items"].(float64); got != 2 {
		t.Fatalf("total_items = %v, want 2", got)
	}

	// Another client sees an empty cart.
	w = doJSON(t, router, http.MethodGet, "/api/v1/cart", "client-b", nil)
	data = decodeData(t, w)
	if got := data["total_items"].(float64); got != 0 {
		t.Fatalf("client-b total_items = %v, want 0", got)
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "client-a", map[string]any{
		"product_id": "prod-missing",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown product status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPatch, "/api/v1/cart/items/prod-001", "client-a", map[string]any{
		"quantity": 0,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}
	data = decodeData(t, w)
	if got := data["total_items"].(float64); got != 0 {
		t.Fatalf("total_items after zero update = %v, want 0", got)
	}
}

func TestAuthAndCheckoutFlowThroughRouter(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "client-a", map[string]any{
		"email": "casey@example.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", w.Code, w.Body.String())
	}
	data := decodeData(t, w)
	user := data["user"].(map[string]any)
	if user["name"] != "casey" {
		t.Fatalf("default name = %v, want casey", user["name"])
	}

	// Quote on an empty cart is rejected.
	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout/quote", "client-a", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty quote status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "client-a", map[string]any{
		"product_id": "prod-001",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout/quote", "client-a", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("quote status = %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/checkout/prefill", "client-a", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("prefill status = %d", w.Code)
	}
	data = decodeData(t, w)
	if data["email"] != "casey@example.com" {
		t.Fatalf("prefill email = %v", data["email"])
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout/orders", "client-a", map[string]any{
		"contact": map[string]any{
			"email":       "casey@example.com",
			"first_name":  "Casey",
			"address":     "1 Main St",
			"city":        "Springfield",
			"postal_code": "12345",
		},
		"payment": map[string]any{
			"card_number":  "4veryfakecard",
			"name_on_card": "Casey",
			"expiry_date":  "12/30",
			"cvv":          "123",
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("order status = %d: %s", w.Code, w.Body.String())
	}

	// Placing the order cleared the cart.
	w = doJSON(t, router, http.MethodGet, "/api/v1/cart", "client-a", nil)
	data = decodeData(t, w)
	if got := data["total_items"].(float64); got != 0 {
		t.Fatalf("total_items after order = %v, want 0", got)
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", "client-a", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logout status = %d", w.Code)
	}
	data = decodeData(t, w)
	if data["is_logged_in"] != false {
		t.Fatalf("is_logged_in after logout = %v", data["is_logged_in"])
	}
}

func TestClientIDMintedWhenMissing(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/cart", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Header().Get("X-Client-Id") == "" {
		t.Fatal("expected minted client id header")
	}
}
