//go:build integration

package e2e

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/catvAlbuss/minimarketsystem/internal/config"
	"github.com/catvAlbuss/minimarketsystem/internal/infra"
	"github.com/catvAlbuss/minimarketsystem/internal/model"
	"github.com/catvAlbuss/minimarketsystem/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Suite setup ──────────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
	token  string // root JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("minimarket_test"),
		tcPostgres.WithUsername("minimarket"),
		tcPostgres.WithPassword("minimarket"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		WorkerPoolSize:     1,
		PDFStoragePath:     t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Root user to authenticate as
	hash, err := bcrypt.GenerateFromPassword([]byte("12345678"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.User{
		Name:           "Admin",
		Lastname:       "Root",
		DNI:            40000001,
		Phone:          900000001,
		Address:        "Av. Principal 1",
		Email:          "root@minimarket.com",
		Password:       string(hash),
		Affiliate:      "ONP",
		Insured:        "SIS",
		WorkModality:   "fullTime",
		Retention:      "no",
		EntryToPayroll: "yes",
		Role:           "root",
		State:          "active",
	}).Error)

	engine := router.New(cfg, db, rdb)
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	env := &testEnv{server: srv, db: db}

	resp := do(t, srv, http.MethodPost, "/v1/auth/login", jsonBody(t, map[string]string{
		"email":    "root@minimarket.com",
		"password": "12345678",
	}), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, resp, &login)
	require.NotEmpty(t, login.AccessToken)
	env.token = login.AccessToken
	return env
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestSaleCycle(t *testing.T) {
	env := setupTestEnv(t)

	// Category
	resp := do(t, env.server, http.MethodPost, "/v1/categories", jsonBody(t, map[string]any{
		"name":        "Abarrotes",
		"description": "Primera necesidad",
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cat struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &cat)

	// Product
	resp = do(t, env.server, http.MethodPost, "/v1/products", jsonBody(t, map[string]any{
		"id_categories":   cat.ID,
		"code":            "PRD-100",
		"name":            "Aceite Primor 1L",
		"description":     "Botella de aceite vegetal",
		"unit_price":      "8.90",
		"higher_price":    "9.50",
		"stock":           30,
		"expiration_date": "2027-03-01",
		"state":           "active",
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var prod struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &prod)

	// Customer
	resp = do(t, env.server, http.MethodPost, "/v1/customers", jsonBody(t, map[string]any{
		"dni":       "74185296",
		"name":      "Rosa",
		"last_name": "Mendoza",
		"birthday":  "1988-11-03",
		"email":     "rosa@gmail.com",
		"phone":     "955443322",
		"address":   "Calle Lima 101",
		"state":     "active",
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cust struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &cust)

	// Sale without explicit igv gets the 18% default
	resp = do(t, env.server, http.MethodPost, "/v1/sales", jsonBody(t, map[string]any{
		"id_customers":   cust.ID,
		"id_users":       1,
		"voucher_number": "T001-00000001",
		"total":          "17.80",
		"payment_method": "cash",
		"voucher":        "ticket",
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var sale struct {
		ID  uint   `json:"id"`
		IGV string `json:"igv"`
	}
	decodeJSON(t, resp, &sale)
	assert.Equal(t, "0.18", sale.IGV)

	// Detail
	resp = do(t, env.server, http.MethodPost, "/v1/sale-details", jsonBody(t, map[string]any{
		"id_sales":    sale.ID,
		"id_products": prod.ID,
		"quantity":    2,
		"sub_total":   "17.80",
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Listing carries the lookup collections
	resp = do(t, env.server, http.MethodGet, "/v1/sales", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Sales     []json.RawMessage `json:"sales"`
		Customers []json.RawMessage `json:"customers"`
		Users     []json.RawMessage `json:"users"`
	}
	decodeJSON(t, resp, &list)
	assert.Len(t, list.Sales, 1)
	assert.Len(t, list.Customers, 1)
	assert.NotEmpty(t, list.Users)

	// Duplicate voucher rejected without a second row
	resp = do(t, env.server, http.MethodPost, "/v1/sales", jsonBody(t, map[string]any{
		"id_customers":   cust.ID,
		"id_users":       1,
		"voucher_number": "T001-00000001",
		"total":          "5.00",
		"payment_method": "cash",
		"voucher":        "ticket",
	}), env.token)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	var count int64
	require.NoError(t, env.db.Model(&model.Sale{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPublicPriceLookup(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, http.MethodPost, "/v1/categories", jsonBody(t, map[string]any{
		"name":        "Bebidas",
		"description": "Gaseosas y jugos",
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cat struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &cat)

	resp = do(t, env.server, http.MethodPost, "/v1/products", jsonBody(t, map[string]any{
		"id_categories":   cat.ID,
		"code":            "BEB-001",
		"name":            "Inca Kola 500ml",
		"description":     "Botella personal",
		"unit_price":      "3.50",
		"higher_price":    "4.00",
		"stock":           48,
		"expiration_date": "2027-01-15",
		"state":           "active",
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// No token: the price check endpoint is public
	for i := 0; i < 2; i++ { // second hit comes from the redis cache
		resp = do(t, env.server, http.MethodGet, "/v1/price/BEB-001", nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var price struct {
			Name      string `json:"name"`
			UnitPrice string `json:"unit_price"`
			Stock     int    `json:"stock"`
		}
		decodeJSON(t, resp, &price)
		assert.Equal(t, "Inca Kola 500ml", price.Name)
		assert.Equal(t, "3.5", price.UnitPrice)
		assert.Equal(t, 48, price.Stock)
	}

	resp = do(t, env.server, http.MethodGet, "/v1/price/NO-EXISTE", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestRoleEnforcement(t *testing.T) {
	env := setupTestEnv(t)

	// A cashier can sell but cannot manage users
	resp := do(t, env.server, http.MethodPost, "/v1/users", jsonBody(t, map[string]any{
		"name":             "Caja",
		"lastname":         "Uno",
		"dni":              41112223,
		"phone":            911222333,
		"address":          "Av. Sol 45",
		"email":            "caja@minimarket.com",
		"password":         "clave1234",
		"affiliate":        "ONP",
		"insured":          "SIS",
		"work_modality":    "fullTime",
		"entry_date":       "2025-01-15",
		"retention":        "no",
		"entry_to_payroll": "yes",
		"role":             "cashier",
		"state":            "active",
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, http.MethodPost, "/v1/auth/login", jsonBody(t, map[string]string{
		"email":    "caja@minimarket.com",
		"password": "clave1234",
	}), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, resp, &login)

	resp = do(t, env.server, http.MethodGet, "/v1/users", nil, login.AccessToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, http.MethodGet, "/v1/customers", nil, login.AccessToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// No token at all
	resp = do(t, env.server, http.MethodGet, "/v1/customers", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestUserSelfDeleteGuard(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, http.MethodDelete, "/v1/users/1", nil, env.token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	var count int64
	require.NoError(t, env.db.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDashboardAndHealth(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, http.MethodGet, "/v1/dashboard", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var dash struct {
		Users      int64  `json:"users"`
		Sales      int64  `json:"sales"`
		SalesToday string `json:"sales_today"`
	}
	decodeJSON(t, resp, &dash)
	assert.EqualValues(t, 1, dash.Users)
	assert.EqualValues(t, 0, dash.Sales)
	assert.Equal(t, "0", dash.SalesToday)
}
