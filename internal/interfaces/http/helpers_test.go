package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ceramicas-api/internal/application/auth"
	"github.com/jhoicas/ceramicas-api/internal/application/ports"
	"github.com/jhoicas/ceramicas-api/internal/application/usecase"
	"github.com/jhoicas/ceramicas-api/internal/application/validation"
	"github.com/jhoicas/ceramicas-api/internal/infrastructure/memory"
	"github.com/jhoicas/ceramicas-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/ceramicas-api/internal/interfaces/http"
	"github.com/jhoicas/ceramicas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "ceramicas-api-test"
	testExpMin    = 60
	adminEmail    = "admin@ceramics.test"
	adminPassword = "admin123456"
)

// envelope sobre común de éxito y error.
type envelope struct {
	Success bool            `json:"success"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

type testApp struct {
	app    *fiber.App
	authUC *auth.AuthUseCase
	users  *memory.UserRepo
}

// newTestApp arma la API completa sobre el store en memoria.
func newTestApp(t *testing.T, rl apphttp.RateLimit) *testApp {
	t.Helper()
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	products := memory.NewProductRepository(store)
	v := validation.New()

	authUC := auth.NewAuthUseCase(users, v, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})
	productUC := usecase.NewProductUseCase(products, v, ports.NopPublisher{})
	adminUC := usecase.NewAdminUseCase(users, products, ports.NopPublisher{}, pdf.NewStatsReportGenerator("ceramicas-api"))

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    authUC,
		ProductUC: productUC,
		AdminUC:   adminUC,
		RateLimit: rl,
	})
	return &testApp{app: app, authUC: authUC, users: users}
}

// do lanza una petición con body JSON opcional y token opcional.
func (ta *testApp) do(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

type authData struct {
	User struct {
		ID       string `json:"id"`
		Role     string `json:"role"`
		IsActive bool   `json:"is_active"`
	} `json:"user"`
	Token string `json:"token"`
}

// register crea un usuario por HTTP y devuelve su id y token.
func (ta *testApp) register(t *testing.T, name string) (string, string) {
	t.Helper()
	resp := ta.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": name + "@ceramicas.test", "password": "secreto1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	env := decode(t, resp)
	var data authData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.User.ID, data.Token
}

// admin siembra el administrador y devuelve su id y token.
func (ta *testApp) admin(t *testing.T) (string, string) {
	t.Helper()
	_, _, err := ta.authUC.SeedAdmin(context.Background(), auth.AdminSeed{
		Name: "Admin Principal", Email: adminEmail, Password: adminPassword,
	})
	require.NoError(t, err)
	resp := ta.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": adminEmail, "password": adminPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var data authData
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &data))
	return data.User.ID, data.Token
}

type productData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	CeramistID  string `json:"ceramist_id"`
	IsAvailable bool   `json:"is_available"`
}

// createProduct publica un producto como el dueño del token.
func (ta *testApp) createProduct(t *testing.T, token, name, category string) productData {
	t.Helper()
	resp := ta.do(t, http.MethodPost, "/api/products", token, map[string]interface{}{
		"name":        name,
		"description": "Pieza torneada a mano en gres",
		"price":       25.5,
		"category":    category,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var p productData
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &p))
	return p
}
