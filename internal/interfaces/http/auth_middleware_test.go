package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/finanzas-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/finanzas-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "finanzas-api-test"
	testExpMin    = 60
)

func okHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok":   true,
		"role": apphttp.GetRole(c),
	})
}

// buildTestApp construye una app Fiber mínima con tres rutas que cubren los
// tres niveles de acceso: lectura con chequeo de sección, escritura y solo-admin.
func buildTestApp() *fiber.App {
	app := fiber.New()
	authMW := apphttp.AuthMiddleware(testJWTSecret)

	app.Get("/read", authMW, apphttp.RequireRouteAccess("transactions"), okHandler)
	app.Post("/write", authMW, apphttp.RequireWriteAccess(), okHandler)
	app.Get("/admin-only", authMW, apphttp.RequireRole("admin"), okHandler)
	return app
}

// tokenFor genera un JWT con el rol y las rutas indicadas.
func tokenFor(t *testing.T, role string, allowedRoutes ...string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Identity{
		UserID:        testUserID,
		Email:         "test@example.com",
		Name:          "Test",
		Role:          role,
		AllowedRoutes: allowedRoutes,
	}, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, method, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Matriz de acceso admin / viewer
// ──────────────────────────────────────────────────────────────────────────────

// Admin accede a lectura, escritura y rutas solo-admin.
func TestAcceso_AdminPasaTodosLosNiveles(t *testing.T) {
	app := buildTestApp()
	token := tokenFor(t, "admin")

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/read"},
		{http.MethodPost, "/write"},
		{http.MethodGet, "/admin-only"},
	} {
		resp := doRequest(t, app, tc.method, tc.path, token)
		assert.Equal(t, http.StatusOK, resp.StatusCode,
			"admin debe acceder a %s %s", tc.method, tc.path)
		resp.Body.Close()
	}
}

// Viewer con la sección habilitada puede leer.
func TestAcceso_ViewerLeeSeccionHabilitada(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/read", tokenFor(t, "viewer", "transactions", "dashboard"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "viewer", body["role"])
}

// Viewer sin la sección en allowed_routes → 403 aunque el token sea válido.
func TestAcceso_ViewerBloqueadoEnSeccionNoHabilitada(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/read", tokenFor(t, "viewer", "dashboard"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Viewer nunca muta, sin importar sus allowed_routes.
func TestAcceso_ViewerBloqueadoEnEscritura(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodPost, "/write", tokenFor(t, "viewer", "transactions"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"viewer no debe poder escribir aunque tenga la sección habilitada")
}

// Viewer bloqueado en rutas solo-admin.
func TestAcceso_ViewerBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/admin-only", tokenFor(t, "viewer", "transactions"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Token con rol vacío → 401 MISSING_ROLE.
func TestAcceso_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/admin-only", tokenFor(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware — parsing del header
// ──────────────────────────────────────────────────────────────────────────────

// Sin header Authorization → 401 MISSING_TOKEN.
func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/read", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Header sin esquema Bearer → 401 INVALID_TOKEN.
func TestAuthMiddleware_EsquemaInvalido_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/read", "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Token malformado → 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenMalformado_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/read", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// El esquema Bearer es case-insensitive.
func TestAuthMiddleware_BearerCaseInsensitive(t *testing.T) {
	app := buildTestApp()
	token := tokenFor(t, "admin")
	resp := doRequest(t, app, http.MethodGet, "/read", "bearer "+token[len("Bearer "):])
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// El middleware expone la identidad completa en locals.
func TestAuthMiddleware_ExtraeIdentidad(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":        apphttp.GetUserID(c),
			"email":          apphttp.GetEmail(c),
			"role":           apphttp.GetRole(c),
			"allowed_routes": apphttp.GetAllowedRoutes(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, "viewer", "dashboard", "expenses"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		UserID        string   `json:"user_id"`
		Email         string   `json:"email"`
		Role          string   `json:"role"`
		AllowedRoutes []string `json:"allowed_routes"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body.UserID)
	assert.Equal(t, "test@example.com", body.Email)
	assert.Equal(t, "viewer", body.Role)
	assert.Equal(t, []string{"dashboard", "expenses"}, body.AllowedRoutes)
}
