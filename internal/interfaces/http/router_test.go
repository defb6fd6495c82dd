package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/finanzas-api/internal/interfaces/http"
)

// La tabla completa se registra sin pánico y las rutas quedan bajo /api.
func TestRouter_RegistraTablaBajoAPI(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{JWTSecret: testJWTSecret})

	// Ruta protegida sin token: el middleware responde antes de tocar el handler.
	resp := doRequest(t, app, http.MethodGet, "/api/expenses", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"/api/expenses debe existir y exigir token")
}

// El prefijo /api es obligatorio: el mismo path sin prefijo no existe.
func TestRouter_SinPrefijoAPI_NoMatch(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{JWTSecret: testJWTSecret})

	resp := doRequest(t, app, http.MethodGet, "/expenses", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Un segmento extra después del parámetro no hace match.
func TestRouter_SegmentoExtra_NoMatch(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{JWTSecret: testJWTSecret})

	resp := doRequest(t, app, http.MethodPatch, "/api/expenses/42/x", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Método no registrado sobre un path existente no hace match.
func TestRouter_MetodoNoRegistrado_NoMatch(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{JWTSecret: testJWTSecret})

	resp := doRequest(t, app, http.MethodPut, "/api/expenses/42", "")
	defer resp.Body.Close()
	// Fiber responde 405 Method Not Allowed para paths con otros métodos
	assert.Contains(t, []int{http.StatusNotFound, http.StatusMethodNotAllowed}, resp.StatusCode)
}

// El parámetro :id captura exactamente un segmento.
func TestRouter_ParametroID_CapturaSegmento(t *testing.T) {
	app := fiber.New()
	app.Patch("/api/expenses/:id", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": c.Params("id")})
	})

	req := httptest.NewRequest(http.MethodPatch, "/api/expenses/42", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, `"id":"42"`)
}

// Login es público: body inválido produce 422, nunca 401.
func TestRouter_LoginPublico_Valida422(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{JWTSecret: testJWTSecret})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "VALIDATION")
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
