package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-api/internal/domain"
)

func statusFor(t *testing.T, err error) int {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error { return domainError(c, err) })

	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, reqErr)
	defer resp.Body.Close()
	return resp.StatusCode
}

// Cada sentinela del dominio mapea a su código HTTP de la taxonomía.
func TestDomainError_Taxonomia(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"entrada inválida", domain.ErrInvalidInput, http.StatusUnprocessableEntity},
		{"credenciales", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"login con email inexistente", domain.ErrUserNotFound, http.StatusUnauthorized},
		{"prohibido", domain.ErrForbidden, http.StatusForbidden},
		{"recurso inexistente", domain.ErrNotFound, http.StatusNotFound},
		{"email duplicado", domain.ErrEmailAlreadyExists, http.StatusConflict},
		{"período cerrado", domain.ErrPeriodClosed, http.StatusConflict},
		{"conflicto genérico", domain.ErrConflict, http.StatusConflict},
		{"error no reconocido", errors.New("db caída"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, statusFor(t, tc.err))
		})
	}
}
