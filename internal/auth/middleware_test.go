package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzaria-backend/internal/config"
	"pizzaria-backend/internal/models"
)

const segredoDeTeste = "segredo-de-teste-com-tamanho-suficiente!"

type diretorioFixo struct {
	admins map[string]bool
}

func (d diretorioFixo) EhAdministrador(ctx context.Context, email string) (bool, error) {
	return d.admins[email], nil
}

func appProtegido(dir AdminDiretorio) *fiber.App {
	cfg := &config.Config{JWTSecret: segredoDeTeste}

	app := fiber.New()
	grupo := app.Group("/api", JWTMiddleware(cfg))
	grupo.Get("/livre", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": c.Locals(CtxUserEmail)})
	})
	grupo.Post("/restrito", RequireAdmin(dir), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func tokenDeTeste(t *testing.T, email string) string {
	t.Helper()
	token, err := GenerateToken(segredoDeTeste, &models.User{
		ID:    1,
		Name:  "Maria",
		Email: email,
	})
	require.NoError(t, err)
	return token
}

func TestJWTMiddleware(t *testing.T) {
	app := appProtegido(diretorioFixo{})

	tests := []struct {
		nome   string
		header string
		status int
	}{
		{"sem header", "", http.StatusUnauthorized},
		{"formato errado", "Token abc", http.StatusUnauthorized},
		{"token invalido", "Bearer nao-e-um-jwt", http.StatusUnauthorized},
		{"token valido", "Bearer " + tokenDeTeste(t, "maria@pizzaria.com"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/livre", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestJWTMiddlewareRejeitaOutroSegredo(t *testing.T) {
	app := appProtegido(diretorioFixo{})

	token, err := GenerateToken("outro-segredo-tambem-bem-comprido!!!!!!!", &models.User{ID: 1, Email: "x@y.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/livre", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdmin(t *testing.T) {
	dir := diretorioFixo{admins: map[string]bool{"admin@pizzaria.com": true}}
	app := appProtegido(dir)

	tests := []struct {
		nome   string
		email  string
		status int
	}{
		{"administrador passa", "admin@pizzaria.com", http.StatusOK},
		{"usuario comum barrado", "maria@pizzaria.com", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/restrito", nil)
			req.Header.Set("Authorization", "Bearer "+tokenDeTeste(t, tt.email))

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
