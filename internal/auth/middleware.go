package auth

import (
	"context"
	"fmt"
	"strings"

	"pizzaria-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUserIDKey = "user_id"
	CtxUserName  = "user_name"
	CtxUserEmail = "user_email"
)

func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Header Authorization ausente")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Formato do Authorization deve ser 'Bearer <token>'")
		}

		tokenStr := parts[1]

		token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de assinatura inválido")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido ou expirado")
		}

		claims, ok := token.Claims.(*JWTCustomClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Token não pôde ser decodificado")
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxUserName, claims.Name)
		c.Locals(CtxUserEmail, claims.Email)

		return c.Next()
	}
}

// AdminDiretorio resolve a capacidade de administrador pelo e-mail da sessão.
type AdminDiretorio interface {
	EhAdministrador(ctx context.Context, email string) (bool, error)
}

// RequireAdmin libera a rota apenas para e-mails presentes na tabela
// administradores. A consulta roda a cada requisição.
func RequireAdmin(dir AdminDiretorio) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals(CtxUserEmail).(string)
		if !ok || email == "" {
			return fiber.NewError(fiber.StatusForbidden, "Sessão sem e-mail associado")
		}

		admin, err := dir.EhAdministrador(c.Context(), email)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível verificar a permissão")
		}
		if !admin {
			return fiber.NewError(fiber.StatusForbidden, "Acesso restrito a administradores")
		}
		return c.Next()
	}
}
