package auth

import (
	"log"
	"strings"

	"pizzaria-backend/internal/config"
	"pizzaria-backend/internal/database"
	"pizzaria-backend/internal/models"
	"pizzaria-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterHandler cria a conta a partir de um multipart com name/email/
// password e um avatar opcional. Falha no envio do avatar não aborta o
// cadastro: é registrada no log e a conta sobe sem foto.
func RegisterHandler(cfg *config.Config, avatares *storage.Avatares) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := strings.TrimSpace(c.FormValue("name"))
		email := strings.TrimSpace(strings.ToLower(c.FormValue("email")))
		password := c.FormValue("password")

		if name == "" || email == "" || password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nome, e-mail e senha são obrigatórios")
		}

		var count int64
		database.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "E-mail já cadastrado")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível proteger a senha")
		}

		user := models.User{
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
		}

		if fh, err := c.FormFile("avatar"); err == nil && fh != nil {
			url, err := avatares.Salvar(fh)
			if err != nil {
				log.Printf("Erro ao enviar avatar de %s: %v", email, err)
			} else {
				user.AvatarURL = url
			}
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível criar o usuário")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":         user.ID,
			"name":       user.Name,
			"email":      user.Email,
			"avatar_url": user.AvatarURL,
		})
	}
}

func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var user models.User
		if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "E-mail ou senha incorretos")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "E-mail ou senha incorretos")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o token")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":         user.ID,
				"name":       user.Name,
				"email":      user.Email,
				"avatar_url": user.AvatarURL,
			},
		})
	}
}

func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDVal := c.Locals(CtxUserIDKey)

		var user models.User
		if userID, ok := userIDVal.(uint); ok {
			if err := database.DB.First(&user, userID).Error; err == nil {
				return c.JSON(fiber.Map{
					"user_id":    user.ID,
					"name":       user.Name,
					"email":      user.Email,
					"avatar_url": user.AvatarURL,
				})
			}
		}

		// Reserva: se o banco não responder, devolve o que está no token
		return c.JSON(fiber.Map{
			"user_id": userIDVal,
			"name":    c.Locals(CtxUserName),
			"email":   c.Locals(CtxUserEmail),
		})
	}
}

// AdminHandler responde se a sessão atual tem a capacidade de administrador.
// O front usa isso para habilitar os botões INCLUIR/ALTERAR/EXCLUIR.
func AdminHandler(dir AdminDiretorio) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals(CtxUserEmail).(string)
		if email == "" {
			return c.JSON(fiber.Map{"admin": false})
		}

		admin, err := dir.EhAdministrador(c.Context(), email)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível verificar a permissão")
		}
		return c.JSON(fiber.Map{"admin": admin})
	}
}
