package main

import (
	"log"
	"strings"

	"pizzaria-backend/internal/audit"
	"pizzaria-backend/internal/auth"
	"pizzaria-backend/internal/catalogo"
	"pizzaria-backend/internal/config"
	"pizzaria-backend/internal/database"
	"pizzaria-backend/internal/storage"
	"pizzaria-backend/internal/telas"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	// .env é opcional; em produção tudo vem do ambiente
	_ = godotenv.Load()

	cfg := config.Load()
	database.Init(cfg)

	avatares, err := storage.NovoAvatares(cfg.AvatarPath)
	if err != nil {
		log.Fatal(err)
	}

	repo := catalogo.NovoRepo(database.DB)
	produtos := catalogo.NovoHandler(repo, audit.ProdutoTrilha{})

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Erro inesperado:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erro inesperado no servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Avatares enviados no cadastro
	app.Static(storage.PublicPrefix, avatares.Dir())

	api := app.Group("/api")

	// Auth pública
	api.Post("/auth/register", auth.RegisterHandler(cfg, avatares))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protegidas
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())
	protected.Get("/auth/admin", auth.AdminHandler(repo))

	// Catálogo de produtos: leitura para qualquer sessão autenticada
	protected.Get("/produtos", produtos.Listar())
	protected.Get("/produtos/busca", produtos.Buscar())
	protected.Get("/produtos/categorias", produtos.Categorias())
	protected.Get("/produtos/tabela", produtos.Tabela())

	// Escritas do catálogo: somente administradores
	adminRoutes := protected.Group("")
	adminRoutes.Use(auth.RequireAdmin(repo))
	adminRoutes.Post("/produtos", produtos.Incluir())
	adminRoutes.Put("/produtos/:id", produtos.Atualizar())
	adminRoutes.Delete("/produtos/:id", produtos.Excluir())

	// Telas estáticas (sem persistência por enquanto)
	protected.Get("/telas/clientes", telas.ClientesHandler())
	protected.Get("/telas/fornecedores", telas.FornecedoresHandler())
	protected.Get("/telas/estoque", telas.EstoqueHandler())
	protected.Get("/telas/contas", telas.ContasHandler())

	// Trilha de auditoria do catálogo
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())
	adminRoutes.Post("/audit-logs/:id/undo", audit.UndoAuditLogHandler())

	log.Println("Servidor rodando na porta:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
