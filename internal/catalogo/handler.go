package catalogo

import (
	"context"
	"errors"
	"strings"

	"pizzaria-backend/internal/auth"
	"pizzaria-backend/internal/models"
	"pizzaria-backend/internal/tabela"

	"github.com/gofiber/fiber/v2"
)

// HandlerStore é o Store acrescido da busca por id, usada para capturar o
// estado anterior nas atualizações e exclusões.
type HandlerStore interface {
	Store
	Buscar(ctx context.Context, id string) (*models.Produto, error)
}

// Auditoria recebe as escritas do catálogo para a trilha de auditoria.
type Auditoria interface {
	RegistrarProduto(userID uint, userName string, acao models.AuditAction, antes, depois *models.Produto)
}

type Handler struct {
	store     HandlerStore
	auditoria Auditoria // pode ser nil em testes
}

func NovoHandler(store HandlerStore, auditoria Auditoria) *Handler {
	return &Handler{store: store, auditoria: auditoria}
}

type ProdutoRequest struct {
	IDConsumer   string  `json:"id_consumer"`
	CodigoBarras string  `json:"codigo_barras"`
	Categoria    string  `json:"categoria"`
	NomeProduto  string  `json:"nome_produto"`
	Preco        float64 `json:"preco"`
	Status       string  `json:"status"`
}

func (b *ProdutoRequest) sanitizar() {
	b.IDConsumer = strings.ToUpper(strings.TrimSpace(b.IDConsumer))
	b.CodigoBarras = NormalizarCodigoBarras(b.CodigoBarras)
	b.Categoria = strings.ToUpper(strings.TrimSpace(b.Categoria))
	b.NomeProduto = strings.ToUpper(strings.TrimSpace(b.NomeProduto))
	if b.Status == "" {
		b.Status = string(models.StatusAtivo)
	}
}

func (b ProdutoRequest) validar() error {
	if b.NomeProduto == "" {
		return ErrNomeObrigatorio
	}
	if b.Preco <= 0 {
		return ErrPrecoInvalido
	}
	if b.Status != string(models.StatusAtivo) && b.Status != string(models.StatusInativo) {
		return errors.New("Status inválido")
	}
	return nil
}

func (b ProdutoRequest) produto() models.Produto {
	return models.Produto{
		IDConsumer:   b.IDConsumer,
		CodigoBarras: b.CodigoBarras,
		Categoria:    b.Categoria,
		NomeProduto:  b.NomeProduto,
		Preco:        b.Preco,
		Status:       models.StatusProduto(b.Status),
	}
}

// GET /api/produtos (qualquer sessão autenticada)
func (h *Handler) Listar() fiber.Handler {
	return func(c *fiber.Ctx) error {
		produtos, err := h.store.Listar(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Produtos não puderam ser listados")
		}
		return c.JSON(produtos)
	}
}

// POST /api/produtos (somente administradores)
func (h *Handler) Incluir() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProdutoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		body.sanitizar()
		if err := body.validar(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		p := body.produto()
		if err := h.store.Inserir(c.Context(), &p); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao incluir: "+err.Error())
		}

		h.registrar(c, models.AuditActionCreate, nil, &p)

		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// PUT /api/produtos/:id (somente administradores)
func (h *Handler) Atualizar() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		antes, err := h.store.Buscar(c.Context(), id)
		if err != nil {
			if errors.Is(err, ErrProdutoNaoEncontrado) {
				return fiber.NewError(fiber.StatusNotFound, ErrProdutoNaoEncontrado.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar o produto")
		}

		var body ProdutoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		body.sanitizar()
		if err := body.validar(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		p := body.produto()
		if err := h.store.Atualizar(c.Context(), id, p); err != nil {
			if errors.Is(err, ErrProdutoNaoEncontrado) {
				return fiber.NewError(fiber.StatusNotFound, ErrProdutoNaoEncontrado.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao salvar: "+err.Error())
		}

		p.ID = id
		h.registrar(c, models.AuditActionUpdate, antes, &p)

		return c.JSON(p)
	}
}

// DELETE /api/produtos/:id (somente administradores)
func (h *Handler) Excluir() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		antes, err := h.store.Buscar(c.Context(), id)
		if err != nil {
			if errors.Is(err, ErrProdutoNaoEncontrado) {
				return fiber.NewError(fiber.StatusNotFound, ErrProdutoNaoEncontrado.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar o produto")
		}

		if err := h.store.Excluir(c.Context(), id); err != nil {
			if errors.Is(err, ErrProdutoNaoEncontrado) {
				return fiber.NewError(fiber.StatusNotFound, ErrProdutoNaoEncontrado.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao excluir: "+err.Error())
		}

		h.registrar(c, models.AuditActionDelete, antes, nil)

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/produtos/busca?q=... — dados da janela de seleção (alterar/excluir)
func (h *Handler) Buscar() fiber.Handler {
	return func(c *fiber.Ctx) error {
		produtos, err := h.store.Listar(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Produtos não puderam ser listados")
		}
		return c.JSON(FiltrarPorNome(produtos, c.Query("q")))
	}
}

// GET /api/produtos/categorias?filtro=... — sugestões do seletor de categorias
func (h *Handler) Categorias() fiber.Handler {
	return func(c *fiber.Ctx) error {
		produtos, err := h.store.Listar(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Produtos não puderam ser listados")
		}
		return c.JSON(SugerirCategorias(produtos, c.Query("filtro")))
	}
}

// GET /api/produtos/tabela?pagina=N — página da consulta, células já prontas
func (h *Handler) Tabela() fiber.Handler {
	return func(c *fiber.Ctx) error {
		produtos, err := h.store.Listar(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Produtos não puderam ser listados")
		}

		linhas := make([]tabela.Linha, 0, len(produtos))
		for _, p := range produtos {
			linhas = append(linhas, linhaProduto(p))
		}

		t := tabela.Nova("Consulta Produtos",
			[]string{"ID", "Cód. Barras", "Produto", "Categoria", "Preço", "Status"}, linhas)
		t.IrPara(c.QueryInt("pagina", 1))

		return c.JSON(t.View())
	}
}

func linhaProduto(p models.Produto) tabela.Linha {
	id := p.IDConsumer
	if id == "" {
		id = "---"
	}
	barras := p.CodigoBarras
	if barras == "" {
		barras = "---"
	}
	cat := p.Categoria
	if cat == "" {
		cat = "Geral"
	}

	return tabela.Linha{
		{Chave: "id", Valor: id},
		{Chave: "barcode", Valor: barras},
		{Chave: "prod", Valor: p.NomeProduto},
		{Chave: "cat", Valor: cat},
		{Chave: "price", Valor: FormatarPreco(p.Preco)},
		{Chave: "status", Valor: string(p.Status)},
	}
}

func (h *Handler) registrar(c *fiber.Ctx, acao models.AuditAction, antes, depois *models.Produto) {
	if h.auditoria == nil {
		return
	}
	userID, _ := c.Locals(auth.CtxUserIDKey).(uint)
	userName, _ := c.Locals(auth.CtxUserName).(string)
	h.auditoria.RegistrarProduto(userID, userName, acao, antes, depois)
}
