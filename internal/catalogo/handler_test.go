package catalogo

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzaria-backend/internal/models"
	"pizzaria-backend/internal/tabela"
)

type memHandlerStore struct {
	memStore
}

func (s *memHandlerStore) Buscar(ctx context.Context, id string) (*models.Produto, error) {
	for i := range s.produtos {
		if s.produtos[i].ID == id {
			p := s.produtos[i]
			return &p, nil
		}
	}
	return nil, ErrProdutoNaoEncontrado
}

func appDeTeste(store *memHandlerStore) *fiber.App {
	h := NovoHandler(store, nil)

	app := fiber.New()
	app.Get("/api/produtos", h.Listar())
	app.Get("/api/produtos/busca", h.Buscar())
	app.Get("/api/produtos/categorias", h.Categorias())
	app.Get("/api/produtos/tabela", h.Tabela())
	app.Post("/api/produtos", h.Incluir())
	app.Put("/api/produtos/:id", h.Atualizar())
	app.Delete("/api/produtos/:id", h.Excluir())
	return app
}

func requisicaoJSON(t *testing.T, metodo, alvo string, corpo any) *http.Request {
	t.Helper()
	b, err := json.Marshal(corpo)
	require.NoError(t, err)

	req := httptest.NewRequest(metodo, alvo, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandlerListar(t *testing.T) {
	store := &memHandlerStore{memStore{produtos: []models.Produto{
		{ID: "p1", NomeProduto: "PIZZA", Preco: 5, Status: models.StatusAtivo},
		{ID: "p2", NomeProduto: "COCA-COLA", Preco: 8, Status: models.StatusAtivo},
	}}}
	app := appDeTeste(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/produtos", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var produtos []models.Produto
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&produtos))
	assert.Len(t, produtos, 2)
}

func TestHandlerIncluir(t *testing.T) {
	store := &memHandlerStore{}
	app := appDeTeste(store)

	req := requisicaoJSON(t, http.MethodPost, "/api/produtos", ProdutoRequest{
		NomeProduto:  "pizza calabresa",
		Categoria:    " pizza ",
		CodigoBarras: "789-1000-100",
		Preco:        35.9,
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var criado models.Produto
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&criado))
	assert.NotEmpty(t, criado.ID)
	assert.Equal(t, "PIZZA CALABRESA", criado.NomeProduto)
	assert.Equal(t, "PIZZA", criado.Categoria)
	assert.Equal(t, "7891000100", criado.CodigoBarras)
	assert.Equal(t, models.StatusAtivo, criado.Status)
	assert.Equal(t, 1, store.inserts)
}

func TestHandlerIncluirInvalido(t *testing.T) {
	store := &memHandlerStore{}
	app := appDeTeste(store)

	tests := []struct {
		nome string
		body ProdutoRequest
	}{
		{"sem nome", ProdutoRequest{Preco: 10}},
		{"preco zero", ProdutoRequest{NomeProduto: "PIZZA"}},
		{"status desconhecido", ProdutoRequest{NomeProduto: "PIZZA", Preco: 10, Status: "PAUSADO"}},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			resp, err := app.Test(requisicaoJSON(t, http.MethodPost, "/api/produtos", tt.body))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
	assert.Zero(t, store.inserts)
}

func TestHandlerAtualizar(t *testing.T) {
	store := &memHandlerStore{memStore{produtos: []models.Produto{
		{ID: "p1", NomeProduto: "PIZZA", Preco: 5, Status: models.StatusAtivo},
	}}}
	app := appDeTeste(store)

	req := requisicaoJSON(t, http.MethodPut, "/api/produtos/p1", ProdutoRequest{
		NomeProduto: "pizza calabresa",
		Preco:       39.9,
		Status:      string(models.StatusInativo),
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var salvo models.Produto
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&salvo))
	assert.Equal(t, "p1", salvo.ID)
	assert.Equal(t, "PIZZA CALABRESA", salvo.NomeProduto)
	assert.Equal(t, models.StatusInativo, salvo.Status)
	assert.Equal(t, 1, store.updates)
}

func TestHandlerAtualizarNaoEncontrado(t *testing.T) {
	app := appDeTeste(&memHandlerStore{})

	req := requisicaoJSON(t, http.MethodPut, "/api/produtos/nao-existe", ProdutoRequest{
		NomeProduto: "PIZZA",
		Preco:       10,
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandlerExcluir(t *testing.T) {
	store := &memHandlerStore{memStore{produtos: []models.Produto{
		{ID: "p1", NomeProduto: "PIZZA"},
	}}}
	app := appDeTeste(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/produtos/p1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 1, store.deletes)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/produtos/p1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandlerBusca(t *testing.T) {
	store := &memHandlerStore{memStore{produtos: []models.Produto{
		{ID: "p1", NomeProduto: "PIZZA CALABRESA", Categoria: "PIZZA"},
		{ID: "p2", NomeProduto: "COCA-COLA", Categoria: ""},
	}}}
	app := appDeTeste(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/produtos/busca?q=cola", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var r ResultadoBusca
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	require.Len(t, r.Itens, 1)
	assert.Equal(t, "p2", r.Itens[0].Produto.ID)
	assert.Equal(t, "Geral", r.Itens[0].Categoria)
	assert.False(t, r.CatalogoVazio)
}

func TestHandlerCategorias(t *testing.T) {
	store := &memHandlerStore{memStore{produtos: []models.Produto{
		{ID: "p1", NomeProduto: "PIZZA CALABRESA", Categoria: "PIZZA"},
		{ID: "p2", NomeProduto: "SUCO", Categoria: "BEBIDA"},
	}}}
	app := appDeTeste(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/produtos/categorias?filtro=piz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var s Sugestoes
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&s))
	assert.Equal(t, []string{"PIZZA"}, s.Existentes)
	assert.Equal(t, "PIZ", s.CriarNova)
}

func TestHandlerTabela(t *testing.T) {
	produtos := make([]models.Produto, 0, 12)
	for i := 0; i < 12; i++ {
		produtos = append(produtos, models.Produto{
			ID:          string(rune('a' + i)),
			NomeProduto: "PIZZA",
			Preco:       35.9,
			Status:      models.StatusAtivo,
		})
	}
	store := &memHandlerStore{memStore{produtos: produtos}}
	app := appDeTeste(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/produtos/tabela?pagina=2", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var v tabela.View
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	assert.Equal(t, "Consulta Produtos", v.Titulo)
	assert.Equal(t, 2, v.Pagina)
	assert.Equal(t, 2, v.TotalPaginas)
	assert.Equal(t, 12, v.TotalLinhas)
	require.Len(t, v.Linhas, 2)

	linha := v.Linhas[0]
	// id_consumer e código de barras vazios viram "---", categoria vira "Geral"
	assert.Equal(t, "---", linha[0].Valor)
	assert.Equal(t, "---", linha[1].Valor)
	assert.Equal(t, "Geral", linha[3].Valor)
	assert.Equal(t, tabela.TipoMoeda, linha[4].Tipo)
	assert.Equal(t, "35,90", linha[4].Valor)
	assert.Equal(t, tabela.TipoBadgeAtivo, linha[5].Tipo)
}
