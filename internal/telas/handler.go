// Package telas serve as telas ainda sem persistência própria (clientes,
// fornecedores, estoque, contas a pagar). São consultas estáticas: os dados
// são fictícios e passam pela mesma tabela genérica do catálogo, só para a
// navegação existir enquanto os módulos não são construídos.
package telas

import (
	"fmt"

	"pizzaria-backend/internal/tabela"

	"github.com/gofiber/fiber/v2"
)

func paginada(c *fiber.Ctx, t *tabela.Tabela) error {
	t.IrPara(c.QueryInt("pagina", 1))
	return c.JSON(t.View())
}

// GET /api/telas/clientes
func ClientesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		linhas := make([]tabela.Linha, 0, 10)
		for i := 1; i <= 10; i++ {
			linhas = append(linhas, tabela.Linha{
				{Chave: "id", Valor: fmt.Sprintf("%04d", i)},
				{Chave: "name", Valor: fmt.Sprintf("Cliente %d", i)},
				{Chave: "tel", Valor: "(21) 99999-9999"},
				{Chave: "loc", Valor: "Copacabana, RJ"},
				{Chave: "status", Valor: "ATIVO"},
			})
		}
		return paginada(c, tabela.Nova("Consulta Clientes",
			[]string{"ID", "Cliente", "Contato", "Localização", "Status"}, linhas))
	}
}

// GET /api/telas/fornecedores
func FornecedoresHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		linhas := make([]tabela.Linha, 0, 10)
		for i := 1; i <= 10; i++ {
			linhas = append(linhas, tabela.Linha{
				{Chave: "id", Valor: fmt.Sprintf("%04d", i)},
				{Chave: "name", Valor: fmt.Sprintf("Fornecedor %d", i)},
				{Chave: "seg", Valor: "Bebidas"},
				{Chave: "contact", Valor: "contato@forn.com"},
				{Chave: "status", Valor: "ATIVO"},
			})
		}
		return paginada(c, tabela.Nova("Consulta Fornecedores",
			[]string{"ID", "Fornecedor", "Segmento", "Contato", "Status"}, linhas))
	}
}

// GET /api/telas/estoque
func EstoqueHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		linhas := make([]tabela.Linha, 0, 10)
		for i := 1; i <= 10; i++ {
			linhas = append(linhas, tabela.Linha{
				{Chave: "sku", Valor: fmt.Sprintf("SKU-%d", i+99)},
				{Chave: "desc", Valor: fmt.Sprintf("Item Insumo %d", i)},
				{Chave: "und", Valor: "KG"},
				{Chave: "qta", Valor: "15.5"},
				{Chave: "min", Valor: "5.0"},
			})
		}
		return paginada(c, tabela.Nova("Painel de Inventário",
			[]string{"SKU", "Descrição", "Und", "Atual", "Mínimo"}, linhas))
	}
}

// GET /api/telas/contas
func ContasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		linhas := make([]tabela.Linha, 0, 10)
		for i := 1; i <= 10; i++ {
			linhas = append(linhas, tabela.Linha{
				{Chave: "doc", Valor: fmt.Sprintf("NF-%d", i+499)},
				{Chave: "cred", Valor: fmt.Sprintf("Fornecedor Exemplo %d", i)},
				{Chave: "venc", Valor: "25/08/2024"},
				{Chave: "val", Valor: "R$ 1.250,00"},
				{Chave: "status", Valor: "PENDENTE"},
			})
		}
		return paginada(c, tabela.Nova("Consulta Lançamentos",
			[]string{"Doc", "Credor", "Vencimento", "Valor", "Status"}, linhas))
	}
}
