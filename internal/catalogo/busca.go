package catalogo

import (
	"strings"

	"pizzaria-backend/internal/models"
)

// Intencao indica para que a janela de busca foi aberta; o registro escolhido
// segue para edição ou para a confirmação de exclusão.
type Intencao string

const (
	IntencaoAlterar Intencao = "alterar"
	IntencaoExcluir Intencao = "excluir"
)

type ItemBusca struct {
	Produto   models.Produto `json:"produto"`
	Categoria string         `json:"categoria"`
}

// ResultadoBusca carrega a lista filtrada e a flag de catálogo vazio, usada
// pela tela para mostrar "Nenhum produto cadastrado".
type ResultadoBusca struct {
	Itens         []ItemBusca `json:"itens"`
	CatalogoVazio bool        `json:"catalogo_vazio"`
}

// FiltrarPorNome filtra por substring no nome, sem diferenciar maiúsculas.
// Cada item expõe a categoria com "Geral" como rótulo reserva.
func FiltrarPorNome(produtos []models.Produto, consulta string) ResultadoBusca {
	consultaLower := strings.ToLower(consulta)

	itens := make([]ItemBusca, 0)
	for _, p := range produtos {
		if !strings.Contains(strings.ToLower(p.NomeProduto), consultaLower) {
			continue
		}
		cat := p.Categoria
		if cat == "" {
			cat = "Geral"
		}
		itens = append(itens, ItemBusca{Produto: p, Categoria: cat})
	}

	return ResultadoBusca{Itens: itens, CatalogoVazio: len(produtos) == 0}
}
