package catalogo

import (
	"sort"
	"strings"

	"pizzaria-backend/internal/models"
)

// Sugestoes é o conteúdo do seletor de categorias: a lista existente já
// filtrada e, quando o texto digitado não bate exatamente com nenhuma
// categoria, o rótulo que seria criado ao pressionar Enter.
type Sugestoes struct {
	Existentes []string `json:"existentes"`
	CriarNova  string   `json:"criar_nova,omitempty"`
}

// SugerirCategorias deriva o conjunto de categorias distintas e não vazias da
// lista carregada de produtos. O filtro é por substring sem diferenciar
// maiúsculas; a oferta de "criar nova" só some quando existe igualdade exata
// (também sem diferenciar maiúsculas) com alguma categoria existente.
func SugerirCategorias(produtos []models.Produto, filtro string) Sugestoes {
	vistas := make(map[string]bool)
	existentes := make([]string, 0)
	filtroUpper := strings.ToUpper(filtro)

	temExata := false
	for _, p := range produtos {
		cat := p.Categoria
		if cat == "" || vistas[cat] {
			continue
		}
		vistas[cat] = true

		if strings.ToUpper(cat) == filtroUpper {
			temExata = true
		}
		if strings.Contains(strings.ToUpper(cat), filtroUpper) {
			existentes = append(existentes, cat)
		}
	}
	sort.Strings(existentes)

	s := Sugestoes{Existentes: existentes}
	if filtro != "" && !temExata {
		s.CriarNova = filtroUpper
	}
	return s
}
