// Package tabela implementa a tabela genérica de consulta usada pelas telas
// de cadastro: páginas fixas de 10 linhas, janela deslizante de números de
// página e classificação de células para o front (badge de status, moeda com
// símbolo destacado, números alinhados à direita). Só exibe; nenhuma tela
// escreve através dela.
package tabela

import (
	"strconv"
	"strings"
)

const LinhasPorPagina = 10

// Celula associa o valor exibido à chave da coluna; a chave participa da
// classificação (colunas "status" viram badge).
type Celula struct {
	Chave string
	Valor string
}

type Linha []Celula

type TipoCelula string

const (
	TipoTexto        TipoCelula = "texto"
	TipoNumero       TipoCelula = "numero"
	TipoMoeda        TipoCelula = "moeda"
	TipoBadgeAtivo   TipoCelula = "badge-ativo"
	TipoBadgeInativo TipoCelula = "badge-inativo"
)

// CelulaView é a célula pronta para renderizar.
type CelulaView struct {
	Valor           string     `json:"valor"`
	Tipo            TipoCelula `json:"tipo"`
	Simbolo         string     `json:"simbolo,omitempty"`
	AlinhadoDireita bool       `json:"alinhado_direita"`
	Mono            bool       `json:"mono"`
}

// Classificar decide a apresentação da célula a partir da chave e do valor,
// sem configuração por coluna: os tokens literais de status viram badge,
// valores com "R$" têm o símbolo separado do número e alinham à direita,
// strings numéricas alinham à direita em mono, o resto é texto à esquerda.
func Classificar(chave, valor string) CelulaView {
	ehStatus := strings.Contains(strings.ToLower(chave), "status")

	switch {
	case ehStatus && valor == "ATIVO":
		return CelulaView{Valor: valor, Tipo: TipoBadgeAtivo}
	case ehStatus && valor == "INATIVO":
		return CelulaView{Valor: valor, Tipo: TipoBadgeInativo}
	case strings.Contains(valor, "R$"):
		return CelulaView{
			Valor:           strings.TrimSpace(strings.Replace(valor, "R$", "", 1)),
			Tipo:            TipoMoeda,
			Simbolo:         "R$",
			AlinhadoDireita: true,
			Mono:            true,
		}
	case ehNumerica(valor):
		return CelulaView{Valor: valor, Tipo: TipoNumero, AlinhadoDireita: true, Mono: true}
	}
	return CelulaView{Valor: valor, Tipo: TipoTexto}
}

func ehNumerica(valor string) bool {
	v := strings.TrimSpace(strings.ReplaceAll(valor, ",", "."))
	if v == "" {
		return false
	}
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

// Tabela mantém o estado local de paginação. A página atual não é zerada
// quando os dados mudam; isso é responsabilidade de quem monta a tabela.
type Tabela struct {
	Titulo     string
	Cabecalhos []string
	linhas     []Linha
	pagina     int
}

func Nova(titulo string, cabecalhos []string, linhas []Linha) *Tabela {
	return &Tabela{Titulo: titulo, Cabecalhos: cabecalhos, linhas: linhas, pagina: 1}
}

func (t *Tabela) TotalPaginas() int {
	return (len(t.linhas) + LinhasPorPagina - 1) / LinhasPorPagina
}

func (t *Tabela) Pagina() int { return t.pagina }

// IrPara navega para a página pedida, presa ao intervalo [1, total].
func (t *Tabela) IrPara(n int) {
	max := t.TotalPaginas()
	if max < 1 {
		max = 1
	}
	if n < 1 {
		n = 1
	}
	if n > max {
		n = max
	}
	t.pagina = n
}

func (t *Tabela) Anterior() { t.IrPara(t.pagina - 1) }
func (t *Tabela) Proxima()  { t.IrPara(t.pagina + 1) }

func (t *Tabela) AnteriorDesabilitado() bool { return t.pagina <= 1 }
func (t *Tabela) ProximaDesabilitada() bool  { return t.pagina >= t.TotalPaginas() }

// LinhasDaPagina devolve a fatia de até 10 linhas da página atual.
func (t *Tabela) LinhasDaPagina() []Linha {
	inicio := (t.pagina - 1) * LinhasPorPagina
	if inicio >= len(t.linhas) {
		return nil
	}
	fim := inicio + LinhasPorPagina
	if fim > len(t.linhas) {
		fim = len(t.linhas)
	}
	return t.linhas[inicio:fim]
}

// Janela devolve os números exibidos no seletor de páginas: no máximo cinco,
// deslizando centrados na página atual e presos de forma que a janela nunca
// ultrapasse a última página.
func (t *Tabela) Janela() []int {
	total := t.TotalPaginas()
	n := total
	if n > 5 {
		n = 5
	}

	inicio := 1
	if total > 5 {
		inicio = t.pagina - 2
		if inicio < 1 {
			inicio = 1
		}
		if inicio > total-4 {
			inicio = total - 4
		}
	}

	paginas := make([]int, 0, n)
	for i := 0; i < n; i++ {
		paginas = append(paginas, inicio+i)
	}
	return paginas
}

// View é a página pronta para serializar para o front.
type View struct {
	Titulo        string         `json:"titulo"`
	Cabecalhos    []string       `json:"cabecalhos"`
	Pagina        int            `json:"pagina"`
	TotalPaginas  int            `json:"total_paginas"`
	TotalLinhas   int            `json:"total_linhas"`
	Linhas        [][]CelulaView `json:"linhas"`
	Janela        []int          `json:"janela"`
	AnteriorDesab bool           `json:"anterior_desabilitado"`
	ProximaDesab  bool           `json:"proxima_desabilitada"`
}

func (t *Tabela) View() View {
	linhas := t.LinhasDaPagina()
	vistas := make([][]CelulaView, 0, len(linhas))
	for _, l := range linhas {
		celulas := make([]CelulaView, 0, len(l))
		for _, c := range l {
			celulas = append(celulas, Classificar(c.Chave, c.Valor))
		}
		vistas = append(vistas, celulas)
	}

	return View{
		Titulo:        t.Titulo,
		Cabecalhos:    t.Cabecalhos,
		Pagina:        t.pagina,
		TotalPaginas:  t.TotalPaginas(),
		TotalLinhas:   len(t.linhas),
		Linhas:        vistas,
		Janela:        t.Janela(),
		AnteriorDesab: t.AnteriorDesabilitado(),
		ProximaDesab:  t.ProximaDesabilitada(),
	}
}
