package catalogo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatarMoeda(t *testing.T) {
	tests := []struct {
		nome     string
		entrada  string
		esperado string
	}{
		{"centavos simples", "500", "R$ 5,00"},
		{"um digito", "5", "R$ 0,05"},
		{"com milhar", "123456", "R$ 1.234,56"},
		{"ignora letras", "5a0b0", "R$ 5,00"},
		{"vazio", "", ""},
		{"so letras", "abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			assert.Equal(t, tt.esperado, FormatarMoeda(tt.entrada))
		})
	}
}

func TestFormatarMoedaIdempotente(t *testing.T) {
	for _, entrada := range []string{"500", "1", "123456", "999999999"} {
		uma := FormatarMoeda(entrada)
		assert.Equal(t, uma, FormatarMoeda(uma), "reaplicar a máscara deve preservar %q", uma)
	}
}

func TestMoedaParaFloat(t *testing.T) {
	tests := []struct {
		entrada  string
		esperado float64
	}{
		{"R$ 5,00", 5.0},
		{"R$ 1.234,56", 1234.56},
		{"500", 5.0},
		{"", 0},
		{"R$", 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.esperado, MoedaParaFloat(tt.entrada), 1e-9, "entrada %q", tt.entrada)
	}
}

func TestMoedaIdaEVolta(t *testing.T) {
	// o que foi digitado como centavos tem de voltar como o mesmo valor
	assert.InDelta(t, 5.0, MoedaParaFloat(FormatarMoeda("500")), 1e-9)
	assert.InDelta(t, 0.07, MoedaParaFloat(FormatarMoeda("7")), 1e-9)
}

func TestFormatarPreco(t *testing.T) {
	assert.Equal(t, "R$ 5,00", FormatarPreco(5))
	assert.Equal(t, "R$ 0,50", FormatarPreco(0.5))
	assert.Equal(t, "R$ 1.234,56", FormatarPreco(1234.56))
}

func TestNormalizarCodigoBarras(t *testing.T) {
	tests := []struct {
		nome     string
		entrada  string
		esperado string
	}{
		{"so digitos passam", "7891000100103", "7891000100103"},
		{"descarta separadores", "789-1000.100 103", "7891000100103"},
		{"descarta letras", "abc123", "123"},
		{"vazio", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			assert.Equal(t, tt.esperado, NormalizarCodigoBarras(tt.entrada))
		})
	}
}

func TestNormalizarCodigoBarrasLimite(t *testing.T) {
	longo := ""
	for i := 0; i < 60; i++ {
		longo += "9"
	}

	resultado := NormalizarCodigoBarras(longo)
	assert.Len(t, resultado, 44)
}
