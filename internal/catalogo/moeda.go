package catalogo

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const maxDigitosCodigoBarras = 44

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatarMoeda aplica a máscara de moeda sobre o que foi digitado: descarta
// tudo que não é dígito, trata o restante como centavos e renderiza em pt-BR
// ("500" -> "R$ 5,00"). Reaplicar sobre a própria saída devolve a mesma
// string, porque o campo guarda o valor já mascarado e reformata a cada tecla.
func FormatarMoeda(valor string) string {
	limpo := apenasDigitos(valor)
	if limpo == "" {
		return ""
	}

	centavos, err := strconv.ParseFloat(limpo, 64)
	if err != nil {
		return ""
	}

	return ptBR.Sprintf("R$ %v", number.Decimal(centavos/100,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatarPreco renderiza um preço já persistido: 5.0 -> "R$ 5,00".
func FormatarPreco(valor float64) string {
	return ptBR.Sprintf("R$ %v", number.Decimal(valor,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// MoedaParaFloat desfaz a máscara: "R$ 5,00" -> 5.0. Vazio vale zero.
func MoedaParaFloat(valor string) float64 {
	limpo := apenasDigitos(valor)
	if limpo == "" {
		return 0
	}

	centavos, err := strconv.ParseFloat(limpo, 64)
	if err != nil {
		return 0
	}
	return centavos / 100
}

// NormalizarCodigoBarras mantém apenas dígitos e corta em 44 caracteres,
// a mesma regra aplicada continuamente enquanto o campo é digitado.
func NormalizarCodigoBarras(valor string) string {
	limpo := apenasDigitos(valor)
	if len(limpo) > maxDigitosCodigoBarras {
		return limpo[:maxDigitosCodigoBarras]
	}
	return limpo
}

func apenasDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
