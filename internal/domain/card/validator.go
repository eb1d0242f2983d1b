package card

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"certificados_xpto/internal/domain/entities"
)

var nonDigits = regexp.MustCompile(`\D`)

// No issuer emits cards valid further out than this.
const maxValidityYears = 20

// StripNonDigits removes everything but 0-9 (masks, spaces, slashes).
func StripNonDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// Validate runs the card data checks in order and returns the first failing
// human-readable reason, or "" when the data is valid. Messages are the ones
// the checkout displays, hence Portuguese.
//
// The caller decides what to do with the reason (the create-payment flow
// turns it into a 400); no error type is involved on purpose so the rules
// stay side-effect free.
func Validate(info *entities.CardInfo, now time.Time) string {
	if info == nil {
		return "Dados do cartão são obrigatórios para pagamento com cartão de crédito"
	}

	number := StripNonDigits(info.Number)
	name := strings.TrimSpace(info.Name)
	cvv := StripNonDigits(info.CVV)
	expiration := StripNonDigits(info.Expiration)

	if len(number) < 13 || len(number) > 19 {
		return "Número do cartão inválido. Deve conter entre 13 e 19 dígitos"
	}

	if !ValidateLuhn(number) {
		return "Número do cartão inválido. Verifique os dígitos informados"
	}

	if len(name) < 3 {
		return "Nome no cartão é obrigatório e deve ter pelo menos 3 caracteres"
	}

	if len(cvv) < 3 || len(cvv) > 4 {
		return "CVV inválido. Deve conter 3 ou 4 dígitos"
	}

	if len(expiration) != 4 {
		return "Validade do cartão inválida. Use o formato MM/AA"
	}

	month, _ := strconv.Atoi(expiration[:2])
	year, _ := strconv.Atoi(expiration[2:])

	if month < 1 || month > 12 {
		return "Mês de validade inválido. Deve ser entre 01 e 12"
	}

	// Two-digit year comparison, same convention the issuers print on cards.
	// A year far beyond any plausible validity window ("99" in 2026) is a
	// previous-century card, not one valid until 2099.
	currentYear := now.Year() % 100
	currentMonth := int(now.Month())
	if year < currentYear || (year == currentYear && month < currentMonth) {
		return "Cartão expirado. Verifique a validade"
	}
	if year-currentYear > maxValidityYears {
		return "Cartão expirado. Verifique a validade"
	}

	return ""
}
