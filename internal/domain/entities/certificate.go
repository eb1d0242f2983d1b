package entities

// Certificate is one product of the storefront catalog. Prices are kept in
// the display format the marketing site uses ("R$ 149,00") plus the numeric
// amount the checkout submits.

type Certificate struct {
	Title       string  `json:"title"`
	Validity    string  `json:"validity"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	Amount      float64 `json:"amount"`
	Badge       string  `json:"badge,omitempty"`
}

// CertificateCatalog returns the sellable certificate products.
func CertificateCatalog() []Certificate {
	return []Certificate{
		{
			Title:       "e-CPF A1",
			Validity:    "Validade 1 Ano",
			Description: "Arquivo digital. Ideal para pessoas físicas.",
			Price:       "R$ 149,00",
			Amount:      149.00,
			Badge:       "Mais Vendido",
		},
		{
			Title:       "e-CNPJ A1",
			Validity:    "Validade 1 Ano",
			Description: "Arquivo digital. Essencial para sua empresa.",
			Price:       "R$ 199,00",
			Amount:      199.00,
			Badge:       "Promoção",
		},
		{
			Title:       "e-CNPJ A3",
			Validity:    "Validade 3 Anos",
			Description: "Token ou Cartão. Maior segurança e durabilidade.",
			Price:       "R$ 349,00",
			Amount:      349.00,
		},
	}
}
