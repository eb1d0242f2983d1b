// Package pix builds static PIX BR-Code payloads, the TLV text embedded in
// PIX QR codes. It is the fallback artifact generator used when the upstream
// processor cannot issue a real charge, so checkout is never blocked by
// sandbox instability.
package pix

import (
	"fmt"
	"regexp"
	"strings"
)

// Fixed merchant placeholders for the fallback payload. The sandbox never
// settles these charges, so real merchant data is not required here.
const (
	MerchantName = "NOME DA LOJA"
	MerchantCity = "CIDADE"

	pixGUI = "br.gov.bcb.pix"

	maxTxIDLen = 25
)

// BR-Code field ids.
const (
	idPayloadFormat  = "00"
	idMerchantInfo   = "26"
	idGUI            = "00"
	idPixKey         = "01"
	idCategoryCode   = "52"
	idCurrency       = "53"
	idAmount         = "54"
	idCountryCode    = "58"
	idMerchantName   = "59"
	idMerchantCity   = "60"
	idAdditionalData = "62"
	idReferenceLabel = "05"
	idCRC            = "63"
)

var txidAllowed = regexp.MustCompile(`[^a-zA-Z0-9_\-|]`)

// FormatTLV encodes one BR-Code field: 2-digit id, 2-digit zero-padded
// decimal length, then the value verbatim. Composite fields nest by passing
// the already-encoded inner TLV string as the value.
func FormatTLV(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

// CRC16 computes CRC16/CCITT-FALSE (init 0xFFFF, poly 0x1021, no
// reflection) over data and renders it as 4 uppercase hex digits.
func CRC16(data string) string {
	crc := uint16(0xFFFF)
	for i := 0; i < len(data); i++ {
		crc ^= uint16(data[i]) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return fmt.Sprintf("%04X", crc)
}

// SanitizeTxID strips characters the reference label does not accept and
// truncates to the 25-character BR-Code limit.
func SanitizeTxID(txid string) string {
	txid = txidAllowed.ReplaceAllString(txid, "")
	if len(txid) > maxTxIDLen {
		txid = txid[:maxTxIDLen]
	}
	return txid
}

// BuildStaticPayload assembles a spec-compliant static PIX payload for the
// given key, transaction id and amount (BRL, two decimal places). The CRC is
// computed over the whole payload including the trailing "6304" tag+length.
func BuildStaticPayload(pixKey, txid string, amount float64) string {
	txid = SanitizeTxID(txid)
	if txid == "" {
		txid = "mocktx"
	}

	merchantInfo := FormatTLV(idGUI, pixGUI) + FormatTLV(idPixKey, pixKey)

	var b strings.Builder
	b.WriteString(FormatTLV(idPayloadFormat, "01"))
	b.WriteString(FormatTLV(idMerchantInfo, merchantInfo))
	b.WriteString(FormatTLV(idCategoryCode, "0000"))
	b.WriteString(FormatTLV(idCurrency, "986"))
	b.WriteString(FormatTLV(idAmount, fmt.Sprintf("%.2f", amount)))
	b.WriteString(FormatTLV(idCountryCode, "BR"))
	b.WriteString(FormatTLV(idMerchantName, MerchantName))
	b.WriteString(FormatTLV(idMerchantCity, MerchantCity))
	b.WriteString(FormatTLV(idAdditionalData, FormatTLV(idReferenceLabel, txid)))

	payload := b.String() + idCRC + "04"
	return payload + CRC16(payload)
}
