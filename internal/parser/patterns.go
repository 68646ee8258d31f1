// Package parser turns raw SMS bodies from supported payment providers into
// model.ParsedTransaction values. Functions here are pure and never fail: a body
// that does not match yields a record with Valid set to false.
package parser

import "regexp"

const amountPattern = `(\d+(?:\.\d+)?)`

var (
	// El titular del teléfono 5355555555 le ha realizado una transferencia a la cuenta
	// 9205XXXX de 500.00 CUP. Nro. Transaccion TMW123456
	identifiedPaymentRe = regexp.MustCompile(
		`(?is)titular del tel[eé]fono\s+(\d+)` +
			`.*?transferencia\s+(?:a la cuenta|al Monedero MiTransfer)\s+([^\s,;]+)` +
			`\s+de\s+` + amountPattern + `\s*CUP` +
			`.*?Nro\.?\s*Transacci[oó]n:?\s*([A-Za-z0-9]+)`)

	anonymousAmountRe = regexp.MustCompile(`(?is)(?:con:|de)\s*` + amountPattern + `\s*CUP`)
	anonymousIDRe     = regexp.MustCompile(`(?is)(?:Id|Nro\.)\s*Transacci[oó]n:\s*([A-Za-z0-9]+)`)

	// Usted ha recibido 100.00 CUP del numero 5355555555.
	balanceReceivedRe = regexp.MustCompile(`(?is)recibido\s+` + amountPattern + `\s*CUP\s+del\s+n[uú]mero\s+(\d+)`)
)

const walletMarker = "Monedero MiTransfer"
