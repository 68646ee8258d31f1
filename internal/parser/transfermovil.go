package parser

import (
	"strings"

	"github.com/Behyna/sms-services/smsrelay/internal/model"
	"github.com/shopspring/decimal"
)

// ParseTransfermovil extracts a payment from a Transfermóvil notification.
// Identified payments are tried first; wallet deposits that do not name the
// payer fall back to an anonymous record.
func ParseTransfermovil(text string) model.ParsedTransaction {
	tx := model.ParsedTransaction{
		Provider: model.ProviderTransfermovil,
		Amount:   decimal.Zero,
		RawText:  text,
	}

	if m := identifiedPaymentRe.FindStringSubmatch(text); m != nil {
		amount, err := decimal.NewFromString(m[3])
		if err != nil {
			return tx
		}

		tx.TransactionType = model.TransactionTypeIdentifiedPayment
		tx.Sender = m[1]
		tx.Receiver = m[2]
		tx.Amount = amount
		tx.TransactionID = m[4]
		tx.Valid = true
		return tx
	}

	if strings.Contains(text, walletMarker) {
		return parseAnonymousWallet(tx)
	}

	return tx
}

func parseAnonymousWallet(tx model.ParsedTransaction) model.ParsedTransaction {
	tx.TransactionType = model.TransactionTypeAnonymousPayment
	tx.Sender = model.SenderAnonymous
	tx.Receiver = model.ReceiverWallet

	amountMatch := anonymousAmountRe.FindStringSubmatch(tx.RawText)
	idMatch := anonymousIDRe.FindStringSubmatch(tx.RawText)
	if amountMatch == nil || idMatch == nil {
		return tx
	}

	amount, err := decimal.NewFromString(amountMatch[1])
	if err != nil {
		return tx
	}

	tx.Amount = amount
	tx.TransactionID = idMatch[1]
	tx.Valid = true
	return tx
}
