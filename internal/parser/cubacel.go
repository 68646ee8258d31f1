package parser

import (
	"github.com/Behyna/sms-services/smsrelay/internal/model"
	"github.com/shopspring/decimal"
)

// ParseCubacel extracts a balance transfer from a Cubacel notification. The
// carrier never names the receiving line, so Receiver is left empty and must
// be filled in by the caller.
func ParseCubacel(text string) model.ParsedTransaction {
	tx := model.ParsedTransaction{
		Provider: model.ProviderCubacel,
		Amount:   decimal.Zero,
		RawText:  text,
	}

	m := balanceReceivedRe.FindStringSubmatch(text)
	if m == nil {
		return tx
	}

	amount, err := decimal.NewFromString(m[1])
	if err != nil {
		return tx
	}

	tx.TransactionType = model.TransactionTypeBalanceReceived
	tx.Amount = amount
	tx.Sender = m[2]
	tx.Valid = true
	return tx
}
