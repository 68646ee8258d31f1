package model

import "github.com/shopspring/decimal"

type Provider string

const (
	ProviderTransfermovil Provider = "TRANSFERMOVIL"
	ProviderCubacel       Provider = "CUBACEL"
	ProviderUnknown       Provider = "UNKNOWN"
)

type TransactionType string

const (
	TransactionTypeIdentifiedPayment TransactionType = "PAGO_IDENTIFICADO"
	TransactionTypeAnonymousPayment  TransactionType = "PAGO_ANONIMO"
	TransactionTypeBalanceReceived   TransactionType = "SALDO_RECIBIDO"
	TransactionTypeUnknown           TransactionType = "DESCONOCIDO"
)

// Placeholders for parties the SMS body does not name.
const (
	SenderAnonymous = "ANONYMOUS"
	ReceiverWallet  = "WALLET_DETECTED"
	ReceiverUnknown = "UNKNOWN_NUMBER"
)

// ParsedTransaction is the structured view of one SMS body. Valid is false when
// extraction failed; every other field is best effort.
type ParsedTransaction struct {
	Provider           Provider
	TransactionType    TransactionType
	Amount             decimal.Decimal
	Sender             string
	Receiver           string
	TransactionID      string
	Valid              bool
	RawText            string
	NormalizedReceiver string
}

// Routable reports whether the record may be resolved against the routing table.
func (t ParsedTransaction) Routable() bool {
	return t.Valid && t.Receiver != ""
}

func NewUnknownTransaction(rawText string) ParsedTransaction {
	return ParsedTransaction{
		Provider:        ProviderUnknown,
		TransactionType: TransactionTypeUnknown,
		Amount:          decimal.Zero,
		Valid:           false,
		RawText:         rawText,
	}
}
