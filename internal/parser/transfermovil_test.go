package parser_test

import (
	"testing"

	"github.com/Behyna/sms-services/smsrelay/internal/model"
	"github.com/Behyna/sms-services/smsrelay/internal/parser"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseTransfermovil_IdentifiedPayment(t *testing.T) {
	testCases := []struct {
		name          string
		text          string
		sender        string
		receiver      string
		amount        string
		transactionID string
	}{
		{
			name: "account transfer",
			text: "El titular del telefono 53501234 le ha realizado una transferencia a la cuenta " +
				"123456 de 150.50 CUP. Nro. Transaccion ABC123",
			sender:        "53501234",
			receiver:      "123456",
			amount:        "150.50",
			transactionID: "ABC123",
		},
		{
			name: "accented and multiline",
			text: "Banco Metropolitano\nEl titular del teléfono 5355550000 le ha realizado\n" +
				"una transferencia a la cuenta 9205129970288755 de 500.00 CUP.\n" +
				"Nro. Transacción: TMW987654",
			sender:        "5355550000",
			receiver:      "9205129970288755",
			amount:        "500",
			transactionID: "TMW987654",
		},
		{
			name: "wallet transfer",
			text: "El titular del telefono 53123456 le ha realizado una transferencia al Monedero MiTransfer " +
				"W00123 de 25 CUP. Nro. Transaccion XY99",
			sender:        "53123456",
			receiver:      "W00123",
			amount:        "25",
			transactionID: "XY99",
		},
		{
			name: "case insensitive",
			text: "EL TITULAR DEL TELEFONO 53501234 LE HA REALIZADO UNA TRANSFERENCIA A LA CUENTA " +
				"777 DE 10.00 CUP. NRO. TRANSACCION Q1",
			sender:        "53501234",
			receiver:      "777",
			amount:        "10",
			transactionID: "Q1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx := parser.ParseTransfermovil(tc.text)

			assert.True(t, tx.Valid)
			assert.Equal(t, model.ProviderTransfermovil, tx.Provider)
			assert.Equal(t, model.TransactionTypeIdentifiedPayment, tx.TransactionType)
			assert.Equal(t, tc.sender, tx.Sender)
			assert.Equal(t, tc.receiver, tx.Receiver)
			assert.True(t, decimal.RequireFromString(tc.amount).Equal(tx.Amount), "amount %s", tx.Amount)
			assert.Equal(t, tc.transactionID, tx.TransactionID)
			assert.Equal(t, tc.text, tx.RawText)
		})
	}
}

func TestParseTransfermovil_AnonymousWallet(t *testing.T) {
	t.Run("amount and id present", func(t *testing.T) {
		text := "Se ha realizado un deposito en su Monedero MiTransfer con: 300.00 CUP. Id Transaccion: MT55501"

		tx := parser.ParseTransfermovil(text)

		assert.True(t, tx.Valid)
		assert.Equal(t, model.TransactionTypeAnonymousPayment, tx.TransactionType)
		assert.Equal(t, model.SenderAnonymous, tx.Sender)
		assert.Equal(t, model.ReceiverWallet, tx.Receiver)
		assert.True(t, decimal.NewFromInt(300).Equal(tx.Amount))
		assert.Equal(t, "MT55501", tx.TransactionID)
	})

	t.Run("nro keyword and de amount", func(t *testing.T) {
		text := "Recarga de 75 CUP a su Monedero MiTransfer. nro. transaccion: ZZ1"

		tx := parser.ParseTransfermovil(text)

		assert.True(t, tx.Valid)
		assert.True(t, decimal.NewFromInt(75).Equal(tx.Amount))
		assert.Equal(t, "ZZ1", tx.TransactionID)
	})

	t.Run("missing id is invalid", func(t *testing.T) {
		text := "Deposito en su Monedero MiTransfer con: 300.00 CUP."

		tx := parser.ParseTransfermovil(text)

		assert.False(t, tx.Valid)
		assert.Empty(t, tx.TransactionID)
	})

	t.Run("missing amount is invalid", func(t *testing.T) {
		text := "Deposito en su Monedero MiTransfer. Id Transaccion: MT1"

		tx := parser.ParseTransfermovil(text)

		assert.False(t, tx.Valid)
		assert.True(t, tx.Amount.IsZero())
	})

	t.Run("marker is required", func(t *testing.T) {
		text := "Deposito con: 300.00 CUP. Id Transaccion: MT1"

		tx := parser.ParseTransfermovil(text)

		assert.False(t, tx.Valid)
		assert.Empty(t, tx.Sender)
	})
}

func TestParseTransfermovil_NoMatch(t *testing.T) {
	tx := parser.ParseTransfermovil("Su saldo es 20 CUP")

	assert.False(t, tx.Valid)
	assert.Equal(t, model.ProviderTransfermovil, tx.Provider)
	assert.True(t, tx.Amount.IsZero())
	assert.Empty(t, tx.Sender)
	assert.Empty(t, tx.Receiver)
	assert.Empty(t, tx.TransactionID)
	assert.Equal(t, "Su saldo es 20 CUP", tx.RawText)
}

func FuzzParseTransfermovil(f *testing.F) {
	f.Add("El titular del telefono 53501234 le ha realizado una transferencia a la cuenta 123456 de 150.50 CUP. Nro. Transaccion ABC123")
	f.Add("Monedero MiTransfer con: 1 CUP Id Transaccion: A")
	f.Add("")

	f.Fuzz(func(t *testing.T, text string) {
		tx := parser.ParseTransfermovil(text)

		assert.Equal(t, text, tx.RawText)
		if tx.Valid {
			assert.NotEmpty(t, tx.TransactionID)
			assert.NotEmpty(t, tx.Sender)
			assert.NotEmpty(t, tx.Receiver)
			assert.False(t, tx.Amount.IsNegative())
		}
	})
}
