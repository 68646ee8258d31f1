package service_test

import (
	"testing"

	"github.com/Behyna/sms-services/smsrelay/internal/model"
	"github.com/Behyna/sms-services/smsrelay/internal/service"
	"github.com/stretchr/testify/assert"
)

const (
	transferText = "El titular del telefono 53501234 le ha realizado una transferencia a la cuenta " +
		"123456 de 150.50 CUP. Nro. Transaccion ABC123"
	cubacelText = "Usted ha recibido 40.00 CUP del numero 5355512345."
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name            string
		text            string
		sender          string
		myNumber        string
		provider        model.Provider
		transactionType model.TransactionType
		valid           bool
	}{
		{
			name:            "pago sender selects transfer parser",
			text:            transferText,
			sender:          "PAGO-MOVIL",
			provider:        model.ProviderTransfermovil,
			transactionType: model.TransactionTypeIdentifiedPayment,
			valid:           true,
		},
		{
			name:            "transfer in body selects transfer parser",
			text:            transferText,
			sender:          "",
			provider:        model.ProviderTransfermovil,
			transactionType: model.TransactionTypeIdentifiedPayment,
			valid:           true,
		},
		{
			name:            "lowercase sender label",
			text:            "no markers here",
			sender:          "pagoxmovil",
			provider:        model.ProviderTransfermovil,
			transactionType: "",
			valid:           false,
		},
		{
			name:            "cubacel sender",
			text:            cubacelText,
			sender:          "Cubacel",
			myNumber:        "5350009999",
			provider:        model.ProviderCubacel,
			transactionType: model.TransactionTypeBalanceReceived,
			valid:           true,
		},
		{
			name:            "cubacel in body",
			text:            cubacelText + " Gracias por usar CUBACEL",
			sender:          "+5350000000",
			myNumber:        "5350009999",
			provider:        model.ProviderCubacel,
			transactionType: model.TransactionTypeBalanceReceived,
			valid:           true,
		},
		{
			name:            "transfer marker wins over cubacel",
			text:            "Cubacel TRANSFER notice",
			sender:          "Cubacel",
			provider:        model.ProviderTransfermovil,
			transactionType: "",
			valid:           false,
		},
		{
			name:            "unknown",
			text:            "Hola, nos vemos mañana",
			sender:          "+5351111111",
			provider:        model.ProviderUnknown,
			transactionType: model.TransactionTypeUnknown,
			valid:           false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx := service.Classify(tc.text, tc.sender, tc.myNumber)

			assert.Equal(t, tc.provider, tx.Provider)
			assert.Equal(t, tc.transactionType, tx.TransactionType)
			assert.Equal(t, tc.valid, tx.Valid)
			assert.Equal(t, tc.text, tx.RawText)
		})
	}
}

func TestClassify_InjectsReceivingNumberForCarrier(t *testing.T) {
	tx := service.Classify(cubacelText, "Cubacel", "5350009999")

	assert.True(t, tx.Valid)
	assert.Equal(t, "5350009999", tx.Receiver)
	assert.Equal(t, "5355512345", tx.Sender)
}

func TestClassify_InjectsReceivingNumberEvenWhenUnparsed(t *testing.T) {
	tx := service.Classify("Cubacel: saldo insuficiente", "Cubacel", model.ReceiverUnknown)

	assert.False(t, tx.Valid)
	assert.Equal(t, model.ReceiverUnknown, tx.Receiver)
}

func TestClassify_UnknownKeepsRawText(t *testing.T) {
	tx := service.Classify("random text", "", "5350009999")

	assert.Equal(t, "random text", tx.RawText)
	assert.Empty(t, tx.Receiver)
	assert.True(t, tx.Amount.IsZero())
}
