package service

import (
	"strings"

	"github.com/Behyna/sms-services/smsrelay/internal/model"
	"github.com/Behyna/sms-services/smsrelay/internal/parser"
)

// Classify picks a provider parser from the purported sender and the body.
// Sender labels are set by the forwarding app and are not trusted beyond
// choosing a parser. Carrier messages never name the receiving line, so the
// device's own number is injected as the receiver.
func Classify(text, sender, myNumber string) model.ParsedTransaction {
	upperText := strings.ToUpper(text)
	upperSender := strings.ToUpper(sender)

	switch {
	case strings.Contains(upperSender, "PAGO") || strings.Contains(upperText, "TRANSFER"):
		return parser.ParseTransfermovil(text)

	case strings.Contains(upperSender, "CUBACEL") || strings.Contains(upperText, "CUBACEL"):
		tx := parser.ParseCubacel(text)
		tx.Receiver = myNumber
		return tx

	default:
		return model.NewUnknownTransaction(text)
	}
}
