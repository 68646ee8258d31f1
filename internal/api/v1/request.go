package v1

import (
	"strings"

	"github.com/Behyna/sms-services/smsrelay/internal/model"
	"github.com/spf13/cast"
)

// Accepted body keys per field, in priority order. Gateway apps disagree on
// naming, so the first non-empty value wins.
var (
	TextAliases     = []string{"text", "body", "message"}
	SenderAliases   = []string{"dirección", "direccion", "sender", "from"}
	MyNumberAliases = []string{"my_number"}
)

type InboundMessage struct {
	Text     string
	Sender   string
	MyNumber string
}

func NewInboundMessage(body map[string]any) InboundMessage {
	msg := InboundMessage{
		Text:     FirstNonEmpty(body, TextAliases),
		Sender:   FirstNonEmpty(body, SenderAliases),
		MyNumber: FirstNonEmpty(body, MyNumberAliases),
	}
	if msg.MyNumber == "" {
		msg.MyNumber = model.ReceiverUnknown
	}
	return msg
}

// FirstNonEmpty returns the first alias whose value is a non-blank scalar.
// Numbers are rendered without exponent; objects and arrays count as empty.
func FirstNonEmpty(body map[string]any, aliases []string) string {
	for _, key := range aliases {
		raw, ok := body[key]
		if !ok || raw == nil {
			continue
		}

		value, err := cast.ToStringE(raw)
		if err != nil {
			continue
		}

		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}
