package model

import "time"

const EnvelopeSource = "sms-relay"

type ForwardEnvelope struct {
	Source                 string
	RequestID              string
	Timestamp              time.Time
	OriginDevice           string
	OriginalSender         string
	ReceiverNumberReported string
	Transaction            ParsedTransaction
}
