package webhook

type Request struct {
	Source                 string      `json:"source"`
	RequestID              string      `json:"request_id"`
	Timestamp              string      `json:"timestamp"`
	OriginDevice           string      `json:"origin_device"`
	OriginalSender         string      `json:"original_sender"`
	ReceiverNumberReported string      `json:"receiver_number_reported"`
	Transaction            Transaction `json:"transaction"`
}

type Transaction struct {
	Provider           string  `json:"provider"`
	TransactionType    string  `json:"transaction_type"`
	Amount             float64 `json:"amount"`
	Sender             string  `json:"sender,omitempty"`
	Receiver           string  `json:"receiver,omitempty"`
	TransactionID      string  `json:"transaction_id,omitempty"`
	Valid              bool    `json:"valid"`
	RawText            string  `json:"raw_text"`
	NormalizedReceiver string  `json:"normalized_receiver,omitempty"`
}
