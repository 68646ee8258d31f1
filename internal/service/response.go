package service

import "github.com/Behyna/sms-services/smsrelay/internal/model"

type RelayResponse struct {
	Status      string
	Parsed      bool
	Destination string
	Transaction model.ParsedTransaction
}
