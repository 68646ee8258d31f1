package constants

// Values of the "status" field returned to the SMS gateway app.
const (
	StatusSuccess = "success"
	StatusIgnored = "ignored"
	StatusError   = "error"
)

const ServiceName = "smsrelay"
