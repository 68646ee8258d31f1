package service

type RelayMessageCommand struct {
	Text         string
	Sender       string
	MyNumber     string
	OriginDevice string
}
