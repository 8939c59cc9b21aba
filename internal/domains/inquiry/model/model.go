package model

const (
	EntityName = "inquiry"
)

// Inquiry is a free-form customer message. It is forwarded to the business
// mailbox and never persisted.
type Inquiry struct {
	Firstname string
	Email     string
	Phone     string
	Message   string
}
