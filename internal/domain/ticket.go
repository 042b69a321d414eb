package domain

// Ticket is a single unit of work produced by the model. Fields use the
// canonical lowercased key scheme so downstream consumers never need
// case-insensitive lookups.
type Ticket struct {
	Subject          string `json:"subject" dynamodbav:"subject"`
	Body             string `json:"body" dynamodbav:"body"`
	EstimationPoints int    `json:"estimationpoints" dynamodbav:"estimationpoints"`
}

// TicketCollection is the set of tickets generated from one transcript.
// Its identity (document id + creation timestamp) is assigned once at
// creation and never changes.
type TicketCollection struct {
	DocumentID      string   `json:"document_id" dynamodbav:"document_id"`
	CreatedDatetime string   `json:"created_datetime" dynamodbav:"created_datetime"`
	Tickets         []Ticket `json:"tickets" dynamodbav:"tickets"`
	OriginalPrompt  string   `json:"original_prompt" dynamodbav:"original_prompt"`
}

// SubTicketCollection holds the sub-tickets produced by expanding a parent
// ticket. The prompt that produced it is kept so a later expansion has
// context without re-fetching the transcript.
type SubTicketCollection struct {
	UserID          string   `json:"user_id" dynamodbav:"user_id"`
	SubTicketID     string   `json:"sub_ticket_id" dynamodbav:"sub_ticket_id"`
	Tickets         []Ticket `json:"tickets" dynamodbav:"tickets"`
	SubTicketPrompt string   `json:"sub_ticket_prompt" dynamodbav:"sub_ticket_prompt"`
	CreatedDatetime string   `json:"created_datetime" dynamodbav:"created_datetime"`
}
