package events

import (
	"github.com/transcriptions-ai/transcriber/internal/domain"
)

// EventType enumerates supported invocation kinds.
type EventType string

const (
	EventTicketGeneration EventType = "TICKET_GENERATION"
	EventTicketExpansion  EventType = "TICKET_EXPANSION"
)

// WarmBody is the sentinel body value of a keep-alive event.
const WarmBody = "warm"

// InvocationEvent is the inbound trigger payload, identical for the Lambda
// and local HTTP entry points.
type InvocationEvent struct {
	Event              EventType       `json:"event"`
	Body               string          `json:"body,omitempty"`
	DocumentID         string          `json:"document_id"`
	GenerationDatetime string          `json:"generation_datetime"`
	NumberOfTickets    int             `json:"number_of_tickets"`
	Platform           domain.Platform `json:"platform"`
	Client             domain.Provider `json:"client"`
	Ticket             map[string]any  `json:"ticket,omitempty"`
	SubTicketID        string          `json:"sub_ticket_id,omitempty"`
	UserID             string          `json:"user_id,omitempty"`
}

// IsWarm reports whether the event is a keep-alive ping.
func (e InvocationEvent) IsWarm() bool {
	return e.Body == WarmBody
}

// Result summarizes a completed invocation.
type Result struct {
	Status          string    `json:"status"`
	Operation       EventType `json:"operation,omitempty"`
	DocumentID      string    `json:"document_id,omitempty"`
	CreatedDatetime string    `json:"created_datetime,omitempty"`
	UserID          string    `json:"user_id,omitempty"`
	SubTicketID     string    `json:"sub_ticket_id,omitempty"`
	TicketCount     int       `json:"ticket_count,omitempty"`
}
