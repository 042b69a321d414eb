package dto

import (
	"github.com/transcriptions-ai/transcriber/internal/domain"
)

// TicketResponse is a single generated ticket.
type TicketResponse struct {
	Subject          string `json:"subject"`
	Body             string `json:"body"`
	EstimationPoints int    `json:"estimationpoints"`
}

// CollectionResponse is a stored ticket collection.
type CollectionResponse struct {
	DocumentID      string           `json:"document_id"`
	CreatedDatetime string           `json:"created_datetime"`
	Tickets         []TicketResponse `json:"tickets"`
	OriginalPrompt  string           `json:"original_prompt"`
}

// CollectionFromDomain maps a domain collection to its response shape.
func CollectionFromDomain(collection *domain.TicketCollection) CollectionResponse {
	tickets := make([]TicketResponse, 0, len(collection.Tickets))
	for _, t := range collection.Tickets {
		tickets = append(tickets, TicketResponse{
			Subject:          t.Subject,
			Body:             t.Body,
			EstimationPoints: t.EstimationPoints,
		})
	}
	return CollectionResponse{
		DocumentID:      collection.DocumentID,
		CreatedDatetime: collection.CreatedDatetime,
		Tickets:         tickets,
		OriginalPrompt:  collection.OriginalPrompt,
	}
}
