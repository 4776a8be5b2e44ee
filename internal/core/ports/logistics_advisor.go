package ports

import "context"

// OrderLoad is the projection of one work order sent to the advisor.
type OrderLoad struct {
	Number    string   `json:"number"`
	Addresses []string `json:"addresses"`
	Load      int      `json:"load"`
}

// LogisticsAdvisor asks an external text generation service for a short
// routing advice. The returned text is opaque.
type LogisticsAdvisor interface {
	Advise(ctx context.Context, orders []OrderLoad) (string, error)
}
