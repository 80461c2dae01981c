package collector

import (
	"context"

	"QuoteJournal/internal/model"
)

// maxBodyInError bounds the upstream body quoted in error messages.
const maxBodyInError = 200

func truncateBody(body string) string {
	if len(body) <= maxBodyInError {
		return body
	}
	return body[:maxBodyInError] + "...(truncated)"
}

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchLatestSession returns the most recent one-day trading session for symbol.
	FetchLatestSession(ctx context.Context, symbol string) (*model.Session, error)
	Name() string
}
