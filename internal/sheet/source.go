package sheet

import (
	"context"

	"github.com/osse101/GuildRaffle_Go/internal/domain"
	"github.com/osse101/GuildRaffle_Go/internal/logger"
)

// Source combines the client and parser into the raffle's request source.
type Source struct {
	client *Client
	parser *Parser
}

// NewSource creates a request source backed by the sheet export.
func NewSource(client *Client, parser *Parser) *Source {
	return &Source{client: client, parser: parser}
}

// Requests fetches the latest responses and normalizes them.
func (s *Source) Requests(ctx context.Context) (domain.RequestSet, error) {
	rows, err := s.client.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.parser.Parse(rows)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgParsedParticipants, "participants", len(requests))
	return requests, nil
}
