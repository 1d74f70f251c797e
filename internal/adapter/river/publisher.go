package river

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"

	"github.com/neomorfeo/leaseflow/internal/domain"
)

// Compile-time check: Publisher implements domain.EventPublisher.
var _ domain.EventPublisher = (*Publisher)(nil)

// DealJobArgs carries the data needed to process a deal event
// asynchronously. River serializes this as JSON into its job queue table.
// The payload identifiers are snapshotted at publish time, so the worker
// never needs to query the database.
type DealJobArgs struct {
	Event      string `json:"event"`
	PropertyID int64  `json:"property_id"`
	RequestID  int64  `json:"request_id,omitempty"`
	ContractID int64  `json:"contract_id,omitempty"`
	ActorID    int64  `json:"actor_id,omitempty"`
}

// Kind returns the unique job type identifier used by River's job routing.
func (DealJobArgs) Kind() string { return "deal.event" }

// Client is the River client type parameterized for SQLite (*sql.Tx).
type Client = river.Client[*sql.Tx]

// Publisher implements domain.EventPublisher by enqueuing River jobs.
type Publisher struct {
	client *Client
}

// NewPublisher creates a publisher backed by the given River client.
func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

// Publish enqueues a deal event as an async job in River.
func (p *Publisher) Publish(ctx context.Context, event domain.DealEvent, payload domain.DealEventPayload) error {
	_, err := p.client.Insert(ctx, DealJobArgs{
		Event:      string(event),
		PropertyID: payload.PropertyID,
		RequestID:  payload.RequestID,
		ContractID: payload.ContractID,
		ActorID:    payload.ActorID,
	}, nil)
	if err != nil {
		return fmt.Errorf("enqueuing deal event job: %w", err)
	}
	return nil
}
