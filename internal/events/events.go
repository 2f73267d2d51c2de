package events

import "context"

// Event types
const (
	EventPlanUpdated = "plan_updated"
	EventPlanCleared = "plan_cleared"
)

// StreamPlan is the pub/sub channel dashboard sessions listen on.
const StreamPlan = "events:plan"

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
