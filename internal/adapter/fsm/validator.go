package fsm

import (
	"context"
	"errors"

	loopfsm "github.com/looplab/fsm"

	"github.com/neomorfeo/leaseflow/internal/domain"
)

// Compile-time checks: the validators implement their domain ports.
var (
	_ domain.PropertyTransitionValidator = (*PropertyValidator)(nil)
	_ domain.RequestTransitionValidator  = (*RequestValidator)(nil)
)

// transition is the event/src/dst triple both domain tables reduce to.
type transition struct {
	event string
	src   string
	dst   string
}

// buildEvents converts a transition table into looplab/fsm EventDesc format.
// It consolidates transitions with the same event+destination into a single
// EventDesc with multiple source states (e.g., the request "reject" event
// from both REQUESTED and APPROVED lands in REJECTED).
func buildEvents(transitions []transition) []loopfsm.EventDesc {
	type key struct {
		event string
		dst   string
	}
	grouped := make(map[key][]string)
	order := make([]key, 0)

	for _, t := range transitions {
		k := key{event: t.event, dst: t.dst}
		if _, exists := grouped[k]; !exists {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], t.src)
	}

	out := make([]loopfsm.EventDesc, 0, len(order))
	for _, k := range order {
		out = append(out, loopfsm.EventDesc{
			Name: k.event,
			Src:  grouped[k],
			Dst:  k.dst,
		})
	}
	return out
}

// apply runs a single event through a short-lived FSM initialized with the
// current state. looplab/fsm is stateful (it tracks the current state
// internally), so an instance per call keeps the validator side-effect free.
// The second return reports whether the refusal was a transition-rule
// violation, as opposed to an infrastructure failure.
func apply(ctx context.Context, events []loopfsm.EventDesc, current, event string) (string, bool, error) {
	machine := loopfsm.NewFSM(current, events, nil)

	if err := machine.Event(ctx, event); err != nil {
		var invalidEvent loopfsm.InvalidEventError
		var noTransition loopfsm.NoTransitionError
		if errors.As(err, &invalidEvent) || errors.As(err, &noTransition) {
			return "", true, err
		}
		return "", false, err
	}

	return machine.Current(), false, nil
}

var propertyEvents = buildEvents(propertyTransitions())

func propertyTransitions() []transition {
	out := make([]transition, 0, len(domain.PropertyTransitions))
	for _, t := range domain.PropertyTransitions {
		out = append(out, transition{event: string(t.Event), src: string(t.Src), dst: string(t.Dst)})
	}
	return out
}

// PropertyValidator implements domain.PropertyTransitionValidator using
// looplab/fsm over domain.PropertyTransitions.
type PropertyValidator struct{}

// NewPropertyValidator creates an FSM-backed property transition validator.
func NewPropertyValidator() *PropertyValidator {
	return &PropertyValidator{}
}

// Apply checks if the given event is valid from the current status and
// returns the destination status. Returns a domain.InvalidPropertyStatusError
// if the transition is not allowed.
func (v *PropertyValidator) Apply(ctx context.Context, current domain.PropertyStatus, event domain.PropertyEvent) (domain.PropertyStatus, error) {
	next, refused, err := apply(ctx, propertyEvents, string(current), string(event))
	if err != nil {
		if refused {
			return "", &domain.InvalidPropertyStatusError{Current: current, Event: event}
		}
		return "", err
	}
	return domain.PropertyStatus(next), nil
}

var requestEvents = buildEvents(requestTransitions())

func requestTransitions() []transition {
	out := make([]transition, 0, len(domain.RequestTransitions))
	for _, t := range domain.RequestTransitions {
		out = append(out, transition{event: string(t.Event), src: string(t.Src), dst: string(t.Dst)})
	}
	return out
}

// RequestValidator implements domain.RequestTransitionValidator using
// looplab/fsm over domain.RequestTransitions.
type RequestValidator struct{}

// NewRequestValidator creates an FSM-backed request transition validator.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{}
}

// Apply checks if the given event is valid from the current status and
// returns the destination status. Returns a domain.InvalidRequestStatusError
// if the transition is not allowed.
func (v *RequestValidator) Apply(ctx context.Context, current domain.RequestStatus, event domain.RequestEvent) (domain.RequestStatus, error) {
	next, refused, err := apply(ctx, requestEvents, string(current), string(event))
	if err != nil {
		if refused {
			return "", &domain.InvalidRequestStatusError{Current: current, Event: event}
		}
		return "", err
	}
	return domain.RequestStatus(next), nil
}
