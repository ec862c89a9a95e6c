package eventbus

import (
	"context"
	"errors"
	"testing"

	"go-shop/pkg/logger"
)

type testEvent struct {
	name string
}

func (e testEvent) EventName() string { return e.name }

func TestBus_DispatchesInRegistrationOrder(t *testing.T) {
	bus := New(logger.New("test", "error"))

	var calls []string
	bus.Subscribe("thing.happened", func(ctx context.Context, event Event) error {
		calls = append(calls, "first")
		return nil
	})
	bus.Subscribe("thing.happened", func(ctx context.Context, event Event) error {
		calls = append(calls, "second")
		return nil
	})
	bus.Subscribe("other.thing", func(ctx context.Context, event Event) error {
		calls = append(calls, "other")
		return nil
	})

	if err := bus.Publish(context.Background(), testEvent{name: "thing.happened"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("expected [first second], got %v", calls)
	}
}

func TestBus_PublishReturnsAfterAllHandlers(t *testing.T) {
	bus := New(logger.New("test", "error"))

	done := false
	bus.Subscribe("thing.happened", func(ctx context.Context, event Event) error {
		done = true
		return nil
	})

	// Dispatch is synchronous: the handler runs on this goroutine
	// before Publish returns.
	if err := bus.Publish(context.Background(), testEvent{name: "thing.happened"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !done {
		t.Error("handler had not run when Publish returned")
	}
}

func TestBus_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := New(logger.New("test", "error"))

	var calls []string
	bus.Subscribe("thing.happened", func(ctx context.Context, event Event) error {
		calls = append(calls, "failing")
		return errors.New("boom")
	})
	bus.Subscribe("thing.happened", func(ctx context.Context, event Event) error {
		calls = append(calls, "after")
		return nil
	})

	if err := bus.Publish(context.Background(), testEvent{name: "thing.happened"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(calls) != 2 {
		t.Errorf("expected both handlers to run, got %v", calls)
	}
}

func TestBus_NoHandlersIsNoop(t *testing.T) {
	bus := New(logger.New("test", "error"))

	if err := bus.Publish(context.Background(), testEvent{name: "nobody.cares"}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}
