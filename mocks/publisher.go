package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CoffeeGarden_Go/internal/event"
)

// testingT is what the constructors need from *testing.T
type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockEventPublisher implements the services' EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a mock that asserts its expectations on cleanup
func NewMockEventPublisher(t testingT) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEventPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	m.Called(ctx, evt)
}

// Published returns the events passed to PublishWithRetry, in call order
func (m *MockEventPublisher) Published() []event.Event {
	var out []event.Event
	for _, c := range m.Calls {
		if c.Method == "PublishWithRetry" {
			out = append(out, c.Arguments.Get(1).(event.Event))
		}
	}
	return out
}
