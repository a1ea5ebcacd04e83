package testutil

import (
	"context"
	"sync"

	"magicchat/model"
)

// ExchangeCall records the arguments of one Exchange call.
type ExchangeCall struct {
	UserText string
	History  []model.Message
}

// MockExchanger implements model.Exchanger for testing
type MockExchanger struct {
	// Configurable responses
	ExchangeFunc func(ctx context.Context, userText string, history []model.Message) (string, error)
	PingFunc     func(ctx context.Context) error

	mu       sync.Mutex
	calls    []ExchangeCall
	endpoint string
}

// NewMockExchanger creates a mock exchanger with default implementations
func NewMockExchanger() *MockExchanger {
	mock := &MockExchanger{
		endpoint: "http://mock.invalid/run",
	}
	mock.ExchangeFunc = mock.defaultExchange
	mock.PingFunc = mock.defaultPing
	return mock
}

// NewReplyingExchanger always answers with reply.
func NewReplyingExchanger(reply string) *MockExchanger {
	mock := NewMockExchanger()
	mock.ExchangeFunc = func(ctx context.Context, userText string, history []model.Message) (string, error) {
		return reply, nil
	}
	return mock
}

// NewFailingExchanger always fails with err.
func NewFailingExchanger(err error) *MockExchanger {
	mock := NewMockExchanger()
	mock.ExchangeFunc = func(ctx context.Context, userText string, history []model.Message) (string, error) {
		return "", err
	}
	return mock
}

func (m *MockExchanger) defaultExchange(ctx context.Context, userText string, history []model.Message) (string, error) {
	// Default: echo back a mock response
	return "Mock response", nil
}

func (m *MockExchanger) defaultPing(ctx context.Context) error {
	return nil
}

func (m *MockExchanger) Exchange(ctx context.Context, userText string, history []model.Message) (string, error) {
	m.mu.Lock()
	snapshot := make([]model.Message, len(history))
	copy(snapshot, history)
	m.calls = append(m.calls, ExchangeCall{UserText: userText, History: snapshot})
	m.mu.Unlock()

	return m.ExchangeFunc(ctx, userText, history)
}

func (m *MockExchanger) Endpoint() string {
	return m.endpoint
}

func (m *MockExchanger) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}

// Calls returns every recorded Exchange call, oldest first.
func (m *MockExchanger) Calls() []ExchangeCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ExchangeCall, len(m.calls))
	copy(out, m.calls)
	return out
}

func (m *MockExchanger) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
