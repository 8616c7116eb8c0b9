package llm

import (
	"context"
	"sync"
)

// MockModel is a scripted LanguageModel for tests. Responses are returned
// in order; the last one repeats once the script is exhausted. Errors can
// be interleaved by scripting a MockTurn with Err set.
type MockModel struct {
	mu    sync.Mutex
	turns []MockTurn
	next  int

	// Requests records every request received, in order.
	Requests []CompletionRequest
}

// MockTurn is one scripted exchange.
type MockTurn struct {
	Content string
	Err     error
}

// NewMockModel creates a MockModel with the given script.
func NewMockModel(turns ...MockTurn) *MockModel {
	return &MockModel{turns: turns}
}

// Respond appends a successful turn to the script.
func (m *MockModel) Respond(content string) *MockModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = append(m.turns, MockTurn{Content: content})
	return m
}

// Fail appends a failing turn to the script.
func (m *MockModel) Fail(err error) *MockModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = append(m.turns, MockTurn{Err: err})
	return m
}

// Complete implements LanguageModel.
func (m *MockModel) Complete(_ context.Context, req CompletionRequest) (*CompletionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, req)

	if len(m.turns) == 0 {
		return &CompletionResponse{Content: "{}"}, nil
	}

	turn := m.turns[min(m.next, len(m.turns)-1)]
	m.next++

	if turn.Err != nil {
		return nil, turn.Err
	}
	return &CompletionResponse{Content: turn.Content, Model: req.Model}, nil
}

// CallCount returns how many requests the mock has served.
func (m *MockModel) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}
