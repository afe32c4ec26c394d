package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// MockProvider returns canned responses in FIFO order and records every
// request it sees. Grading and screen tests use it in place of a real
// provider.
type MockProvider struct {
	mu    sync.Mutex
	queue []MockResponse
	Calls []Request
}

// MockResponse is a single canned reply. Set Err to simulate a provider
// failure instead of a response.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockVerdicts builds a canned grading response marking each answer
// ok or not, in index order. Keeps grading tests from hand-writing
// verdict JSON.
func MockVerdicts(oks ...bool) MockResponse {
	entries := make([]string, len(oks))
	for i, ok := range oks {
		entries[i] = fmt.Sprintf(`{"index":%d,"ok":%t}`, i, ok)
	}
	payload := `{"answers":[` + strings.Join(entries, ",") + `]}`
	return MockResponse{Content: json.RawMessage(payload)}
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

// Generate pops the next canned response. An empty queue reads as the
// provider being down, which is what retry tests want anyway.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.queue) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}
	next := m.queue[0]
	m.queue = m.queue[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
