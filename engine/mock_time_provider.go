package engine

import (
	"sync"
	"time"
)

// MockEpoch is the start time of every mock clock
var MockEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// MockTimeProvider is a manually stepped clock for driving explosion and banner expiry
// Time only moves forward, through Advance
type MockTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockTimeProvider creates a mock clock at MockEpoch
func NewMockTimeProvider() *MockTimeProvider {
	return &MockTimeProvider{now: MockEpoch}
}

// Now returns the mock time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance steps the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Elapsed returns the time advanced since MockEpoch
func (m *MockTimeProvider) Elapsed() time.Duration {
	return m.Now().Sub(MockEpoch)
}
