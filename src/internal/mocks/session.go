package mocks

import "sync"

// MockSession is a mock implementation of the session.Provider interface.
//
// If TokenFunc is nil, Token returns the value of the Value field.
type MockSession struct {
	// TokenFunc is called by Token if not nil
	TokenFunc func() string

	// SignOutFunc is called by SignOut if not nil
	SignOutFunc func()

	mu       sync.Mutex
	Value    string
	signOuts int
}

// Token returns the current bearer token.
func (m *MockSession) Token() string {
	if m.TokenFunc != nil {
		return m.TokenFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Value
}

// SetToken replaces the token returned by Token.
func (m *MockSession) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Value = token
}

// SignOut counts the call and delegates to SignOutFunc.
func (m *MockSession) SignOut() {
	m.mu.Lock()
	m.signOuts++
	m.mu.Unlock()

	if m.SignOutFunc != nil {
		m.SignOutFunc()
	}
}

// SignOuts returns how many times SignOut was called.
func (m *MockSession) SignOuts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.signOuts
}
