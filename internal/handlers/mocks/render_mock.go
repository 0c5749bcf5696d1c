package mocks

import "secretsInspector/internal/models"

// MockRenderer records what it was asked to render.
type MockRenderer struct {
	RenderCalled bool
	Rendered     []models.FilterResult
	RenderErr    error
}

func (m *MockRenderer) Render(result models.FilterResult) error {
	m.RenderCalled = true
	if m.RenderErr != nil {
		return m.RenderErr
	}
	m.Rendered = append(m.Rendered, result)
	return nil
}
