package handlers

import "secretsInspector/internal/models"

// Renderer defines how SecretsHandler prints its result so it can be mocked in tests.
type Renderer interface {
	Render(result models.FilterResult) error
}
