package mocks

import (
	"context"

	"secretsInspector/internal/k8s"
	"secretsInspector/internal/models"
)

// MockSecretLister implements the k8s.SecretLister interface for tests.
type MockSecretLister struct {
	// call flags for assertions
	ListSecretsCalled bool
	LastNamespace     string

	// forceable error (set in tests)
	ListErr error

	// Key - namespace, a missing key means the namespace does not exist
	Namespaces map[string][]models.SecretRecord
}

func NewMockSecretLister() *MockSecretLister {
	return &MockSecretLister{
		Namespaces: make(map[string][]models.SecretRecord),
	}
}

// AddNamespace registers a namespace holding the given secrets
func (m *MockSecretLister) AddNamespace(namespace string, records ...models.SecretRecord) {
	m.Namespaces[namespace] = append([]models.SecretRecord{}, records...)
}

// ListSecrets simulates listing the secrets of a namespace.
func (m *MockSecretLister) ListSecrets(_ context.Context, namespace string) ([]models.SecretRecord, error) {
	m.ListSecretsCalled = true
	m.LastNamespace = namespace
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	records, ok := m.Namespaces[namespace]
	if !ok {
		return nil, &k8s.NamespaceNotFoundError{Namespace: namespace}
	}
	return append([]models.SecretRecord(nil), records...), nil
}
