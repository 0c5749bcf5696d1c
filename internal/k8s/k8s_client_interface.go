package k8s

import (
	"context"

	"secretsInspector/internal/models"
)

// SecretLister defines the method used by SecretsHandler so it can be mocked in tests.
// Errors are either *NamespaceNotFoundError or *TransportError.
type SecretLister interface {
	ListSecrets(ctx context.Context, namespace string) ([]models.SecretRecord, error)
}

var _ SecretLister = (*Client)(nil)
