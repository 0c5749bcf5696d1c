package k8s

import (
	"context"
	"log/slog"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"secretsInspector/internal/models"
)

// listPageSize bounds a single List call on namespaces holding many secrets
const listPageSize = 500

// ListSecrets returns the name and type of every secret in namespace.
// Listing secrets of a missing namespace succeeds with an empty list on the API
// server, so the namespace is looked up first.
func (c *Client) ListSecrets(ctx context.Context, namespace string) ([]models.SecretRecord, error) {
	if err := c.checkNamespace(ctx, namespace); err != nil {
		return nil, err
	}

	var records []models.SecretRecord
	opts := metav1.ListOptions{Limit: listPageSize}
	for {
		list, err := c.ClientSet.CoreV1().Secrets(namespace).List(ctx, opts)
		if err != nil {
			if apierrors.IsNotFound(err) {
				return nil, &NamespaceNotFoundError{Namespace: namespace}
			}
			return nil, &TransportError{Op: "list secrets", Err: err}
		}

		for _, s := range list.Items {
			records = append(records, models.SecretRecord{
				Name: s.Name,
				Kind: string(s.Type),
			})
		}

		if list.Continue == "" {
			break
		}
		opts.Continue = list.Continue
	}

	slog.Debug("listed secrets", "namespace", namespace, "count", len(records))
	return records, nil
}

// checkNamespace fails with NamespaceNotFoundError when namespace does not exist.
// Callers allowed to list secrets are not always allowed to read namespaces, so a
// Forbidden answer lets the listing go ahead.
func (c *Client) checkNamespace(ctx context.Context, namespace string) error {
	_, err := c.ClientSet.CoreV1().Namespaces().Get(ctx, namespace, metav1.GetOptions{})
	switch {
	case err == nil:
		return nil
	case apierrors.IsNotFound(err):
		return &NamespaceNotFoundError{Namespace: namespace}
	case apierrors.IsForbidden(err):
		slog.Debug("not allowed to read namespace, listing secrets anyway", "namespace", namespace)
		return nil
	default:
		return &TransportError{Op: "get namespace", Err: err}
	}
}
