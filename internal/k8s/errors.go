package k8s

import (
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// NamespaceNotFoundError is returned when the requested namespace does not exist
type NamespaceNotFoundError struct {
	Namespace string
}

func (e *NamespaceNotFoundError) Error() string {
	return fmt.Sprintf("namespace %q not found. Maybe you're looking at the wrong cluster?", e.Namespace)
}

// TransportError wraps any other failure talking to the API server
// (connectivity, authentication, RBAC).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
	switch {
	case apierrors.IsUnauthorized(e.Err):
		msg += " (check your credentials)"
	case apierrors.IsForbidden(e.Err):
		msg += " (check your RBAC permissions)"
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
