package models

import (
	"fmt"
	"strings"
)

// InvalidNamespaceError is returned when the requested namespace can never exist
// because its name is not a valid DNS-1123 label.
type InvalidNamespaceError struct {
	Namespace string
	Reasons   []string
}

func (e *InvalidNamespaceError) Error() string {
	return fmt.Sprintf("invalid namespace %q: %s", e.Namespace, strings.Join(e.Reasons, "; "))
}
