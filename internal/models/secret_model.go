package models

import (
	"errors"

	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/apimachinery/pkg/util/validation"
)

// SecretRecord is one secret as returned by the cluster. Only the name and the
// type tag are kept, the payload is never read.
type SecretRecord struct {
	Name string `json:"name"` // Secret name, unique within a namespace
	Kind string `json:"type"` // Type tag, e.g. "Opaque" or "kubernetes.io/tls"
}

// SecretCategory is the classification a secret gets from its type tag (and name).
type SecretCategory int

const (
	// CategoryOther is the catch-all, never suppressed by default
	CategoryOther SecretCategory = iota
	CategoryTLSCertificate
	CategoryDockerCredential
	CategoryHelmRelease
)

func (c SecretCategory) String() string {
	switch c {
	case CategoryTLSCertificate:
		return "TLSCertificate"
	case CategoryDockerCredential:
		return "DockerCredential"
	case CategoryHelmRelease:
		return "HelmRelease"
	default:
		return "Other"
	}
}

// SuppressionSet holds the categories that are never shown
type SuppressionSet = sets.Set[SecretCategory]

// DefaultSuppressionSet returns the categories hidden unless --show-all is given
func DefaultSuppressionSet() SuppressionSet {
	return sets.New(CategoryTLSCertificate, CategoryDockerCredential, CategoryHelmRelease)
}

// FilterRequest is the validated input of one invocation
type FilterRequest struct {
	Namespace string
	Substring string // empty matches every name
}

// Validate checks that the namespace is a well-formed namespace name
func (r FilterRequest) Validate() error {
	if r.Namespace == "" {
		return errors.New("namespace must not be empty")
	}
	if msgs := validation.IsDNS1123Label(r.Namespace); len(msgs) > 0 {
		return &InvalidNamespaceError{Namespace: r.Namespace, Reasons: msgs}
	}
	return nil
}

// FilterResult is the display-ready output: the surviving secrets of a namespace sorted by name
type FilterResult struct {
	Namespace string         `json:"namespace"`
	Secrets   []SecretRecord `json:"secrets"`
}

// Empty reports whether no secret survived filtering
func (r FilterResult) Empty() bool {
	return len(r.Secrets) == 0
}
