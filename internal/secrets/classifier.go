// Package secrets decides which secrets of a namespace are worth showing.
package secrets

import (
	"strings"

	v1 "k8s.io/api/core/v1"

	"secretsInspector/internal/models"
)

// HelmReleasePrefix is the name prefix Helm 3 uses for its release bookkeeping secrets
const HelmReleasePrefix = "sh.helm.release.v1."

// Classify maps a secret type tag (and, for opaque secrets, its name) to a category.
// The type tag is authoritative: a Helm-looking name only counts for opaque secrets.
func Classify(kind, name string) models.SecretCategory {
	switch v1.SecretType(kind) {
	case v1.SecretTypeTLS:
		return models.CategoryTLSCertificate
	case v1.SecretTypeDockerConfigJson, v1.SecretTypeDockercfg:
		return models.CategoryDockerCredential
	case v1.SecretTypeOpaque, "":
		// the API server defaults an unset type to Opaque
		if strings.HasPrefix(name, HelmReleasePrefix) {
			return models.CategoryHelmRelease
		}
	}
	return models.CategoryOther
}

var kindDescriptions = map[v1.SecretType]string{
	v1.SecretTypeOpaque:              "opaque",
	v1.SecretTypeServiceAccountToken: "service account token",
	v1.SecretTypeDockercfg:           "docker config (legacy)",
	v1.SecretTypeDockerConfigJson:    "docker config",
	v1.SecretTypeBasicAuth:           "basic auth",
	v1.SecretTypeSSHAuth:             "ssh auth",
	v1.SecretTypeTLS:                 "tls",
	v1.SecretTypeBootstrapToken:      "bootstrap token",
}

// DescribeKind returns a human readable form of a secret type tag.
// Unknown tags are returned as-is.
func DescribeKind(kind string) string {
	if kind == "" {
		return kindDescriptions[v1.SecretTypeOpaque]
	}
	if desc, ok := kindDescriptions[v1.SecretType(kind)]; ok {
		return desc
	}
	return kind
}
