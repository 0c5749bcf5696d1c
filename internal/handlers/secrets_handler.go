package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"secretsInspector/internal/k8s"
	"secretsInspector/internal/models"
	"secretsInspector/internal/secrets"
)

// SecretsHandler runs one fetch, filter and render cycle
type SecretsHandler struct {
	Client     k8s.SecretLister
	Renderer   Renderer
	Suppressed models.SuppressionSet
}

// NewSecretsHandler creates a new SecretsHandler
func NewSecretsHandler(client k8s.SecretLister, renderer Renderer, suppressed models.SuppressionSet) *SecretsHandler {
	return &SecretsHandler{
		Client:     client,
		Renderer:   renderer,
		Suppressed: suppressed,
	}
}

// Run lists the secrets of req.Namespace, drops the suppressed and non-matching
// ones and renders the rest. Nothing is rendered when the fetch fails.
func (h *SecretsHandler) Run(ctx context.Context, req models.FilterRequest) error {
	records, err := h.Client.ListSecrets(ctx, req.Namespace)
	if err != nil {
		var notFound *k8s.NamespaceNotFoundError
		var transport *k8s.TransportError
		if errors.As(err, &notFound) || errors.As(err, &transport) {
			return err
		}
		return &k8s.TransportError{Op: "list secrets", Err: err}
	}

	result := models.FilterResult{
		Namespace: req.Namespace,
		Secrets:   secrets.Filter(records, req.Substring, h.Suppressed),
	}
	slog.Debug("filtered secrets",
		"namespace", req.Namespace,
		"substring", req.Substring,
		"fetched", len(records),
		"shown", len(result.Secrets),
	)

	if err := h.Renderer.Render(result); err != nil {
		return fmt.Errorf("failed to render secrets: %w", err)
	}
	return nil
}
