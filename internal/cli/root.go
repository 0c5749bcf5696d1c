// Package cli provides the secrets command.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"secretsInspector/internal/auth"
	"secretsInspector/internal/config"
	"secretsInspector/internal/handlers"
	"secretsInspector/internal/k8s"
	"secretsInspector/internal/logger"
	"secretsInspector/internal/models"
	"secretsInspector/internal/render"
)

// Adding the following variable, so that the command can be tested without a cluster
var newSecretLister = func(cfg *config.Config) (k8s.SecretLister, error) {
	client, err := k8s.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// NewRootCmd creates the secrets command
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secrets <namespace> [substring]",
		Short: "Command line utility to list the secrets of a namespace",
		Long: `secrets lists the secrets of a Kubernetes namespace that a human actually cares about.

TLS certificates, registry credentials and Helm release secrets are hidden unless
--show-all is given. An optional substring narrows the list to secrets whose name
contains it (case-sensitive). Secret values are never read.`,
		Example: `  secrets default
  secrets kube-system token
  secrets -a -o table my-app`,
		Args:          positionalArgs,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetVersionTemplate("secrets {{.Version}}\n")
	cmd.Flags().BoolP("version", "V", false, "Print version information")
	config.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		v, err := config.NewViper(cmd.Flags())
		if err != nil {
			return err
		}
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		return run(cmd, cfg, args)
	}

	return cmd
}

func positionalArgs(_ *cobra.Command, args []string) error {
	switch {
	case len(args) < 1:
		return errors.New("the required argument <namespace> was not provided")
	case len(args) > 2:
		return fmt.Errorf("unexpected argument %q: accepts <namespace> and an optional [substring]", args[2])
	}
	return nil
}

func run(cmd *cobra.Command, cfg *config.Config, args []string) error {
	logger.Initialize(cmd.ErrOrStderr(), cfg.Debug)

	req := models.FilterRequest{Namespace: args[0]}
	if len(args) > 1 {
		req.Substring = args[1]
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if cfg.Token != "" {
		if err := auth.NewTokenInspector().Check(cfg.Token); err != nil {
			return err
		}
	}

	renderer, err := render.New(cfg.Output, cmd.OutOrStdout(), cfg.NoColor)
	if err != nil {
		return err
	}

	lister, err := newSecretLister(cfg)
	if err != nil {
		return err
	}

	return handlers.NewSecretsHandler(lister, renderer, cfg.Suppressed()).Run(cmd.Context(), req)
}
