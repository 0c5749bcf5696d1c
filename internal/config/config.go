// Package config holds the settings of one invocation. A Config is built once at
// start-up from flags and SECRETS_* environment variables and passed explicitly
// to whatever needs it.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/apimachinery/pkg/util/sets"

	"secretsInspector/internal/models"
	"secretsInspector/internal/render"
)

// EnvPrefix is prepended to every flag name to form its environment variable
const EnvPrefix = "SECRETS"

// Flag and viper keys
const (
	KeyKubeconfig     = "kubeconfig"
	KeyContext        = "context"
	KeyToken          = "token"
	KeyRequestTimeout = "request-timeout"
	KeyShowAll        = "show-all"
	KeyOutput         = "output"
	KeyNoColor        = "no-color"
	KeyDebug          = "debug"
)

type Config struct {
	Kubeconfig     string        // explicit kubeconfig path, empty uses KUBECONFIG / ~/.kube/config
	Context        string        // kubeconfig context override
	Token          string        // bearer token override
	RequestTimeout time.Duration // per-request transport timeout, 0 leaves the client default
	ShowAll        bool          // disable category suppression
	Output         string        // one of render.Formats
	NoColor        bool
	Debug          bool
}

// AddFlags registers the configuration flags on fs
func AddFlags(fs *pflag.FlagSet) {
	fs.String(KeyKubeconfig, "", "Path to the kubeconfig file (defaults to $KUBECONFIG or ~/.kube/config)")
	fs.String(KeyContext, "", "Name of the kubeconfig context to use")
	fs.String(KeyToken, "", "Bearer token for authentication to the API server")
	fs.Duration(KeyRequestTimeout, 0, "Timeout for a single request to the API server (0 means no timeout)")
	fs.BoolP(KeyShowAll, "a", false, "Show all secrets, including TLS, registry and Helm release secrets")
	fs.StringP(KeyOutput, "o", render.FormatText, "Output format ("+strings.Join(render.Formats, ", ")+")")
	fs.Bool(KeyNoColor, false, "Disable colored output")
	fs.Bool(KeyDebug, false, "Enable debug logging")
}

// NewViper returns a viper instance bound to fs and to SECRETS_* environment variables
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v, nil
}

// Load reads a Config out of v and validates it
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Kubeconfig:     v.GetString(KeyKubeconfig),
		Context:        v.GetString(KeyContext),
		Token:          v.GetString(KeyToken),
		RequestTimeout: v.GetDuration(KeyRequestTimeout),
		ShowAll:        v.GetBool(KeyShowAll),
		Output:         strings.ToLower(v.GetString(KeyOutput)),
		NoColor:        v.GetBool(KeyNoColor),
		Debug:          v.GetBool(KeyDebug),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings no invocation could honor
func (c *Config) Validate() error {
	if !render.IsValidFormat(c.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %s", c.Output, strings.Join(render.Formats, ", "))
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("invalid request timeout %s: must not be negative", c.RequestTimeout)
	}
	return nil
}

// Suppressed returns the categories to hide for this invocation
func (c *Config) Suppressed() models.SuppressionSet {
	if c.ShowAll {
		return sets.New[models.SecretCategory]()
	}
	return models.DefaultSuppressionSet()
}
