package k8s

import (
	"fmt"
	"log/slog"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"secretsInspector/internal/config"
)

// Adding the following variables, so that the code can be tested
var (
	inClusterConfig = rest.InClusterConfig
	loadKubeconfig  = kubeconfigFromRules
	newForConfig    = kubernetes.NewForConfig
)

type Client struct {
	ClientSet kubernetes.Interface
}

// NewClient creates a Kubernetes client from cfg. Without an explicit kubeconfig or
// context it first tries the in-cluster config, then falls back to the kubeconfig
// loading rules ($KUBECONFIG, ~/.kube/config).
func NewClient(cfg *config.Config) (*Client, error) {
	restConfig, err := restConfigFor(cfg)
	if err != nil {
		return nil, err
	}
	return NewClientWithConfig(restConfig)
}

// NewClientWithConfig Function to use injected config for testing
func NewClientWithConfig(restConfig *rest.Config) (*Client, error) {
	clientset, err := newForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	return &Client{ClientSet: clientset}, nil
}

func restConfigFor(cfg *config.Config) (*rest.Config, error) {
	var restConfig *rest.Config
	if cfg.Kubeconfig == "" && cfg.Context == "" {
		if inCluster, err := inClusterConfig(); err == nil {
			slog.Debug("using in-cluster config", "host", inCluster.Host)
			restConfig = inCluster
		}
	}

	if restConfig == nil {
		var err error
		restConfig, err = loadKubeconfig(cfg.Kubeconfig, cfg.Context)
		if err != nil {
			return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
		}
		slog.Debug("using kubeconfig", "host", restConfig.Host, "context", cfg.Context)
	}

	if cfg.Token != "" {
		restConfig.BearerToken = cfg.Token
		restConfig.BearerTokenFile = ""
	}
	if cfg.RequestTimeout > 0 {
		restConfig.Timeout = cfg.RequestTimeout
	}
	return restConfig, nil
}

func kubeconfigFromRules(path, context string) (*rest.Config, error) {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if path != "" {
		rules.ExplicitPath = path
	}
	overrides := &clientcmd.ConfigOverrides{CurrentContext: context}
	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, overrides).ClientConfig()
}
