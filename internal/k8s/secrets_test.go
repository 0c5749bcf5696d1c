package k8s

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"

	"secretsInspector/internal/models"
)

func namespace(name string) *v1.Namespace {
	return &v1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: name}}
}

func secret(namespace, name string, kind v1.SecretType) *v1.Secret {
	return &v1.Secret{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
		Type:       kind,
		Data:       map[string][]byte{"key": []byte("value")},
	}
}

// Testing ListSecrets against a fake clientset
func TestListSecrets(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		namespace("fakespace"),
		namespace("empty"),
		secret("fakespace", "app-token", v1.SecretTypeOpaque),
		secret("fakespace", "registry-cred", v1.SecretTypeDockerConfigJson),
		secret("fakespace", "site-tls", v1.SecretTypeTLS),
		secret("other", "elsewhere", v1.SecretTypeOpaque),
	)
	client := &Client{ClientSet: clientset}

	tests := []struct {
		name        string
		namespace   string
		expected    []models.SecretRecord
		expectError bool
	}{
		{
			name:      "lists every secret with its type",
			namespace: "fakespace",
			expected: []models.SecretRecord{
				{Name: "app-token", Kind: "Opaque"},
				{Name: "registry-cred", Kind: "kubernetes.io/dockerconfigjson"},
				{Name: "site-tls", Kind: "kubernetes.io/tls"},
			},
		},
		{
			name:      "existing namespace without secrets",
			namespace: "empty",
			expected:  nil,
		},
		{
			name:        "missing namespace",
			namespace:   "bob",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := client.ListSecrets(context.Background(), tt.namespace)
			if tt.expectError {
				var notFound *NamespaceNotFoundError
				require.ErrorAs(t, err, &notFound)
				assert.Equal(t, tt.namespace, notFound.Namespace)
				assert.Contains(t, err.Error(), `"bob"`)
				assert.Contains(t, err.Error(), "not found")
				return
			}
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.expected, records)
		})
	}
}

func TestListSecrets_Errors(t *testing.T) {
	forbidden := apierrors.NewForbidden(schema.GroupResource{Resource: "namespaces"}, "fakespace", errors.New("rbac says no"))

	tests := []struct {
		name           string
		verb           string
		resource       string
		err            error
		expectRecords  int
		expectNotFound bool
		expectMessage  string
	}{
		{
			name:          "namespace get forbidden still lists",
			verb:          "get",
			resource:      "namespaces",
			err:           forbidden,
			expectRecords: 1,
		},
		{
			name:          "namespace get transport failure",
			verb:          "get",
			resource:      "namespaces",
			err:           errors.New("connection refused"),
			expectMessage: "failed to get namespace: connection refused",
		},
		{
			name:          "secret list transport failure",
			verb:          "list",
			resource:      "secrets",
			err:           errors.New("connection refused"),
			expectMessage: "failed to list secrets: connection refused",
		},
		{
			name:          "secret list forbidden",
			verb:          "list",
			resource:      "secrets",
			err:           apierrors.NewForbidden(schema.GroupResource{Resource: "secrets"}, "", errors.New("rbac says no")),
			expectMessage: "check your RBAC permissions",
		},
		{
			name:          "secret list unauthorized",
			verb:          "list",
			resource:      "secrets",
			err:           apierrors.NewUnauthorized("bad token"),
			expectMessage: "check your credentials",
		},
		{
			name:           "secret list not found",
			verb:           "list",
			resource:       "secrets",
			err:            apierrors.NewNotFound(schema.GroupResource{Resource: "namespaces"}, "fakespace"),
			expectNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clientset := fake.NewSimpleClientset(
				namespace("fakespace"),
				secret("fakespace", "app-token", v1.SecretTypeOpaque),
			)
			clientset.PrependReactor(tt.verb, tt.resource, func(k8stesting.Action) (bool, runtime.Object, error) {
				return true, nil, tt.err
			})
			client := &Client{ClientSet: clientset}

			records, err := client.ListSecrets(context.Background(), "fakespace")

			switch {
			case tt.expectNotFound:
				var notFound *NamespaceNotFoundError
				assert.ErrorAs(t, err, &notFound)
			case tt.expectMessage != "":
				var transport *TransportError
				require.ErrorAs(t, err, &transport)
				assert.Contains(t, err.Error(), tt.expectMessage)
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, records)
			default:
				require.NoError(t, err)
				assert.Len(t, records, tt.expectRecords)
			}
		})
	}
}

func TestListSecrets_FollowsContinueToken(t *testing.T) {
	clientset := fake.NewSimpleClientset(namespace("paged"))

	calls := 0
	clientset.PrependReactor("list", "secrets", func(action k8stesting.Action) (bool, runtime.Object, error) {
		calls++
		opts := action.(k8stesting.ListActionImpl).GetListOptions()
		assert.EqualValues(t, listPageSize, opts.Limit)

		if opts.Continue == "" {
			return true, &v1.SecretList{
				ListMeta: metav1.ListMeta{Continue: "page-2"},
				Items:    []v1.Secret{*secret("paged", "first", v1.SecretTypeOpaque)},
			}, nil
		}
		assert.Equal(t, "page-2", opts.Continue)
		return true, &v1.SecretList{
			Items: []v1.Secret{*secret("paged", "second", v1.SecretTypeTLS)},
		}, nil
	})
	client := &Client{ClientSet: clientset}

	records, err := client.ListSecrets(context.Background(), "paged")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []models.SecretRecord{
		{Name: "first", Kind: "Opaque"},
		{Name: "second", Kind: "kubernetes.io/tls"},
	}, records)
}
