package vision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct{ name string }

func (p stubProvider) Name() string { return p.name }

func (p stubProvider) Analyze(_ context.Context, _ Input) (Result, error) {
	return Result{ProviderName: p.name}, nil
}

func TestRegistryRegisterAndResolve(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(stubProvider{name: "tesseract"}))
	require.NoError(t, r.Register(stubProvider{name: "openai"}))

	p, err := r.Resolve("openai")
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())
}

func TestRegistryDuplicateName(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(stubProvider{name: "tesseract"}))
	err := r.Register(stubProvider{name: "tesseract"})
	assert.ErrorContains(t, err, "already registered")
}

func TestRegistryResolveUnknownListsNames(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(stubProvider{name: "openai"}))
	require.NoError(t, r.Register(stubProvider{name: "tesseract"}))

	_, err := r.Resolve("gemini")
	require.Error(t, err)
	assert.ErrorContains(t, err, `"gemini" not registered`)
	assert.ErrorContains(t, err, "openai")
	assert.ErrorContains(t, err, "tesseract")
}
