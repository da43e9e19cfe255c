package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "query-gen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
spec: ./openapi.yaml
outDir: ./src/api
generation:
  hooks:
    query: true
`))
	require.NoError(t, err)

	assert.Equal(t, V5, cfg.Generation.Version)
	assert.Equal(t, "api", cfg.Generation.Namespace)
	assert.Equal(t, OverwriteAlways, cfg.Overwrite)
	assert.True(t, cfg.Generation.Hooks.Query)
	assert.False(t, cfg.Generation.Hooks.Mutation)
	assert.True(t, filepath.IsAbs(cfg.Spec))
	assert.True(t, filepath.IsAbs(cfg.OutDir))
}

func TestLoadKeepsSpecURL(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
spec: https://example.com/openapi.yaml
outDir: ./src/api
`))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/openapi.yaml", cfg.Spec)
}

func TestLoadFullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
spec: ./openapi.yaml
outDir: ./src/api
operations:
  - createOrder
  - GET /orders
generation:
  reactQuery: v4
  namespace: shop
  hooks:
    query: true
    mutation: true
overwrite: missing
`))
	require.NoError(t, err)

	assert.Equal(t, V4, cfg.Generation.Version)
	assert.Equal(t, "shop", cfg.Generation.Namespace)
	assert.Equal(t, OverwriteMissing, cfg.Overwrite)
	assert.Equal(t, []string{"createOrder", "GET /orders"}, cfg.Operations)
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	_, err := Load(writeConfig(t, `
spec: ./openapi.yaml
outDir: ./src/api
generation:
  reactQuery: v2
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reactQuery")

	_, err = Load(writeConfig(t, `
spec: ./openapi.yaml
outDir: ./src/api
overwrite: sometimes
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overwrite")
}

func TestValidateRequiredFields(t *testing.T) {
	_, err := Load(writeConfig(t, `outDir: ./src/api`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spec")

	_, err = Load(writeConfig(t, `spec: ./openapi.yaml`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outDir")
}
