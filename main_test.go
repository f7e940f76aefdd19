package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnnaCarter465/naija-tax/tax"
)

func TestLoadRules(t *testing.T) {
	rules, err := loadRules("")
	require.NoError(t, err)
	assert.Equal(t, tax.DefaultRules(), rules)

	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vat_rate: 0.1\n"), 0o600))

	rules, err = loadRules(path)
	require.NoError(t, err)
	assert.Equal(t, 0.1, rules.VATRate)

	_, err = loadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
