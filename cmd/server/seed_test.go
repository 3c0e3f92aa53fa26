package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blues/adagency/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeedContentExample(t *testing.T) {
	content, err := loadSeedContent(filepath.Join("..", "..", "content.yaml"))
	require.NoError(t, err)

	assert.NotEmpty(t, content.Settings["phone"])
	require.NotEmpty(t, content.Services)
	assert.Equal(t, "outdoor", content.Services[0].Slug)
	assert.Equal(t, model.IconBillboard, content.Services[0].Icon)
	assert.NotEmpty(t, content.Team)
	assert.Equal(t, 5, content.Testimonials[0].Rating)
}

func TestLoadSeedContentErrors(t *testing.T) {
	_, err := loadSeedContent(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read seed file")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("services: [\n"), 0o644))
	_, err = loadSeedContent(bad)
	assert.ErrorContains(t, err, "parse seed file")
}
