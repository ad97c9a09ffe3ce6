package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeed(t *testing.T) {
	path := writeSeed(t, `
languages:
  - id: en-US
    name: English (US)
    code: en
voices:
  - id: aria
    name: Aria
    languageId: en-US
    gender: female
prompts:
  - id: support
    name: Customer support
    content: |
      You are a helpful support agent.
models:
  - id: gpt-4o
    name: GPT-4o
    provider: openai
`)

	s, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, s.Languages, 1)
	assert.Equal(t, "en", s.Languages[0].Code)
	assert.Equal(t, "en-US", s.Voices[0].LanguageID)
	assert.Equal(t, "You are a helpful support agent.\n", s.Prompts[0].Content)
	assert.Equal(t, "openai", s.Models[0].Provider)
}

func TestLoadSeedErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"missing id", "voices:\n  - name: Aria\n", "voices[0]: id and name are required"},
		{"missing name", "models:\n  - id: gpt-4o\n", "models[0]: id and name are required"},
		{"bad yaml", "languages: [", "parse seed file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSeed(writeSeed(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := LoadSeed(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
