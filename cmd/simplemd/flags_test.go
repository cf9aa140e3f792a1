package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    outputMode
		inputs  []string
		wantErr error
	}{
		{name: "default html", args: []string{"simplemd", "a.md"}, want: modeHTML, inputs: []string{"a.md"}},
		{name: "styled", args: []string{"simplemd", "--styled", "a.md", "b.md"}, want: modeStyled, inputs: []string{"a.md", "b.md"}},
		{name: "png", args: []string{"simplemd", "--png", "-o", "out.png", "a.md"}, want: modePNG, inputs: []string{"a.md"}},
		{name: "tags from stdin", args: []string{"simplemd", "--tags"}, want: modeTags},
		{name: "compare", args: []string{"simplemd", "--compare", "a.md"}, want: modeCompare, inputs: []string{"a.md"}},
		{name: "two modes", args: []string{"simplemd", "--png", "--tags"}, wantErr: ErrConflictingModes},
		{name: "negative workers", args: []string{"simplemd", "-w", "-1"}, wantErr: ErrNegativeWorkers},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseFlags(tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.mode)
			assert.Equal(t, tt.inputs, got.inputs)
		})
	}
}

func TestParseFlags_Unknown(t *testing.T) {
	t.Parallel()

	_, err := parseFlags([]string{"simplemd", "--nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output")
}

func TestParseFlags_Values(t *testing.T) {
	t.Parallel()

	got, err := parseFlags([]string{"simplemd", "-o", "out", "-c", "cfg.yaml", "-w", "3", "--normalize", "x.md"})
	require.NoError(t, err)
	assert.Equal(t, "out", got.output)
	assert.Equal(t, "cfg.yaml", got.config)
	assert.Equal(t, 3, got.workers)
	assert.True(t, got.normalize)
}
