package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/midbel/canvaschart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIdent(t *testing.T) {
	assert.Equal(t, "detections", getIdent("/var/data/detections.csv"))
	assert.Equal(t, "stats", getIdent("stats.json.bak"))
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "status.csv")
	require.NoError(t, os.WriteFile(in, []byte("service,up\nids,1\nhoneypot,1\nosint,0\n"), 0o644))

	cfg := canvaschart.DefaultConfig()
	cfg.Type = canvaschart.KindBar
	for _, format := range []string{"png", "svg"} {
		out := filepath.Join(dir, "status."+format)
		require.NoError(t, renderFile(in, out, format, cfg))
		assert.FileExists(t, out)
	}
}
