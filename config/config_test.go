package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Workflow)
	assert.Equal(t, 900000, cfg.ErrorCodeBase)
	assert.Equal(t, "", cfg.LogFile)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pgelog.yaml")
	content := "workflow: pge_dswx\nerror_code_base: 400000\nlog_file: run.log\noutput_file: final.log\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "pge_dswx", cfg.Workflow)
	assert.Equal(t, 400000, cfg.ErrorCodeBase)
	assert.Equal(t, "run.log", cfg.LogFile)
	assert.Equal(t, "final.log", cfg.OutputFile)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PGELOG_WORKFLOW", "pge_from_env")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "pge_from_env", cfg.Workflow)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
