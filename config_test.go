package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "datasets/Remuneracao_docentes_Nordeste_2020_Att.xlsx", cfg.InputFile)
	assert.Equal(t, filepath.Join("datasets", "dados_remuneracao_tratados_v2.xlsx"), cfg.OutputPath())
	assert.Equal(t, 8, cfg.SkipRows)
	assert.Empty(t, cfg.Sheet)
	assert.Equal(t, defaultColumns, cfg.Columns)
	assert.False(t, cfg.CSVPackage)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("INPUT_FILE", "/data/in.xlsx")
	t.Setenv("OUTPUT_FOLDER", "/data/out")
	t.Setenv("OUTPUT_FILE", "relatorio.xlsx")
	t.Setenv("SKIP_ROWS", "3")
	t.Setenv("SHEET", "Tabela 1")
	t.Setenv("CSV_PACKAGE", "true")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/data/in.xlsx", cfg.InputFile)
	assert.Equal(t, "/data/out/relatorio.xlsx", cfg.OutputPath())
	assert.Equal(t, 3, cfg.SkipRows)
	assert.Equal(t, "Tabela 1", cfg.Sheet)
	assert.True(t, cfg.CSVPackage)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
skip_rows: 0
sheet: Dados
columns: [a, b, c, d, e, f, g, h, i, j, k, l, m, n, o]
`), 0644))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.SkipRows)
	assert.Equal(t, "Dados", cfg.Sheet)
	assert.Len(t, cfg.Columns, 15)
	assert.Equal(t, "a", cfg.Columns[0])
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		yaml string
	}{
		{name: "log level", env: map[string]string{"LOG_LEVEL": "loud"}},
		{name: "negative skip", env: map[string]string{"SKIP_ROWS": "-1"}},
		{name: "skip not a number", env: map[string]string{"SKIP_ROWS": "oito"}},
		{name: "too few columns", yaml: "columns: [a, b, c]"},
		{name: "blank column", yaml: "columns: [a, b, c, d, e, f, g, h, i, j, k, l, m, n, '']"},
		{name: "missing file", env: map[string]string{"CONFIG_FILE": "/nonexistent/config.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if tt.yaml != "" {
				path := filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))
				t.Setenv("CONFIG_FILE", path)
			}
			_, err := loadConfig()
			assert.Error(t, err)
		})
	}
}
