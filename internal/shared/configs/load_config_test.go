package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yml")
	require.NoError(t, err)
	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	path := writeConfigFile(t, `log:
  level: debug
report:
  table_name: data-cas-random
  sheet_name: cas
file_storage:
  root_dir: ./data
output:
  write_summary: true
  overwrite: false
metrics:
  textfile_path: ./data/bench.prom
server:
  port: 9090
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "data-cas-random", cfg.Report.TableName)
	assert.Equal(t, "cas", cfg.Report.SheetName)
	assert.Equal(t, "./data", cfg.FileStorage.RootDir)
	assert.True(t, cfg.Output.WriteSummary)
	assert.False(t, cfg.Output.Overwrite)
	assert.Equal(t, "./data/bench.prom", cfg.Metrics.TextfilePath)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, DefaultTableName, cfg.Report.TableName)
	assert.Equal(t, DefaultSheetName, cfg.Report.SheetName)
	assert.Equal(t, ".", cfg.FileStorage.RootDir)
	assert.False(t, cfg.Output.WriteSummary)
	assert.True(t, cfg.Output.Overwrite)
	assert.Empty(t, cfg.Metrics.TextfilePath)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("BENCHTABLE_REPORT_TABLE_NAME", "data-write-sequential")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "data-write-sequential", cfg.Report.TableName)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig("./does-not-exist.yml")
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		expectedField string
	}{
		{
			name: "invalid log level",
			content: `log:
  level: loud
`,
			expectedField: "log.level (loglevel)",
		},
		{
			name: "table name with path separator",
			content: `report:
  table_name: ../escape
`,
			expectedField: "report.tablename (excludesall=",
		},
		{
			name: "sheet name too long",
			content: `report:
  sheet_name: a-sheet-name-that-is-way-too-long
`,
			expectedField: "report.sheetname (sheetname)",
		},
		{
			name: "port out of range",
			content: `server:
  port: 70000
`,
			expectedField: "server.port (max=65535)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfigFile(t, tt.content))
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
			assert.Contains(t, err.Error(), tt.expectedField)
		})
	}
}
