package configs

// Config holds all configuration for the application.
type Config struct {
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	Report      ReportConfig      `mapstructure:"report" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Output      OutputConfig      `mapstructure:"output"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,loglevel"`
}

// ReportConfig names the benchmark log to read and the sheet to write.
// TableName is both the input file key and the output workbook basename.
type ReportConfig struct {
	TableName string `mapstructure:"table_name" validate:"required,excludesall=/\\"`
	SheetName string `mapstructure:"sheet_name" validate:"required,sheetname"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// OutputConfig holds optional report artefacts.
type OutputConfig struct {
	WriteSummary bool `mapstructure:"write_summary"`
	Overwrite    bool `mapstructure:"overwrite"` // false: a run fails when its artefacts already exist
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"` // empty disables the export
}

// ServerConfig holds server-related configuration for the serve command.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}
