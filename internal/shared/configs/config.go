package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Acquisition AcquisitionConfig `mapstructure:"acquisition" validate:"required"`
	Decoder     DecoderConfig     `mapstructure:"decoder"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// AcquisitionConfig holds the defaults of a tagging run. Requests may override the window
// length and unit mode per run.
type AcquisitionConfig struct {
	WindowLengthNs       int64   `mapstructure:"window_length_ns" validate:"required,min=1"`
	MeasurementDurationS float64 `mapstructure:"measurement_duration_s" validate:"required,gt=0"`
	MaxTagsPerWindow     int     `mapstructure:"max_tags_per_window" validate:"required,min=1"`
	TagsAreClockCycles   bool    `mapstructure:"tags_are_clock_cycles"`
	ClockPeriodNs        int64   `mapstructure:"clock_period_ns" validate:"min=1"`
}

// DecoderConfig holds tag stream decoder tuning.
type DecoderConfig struct {
	Parallelism int `mapstructure:"parallelism" validate:"min=1,max=64"`
}
