package config

const (
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultLogDir             = "~/.local/share/spikemask/logs"
	defaultRecordingPattern   = "data_*.sdb"
	defaultConcurrentFile     = "concurrent_times.sdb"
	defaultLockTimeoutSeconds = 10
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Dir:    defaultLogDir,
		},
		Storage: Storage{
			RecordingPattern: defaultRecordingPattern,
			ConcurrentFile:   defaultConcurrentFile,
		},
		Analysis: Analysis{
			ResetBeforeAnalysis: true,
			LockTimeoutSeconds:  defaultLockTimeoutSeconds,
		},
	}
}
