package config

const (
	defaultOutputDir     = "."
	defaultLogDir        = "~/.local/share/cuesplit/logs"
	defaultAudioEncoding = "flac"
	defaultTextEncoding  = "windows-1252"
	defaultFFmpegBinary  = "ffmpeg"
	defaultProbeBinary   = "ffprobe"
	defaultHistoryPath   = "~/.local/share/cuesplit/history.db"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Split: Split{
			AudioEncoding: defaultAudioEncoding,
			TextEncoding:  defaultTextEncoding,
		},
		FFmpeg: FFmpeg{
			Binary:      defaultFFmpegBinary,
			ProbeBinary: defaultProbeBinary,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
