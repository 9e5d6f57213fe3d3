package config

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend, sqlitePath string) *Repository {
	return &Repository{
		backend:    backend,
		sqlitePath: sqlitePath,
	}
}

// NewAppConfigForTest creates an AppConfig pointing at path
func NewAppConfigForTest(path string) *AppConfig {
	return &AppConfig{path: path}
}

// NewSlackForTest creates a Slack config for testing purposes
func NewSlackForTest(botToken, channel string) *Slack {
	return &Slack{
		botToken: botToken,
		channel:  channel,
	}
}
