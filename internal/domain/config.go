package domain

// Config mirrors ~/.calcagent/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	History             HistorySettings `yaml:"history"`
	Server              ServerSettings  `yaml:"server"`
	Agent               AgentSettings   `yaml:"agent"`
}

// HistorySettings controls the bounded history store.
type HistorySettings struct {
	MaxEntries int    `yaml:"max_entries"`
	Backend    string `yaml:"backend"` // "memory" or "sqlite"
}

// ServerSettings configures the HTTP front end.
type ServerSettings struct {
	Address string `yaml:"address"`
	Port    int    `yaml:"port"`
}

// AgentSettings captures user level toggles for the interactive session.
type AgentSettings struct {
	WelcomeBanner bool `yaml:"welcome_banner"`
}
