package domain

// GlobalConfig is the singleton configuration document applied to boards
// created without explicit columns or settings
type GlobalConfig struct {
	DefaultColumns  []string `json:"defaultColumns"`
	DefaultSettings Settings `json:"defaultSettings"`
}

// DefaultGlobalConfig returns the factory configuration
func DefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		DefaultColumns:  []string{"To Do", "In Progress", "Done"},
		DefaultSettings: DefaultSettings(),
	}
}
