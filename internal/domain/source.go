package domain

// SourceConfig describes the command that produces log lines when stdin is
// an interactive terminal
type SourceConfig struct {
	Command string
	Env     map[string]string
}
