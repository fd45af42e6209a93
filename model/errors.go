package model

import "fmt"

// ConfigError reports a fatal problem in the model artifact, the model
// config or the keyword config. Nothing is allowed to proceed in a degraded
// mode: every ConfigError aborts the run before any inference happens.
type ConfigError struct {
	Path   string // file the payload came from, "" when loaded from memory
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config error: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("config error in %s: %s: %s", e.Path, e.Field, e.Reason)
}

func configErr(path, field, format string, args ...any) *ConfigError {
	return &ConfigError{Path: path, Field: field, Reason: fmt.Sprintf(format, args...)}
}
