package console

import (
	"os"

	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds parameters for rendering a tree.
type Config struct {
	LineWidth int            // maximum line length in fixed-width cells; 0 means unlimited
	Context   *uax11.Context // context for measuring display width, may be nil
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil || w <= 10 {
			config.LineWidth = 80
		} else {
			config.LineWidth = w - 1
		}
	} else {
		config.LineWidth = 0
	}
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

func (config *Config) context() *uax11.Context {
	if config == nil || config.Context == nil {
		return uax11.LatinContext
	}
	return config.Context
}
