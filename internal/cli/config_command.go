package cli

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"task-manager/internal/config"
)

// ConfigCommand prints the effective configuration, or the supported
// environment variables with --env
type ConfigCommand struct {
	app *App
	env bool
}

// NewConfigCommand creates a new config command handler
func NewConfigCommand(app *App) *ConfigCommand {
	return &ConfigCommand{app: app}
}

// BindFlags declares the --env flag
func (c *ConfigCommand) BindFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.env, "env", false, "List supported environment variables instead")
}

// Execute runs the config command
func (c *ConfigCommand) Execute(ctx context.Context, args []string) error {
	if c.env {
		fmt.Fprintln(c.app.out, config.Usage())
		return nil
	}
	enc := yaml.NewEncoder(c.app.out)
	enc.SetIndent(2)
	if err := enc.Encode(c.app.cfg); err != nil {
		return c.app.errors.Handle("print config", err)
	}
	return enc.Close()
}
