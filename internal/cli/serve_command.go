package cli

import (
	"context"

	"github.com/spf13/pflag"

	"task-manager/internal/api"
)

// ServeCommand runs the JSON HTTP API until the context is cancelled
type ServeCommand struct {
	app     *App
	address string
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{app: app}
}

// BindFlags declares the listen address flag
func (c *ServeCommand) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.address, "addr", "a", "", "Listen address (overrides TM_SERVER_ADDRESS)")
}

// Server builds the API server for the current configuration
func (c *ServeCommand) Server() *api.Server {
	cfg := c.app.cfg.Server
	if c.address != "" {
		cfg.Address = c.address
	}
	return api.NewServer(c.app.svc, cfg, c.app.log)
}

// Execute runs the serve command
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	if err := c.Server().Run(ctx); err != nil {
		return c.app.errors.Handle("serve", err)
	}
	return nil
}
