package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the arcade over SSH",
	Long: `Listens for SSH connections and gives each one its own game picker.
All players share one scores database (--db).

The host key is generated at ~/.arcade/host_key on first start unless
--host-key names another file.

  arcade serve --ssh :2222
  ssh localhost -p 2222`,
	RunE: runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	f := serveCmd.Flags()
	f.String("ssh", def.Address, "listen address (host:port)")
	f.String("host-key", "", "host key file (generated when missing)")
	f.Duration("idle-timeout", def.IdleTimeout, "disconnect idle sessions after this long")
	f.String("config", "", "game config file (YAML or TOML)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address, _ = f.GetString("ssh")
	cfg.HostKeyPath, _ = f.GetString("host-key")
	cfg.IdleTimeout, _ = f.GetDuration("idle-timeout")
	cfg.ConfigFile, _ = f.GetString("config")
	cfg.DBPath = flagDBPath
	cfg.TickRate = flagFPS
	cfg.Preset = flagDifficulty
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "arcade listening on %s (ctrl+c to stop)\n", server.Addr())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.ListenAndServe(ctx)
}
