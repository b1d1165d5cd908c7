package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

// SSHServerConfig configures the arcade's SSH front door.
type SSHServerConfig struct {
	Address     string        // host:port, e.g. ":23234"
	HostKeyPath string        // generated on first start; ~/.arcade/host_key when empty
	DBPath      string        // scores database shared by every session
	IdleTimeout time.Duration // idle connections are dropped after this
	TickRate    int           // frames per second of every session

	// ConfigFile and Preset reach every game the server creates.
	ConfigFile string
	Preset     string

	Logger *log.Logger
}

// DefaultSSHServerConfig is the configuration used by `arcade serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.arcade/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer serves one SessionModel per SSH connection.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer prepares the server. It does not listen yet. A scores
// database that fails to open is logged and sessions play without one.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultSSHServerConfig().TickRate
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	srv := &SSHServer{config: cfg, logger: logger.WithPrefix("arcade-ssh")}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		srv.logger.Warn("scores will not be kept", "db", cfg.DBPath, "err", err)
	} else {
		srv.store = store
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		srv.closeStore()
		return nil, err
	}

	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: create ssh server: %w", err)
	}
	return srv, nil
}

// hostKeyPath resolves the key location and makes sure its directory exists.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: locate host key: %w", err)
		}
		path = filepath.Join(home, ".arcade", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: host key directory: %w", err)
	}
	return path, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Preset:   s.config.Preset,
	}

	logger := s.logger.With("user", sess.User(), "session", sessionID(sess))
	env := registry.Env{Logger: logger, ConfigFile: s.config.ConfigFile}
	model := NewSessionModel(s.store, cfg, env)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// sessionID tags every log line of one connection.
func sessionID(sess ssh.Session) string {
	if id, ok := sess.Context().Value(ssh.ContextKeySessionID).(string); ok && len(id) >= 8 {
		return id[:8]
	}
	return uuid.NewString()[:8]
}

// loggingMiddleware records when each connection comes and goes.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		l := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		start := time.Now()
		l.Info("session started")
		next(sess)
		l.Info("session ended", "duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe blocks until ctx is cancelled or the listener fails. Either
// way the server is shut down before it returns.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("listening", "address", s.config.Address)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := s.server.ListenAndServe()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: ssh server: %w", err)
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down")
		return s.Shutdown()
	})
	return g.Wait()
}

// Shutdown gives open sessions up to ten seconds, then closes the store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	if err != nil {
		return fmt.Errorf("tui: shutdown: %w", err)
	}
	return nil
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("cannot close scores database", "err", err)
	}
	s.store = nil
}

// Addr is the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
