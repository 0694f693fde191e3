package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/session"
	"github.com/vovakirdan/tui-wordle/internal/vocab"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.wordle/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Vocabulary is loaded once at startup and shared by all connections.
	Vocabulary vocab.Provider

	// Answer fixes the answer of every game. Empty picks at random.
	Answer string

	Seed           int64
	WinMessages    []string
	NoticeDuration time.Duration
	Theme          config.ThemeConfig

	// Logger receives server and session logs. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	cfg := config.Default()
	return SSHServerConfig{
		Address:        ":23234",
		IdleTimeout:    30 * time.Minute,
		Vocabulary:     vocab.FileProvider{},
		WinMessages:    cfg.Game.WinMessages,
		NoticeDuration: cfg.NoticeDuration(),
		Theme:          cfg.Theme,
	}
}

// SSHServer wraps a Wish SSH server that gives every connection its own game.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	words  *sharedVocabulary
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// The vocabulary is loaded here, so a bad word list fails startup.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "wordle-ssh",
		})
	}
	if cfg.Vocabulary == nil {
		cfg.Vocabulary = vocab.FileProvider{}
	}

	words, err := newSharedVocabulary(cfg.Vocabulary)
	if err != nil {
		return nil, fmt.Errorf("cannot load vocabulary: %w", err)
	}
	if cfg.Answer != "" {
		if _, err := (vocab.FixedPicker{Word: cfg.Answer}).Pick(words.current()); err != nil {
			return nil, err
		}
	}

	srv := &SSHServer{
		config: cfg,
		words:  words,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		dir := config.Dir()
		if dir == "" {
			return nil, errors.New("cannot get home directory for host key")
		}
		hostKeyPath = filepath.Join(dir, "host_key")
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a game for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	if _, _, ok := sshSession.Pty(); !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	var picker vocab.Picker
	if s.config.Answer != "" {
		picker = vocab.FixedPicker{Word: s.config.Answer}
	} else {
		picker = vocab.NewRandomPicker(s.config.Seed)
	}

	sess, err := session.New(session.Options{
		Provider:    &connectionVocabulary{shared: s.words},
		Picker:      picker,
		WinMessages: s.config.WinMessages,
		Seed:        s.config.Seed,
		Logger:      s.logger.With("user", sshSession.User()),
	})
	if err != nil {
		s.logger.Error("cannot start game", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	model := NewModel(sess, Options{
		Theme:          NewTheme(s.config.Theme, bubbletea.MakeRenderer(sshSession)),
		NoticeDuration: s.config.NoticeDuration,
		Logger:         s.logger,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "words", s.words.current().Len())

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sharedVocabulary is the vocabulary every connection plays with. Reloads
// swap it for connections that start or restart afterwards; a Vocabulary
// itself is never mutated.
type sharedVocabulary struct {
	mu     sync.RWMutex
	source vocab.Provider
	words  *vocab.Vocabulary
}

func newSharedVocabulary(source vocab.Provider) (*sharedVocabulary, error) {
	words, err := source.Load()
	if err != nil {
		return nil, err
	}
	return &sharedVocabulary{source: source, words: words}, nil
}

func (v *sharedVocabulary) current() *vocab.Vocabulary {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.words
}

func (v *sharedVocabulary) reload() (*vocab.Vocabulary, error) {
	words, err := v.source.Load()
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	v.words = words
	v.mu.Unlock()
	return words, nil
}

// connectionVocabulary is the per-connection Provider: the first Load hands
// out the shared vocabulary, later ones reload it.
type connectionVocabulary struct {
	shared  *sharedVocabulary
	started bool
}

func (c *connectionVocabulary) Load() (*vocab.Vocabulary, error) {
	if !c.started {
		c.started = true
		return c.shared.current(), nil
	}
	return c.shared.reload()
}
