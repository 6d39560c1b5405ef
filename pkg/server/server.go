package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
	log "github.com/sirupsen/logrus"
	gossh "golang.org/x/crypto/ssh"
)

const (
	DefaultAddr        = ":2222"
	DefaultIdleTimeout = 5 * time.Minute

	maxNameLength = 16
)

// Server hosts the game over SSH. Every session gets its own pty and its own
// game process.
type Server struct {
	Addr        string
	Binary      string
	Args        []string
	HostKeyFile string
	IdleTimeout time.Duration

	ssh *ssh.Server
}

// SessionName turns an SSH user name into a player name. Unusable names get a
// generated one.
func SessionName(user string) string {
	var b strings.Builder
	for _, r := range user {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
		if b.Len() == maxNameLength {
			break
		}
	}

	if b.Len() == 0 {
		return petname.Generate(2, "-")
	}

	return b.String()
}

// sessionEnv passes the client's environment through to the game, with TERM
// taken from the pty request.
func sessionEnv(environ []string, term string) []string {
	env := make([]string, 0, len(environ)+1)
	for _, kv := range environ {
		if !strings.HasPrefix(kv, "TERM=") {
			env = append(env, kv)
		}
	}

	return append(env, fmt.Sprintf("TERM=%s", term))
}

// commandArgs returns the arguments the game binary is started with.
func (s *Server) commandArgs(name string) []string {
	args := append([]string{}, s.Args...)
	return append(args, "-name", name)
}

func (s *Server) handle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "failed to start tetterm: non-interactive terminals are not supported\n")

		sess.Exit(1)
		return
	}

	name := SessionName(sess.User())
	logger := log.WithFields(log.Fields{
		"name":   name,
		"remote": sess.RemoteAddr().String(),
	})
	logger.Info("Session started")

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.Binary, s.commandArgs(name)...)
	cmd.Env = sessionEnv(sess.Environ(), ptyReq.Term)

	f, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(ptyReq.Window.Height),
		Cols: uint16(ptyReq.Window.Width),
	})
	if err != nil {
		logger.WithError(err).Error("Failed to start game")
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, &pty.Winsize{Rows: uint16(win.Height), Cols: uint16(win.Width)}); err != nil {
				logger.WithError(err).Debug("Resize failed")
			}
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	cancelCmd()
	if err := cmd.Wait(); err != nil {
		logger.WithError(err).Debug("Game exited")
	}

	logger.Info("Session ended")
	sess.Exit(0)
}

func (s *Server) newSSHServer() (*ssh.Server, error) {
	if s.Addr == "" {
		s.Addr = DefaultAddr
	}
	if s.IdleTimeout == 0 {
		s.IdleTimeout = DefaultIdleTimeout
	}
	if s.Binary == "" {
		return nil, errors.New("server: game binary must be specified")
	}

	srv := &ssh.Server{
		Addr:        s.Addr,
		IdleTimeout: s.IdleTimeout,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	// Without a key file a host key is generated on start.
	if s.HostKeyFile != "" {
		if err := srv.SetOption(ssh.HostKeyFile(s.HostKeyFile)); err != nil {
			return nil, fmt.Errorf("load host key: %w", err)
		}
	}

	return srv, nil
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv, err := s.newSSHServer()
	if err != nil {
		return err
	}
	s.ssh = srv

	go func() {
		<-ctx.Done()
		s.Shutdown()
	}()

	log.WithField("addr", s.Addr).Info("Listening")

	err = srv.ListenAndServe()
	if errors.Is(err, ssh.ErrServerClosed) {
		return nil
	}

	return err
}

// Shutdown stops accepting sessions and waits briefly for open ones.
func (s *Server) Shutdown() {
	if s.ssh == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.ssh.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("Shutdown")
		s.ssh.Close()
	}
}
