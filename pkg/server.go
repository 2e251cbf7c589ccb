package pkg

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/charmbracelet/log"
	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	SshPort           = ":2222"
)

var ErrNoPty = errors.New("non-interactive terminals are not supported")

// ServerConfig describes the SSH host
type ServerConfig struct {
	Addr        string
	HostKeyPath string   // PEM private key, a key is generated when empty
	ClientPath  string   // chessterm binary started for every session
	ClientArgs  []string // Extra flags passed to the client
	IdleTimeout time.Duration
}

// Server hands every SSH session its own board. Sessions share nothing.
type Server struct {
	*ssh.Server
	cfg ServerConfig
}

func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = SshPort
	}
	if cfg.IdleTimeout == 0 {
		cfg.IdleTimeout = ServerIdleTimeout
	}
	if cfg.ClientPath == "" {
		return nil, errors.New("server: client path required")
	}

	srv := &Server{cfg: cfg}
	srv.Server = &ssh.Server{
		Addr:        cfg.Addr,
		IdleTimeout: cfg.IdleTimeout,
		Handler:     srv.handle,
	}

	if cfg.HostKeyPath != "" {
		signer, err := loadHostKey(cfg.HostKeyPath)
		if err != nil {
			return nil, err
		}
		srv.AddHostKey(signer)
	}
	return srv, nil
}

func loadHostKey(path string) (gossh.Signer, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read host key: %w", err)
	}
	signer, err := gossh.ParsePrivateKey(pem)
	if err != nil {
		return nil, fmt.Errorf("parse host key %s: %w", path, err)
	}
	return signer, nil
}

// sessionName gives a session a friendly name used in logs and as the
// board's title
func sessionName() string {
	return petname.Generate(2, "-")
}

// clientCommand builds the command running the board for a session
func (s *Server) clientCommand(sess ssh.Session, name, term string) *exec.Cmd {
	args := append([]string{}, s.cfg.ClientArgs...)
	args = append(args, "-title", name)
	cmd := exec.CommandContext(sess.Context(), s.cfg.ClientPath, args...)
	cmd.Env = append(sess.Environ(), fmt.Sprintf("TERM=%s", term))
	return cmd
}

func (s *Server) handle(sess ssh.Session) {
	name := sessionName()
	logger := log.With("session", name, "user", sess.User(), "remote", sess.RemoteAddr())

	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		logger.Warn("rejected session without pty")
		if _, err := io.WriteString(sess, ErrNoPty.Error()+"\n"); err != nil {
			logger.Debug("write to session", "err", err)
		}
		sess.Exit(1)
		return
	}

	cmd := s.clientCommand(sess, name, ptyReq.Term)
	f, err := pty.StartWithSize(cmd, winsize(ptyReq.Window))
	if err != nil {
		logger.Error("start client", "err", err)
		if _, werr := io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err)); werr != nil {
			logger.Debug("write to session", "err", werr)
		}
		sess.Exit(1)
		return
	}
	defer f.Close()
	logger.Info("session started")

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, winsize(win)); err != nil {
				logger.Debug("resize", "err", err)
			}
		}
	}()

	go func() {
		if _, err := io.Copy(f, sess); err != nil {
			logger.Debug("copy session to client", "err", err)
		}
	}()
	if _, err := io.Copy(sess, f); err != nil {
		// The pty reports EIO once the client exits
		logger.Debug("copy client to session", "err", err)
	}

	if err := cmd.Wait(); err != nil {
		logger.Info("session ended", "err", err)
		sess.Exit(1)
		return
	}
	logger.Info("session ended")
	sess.Exit(0)
}

func winsize(w ssh.Window) *pty.Winsize {
	return &pty.Winsize{
		Rows: uint16(w.Height),
		Cols: uint16(w.Width),
	}
}
