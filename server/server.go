// Package server exposes an in-memory host console over SSH.
package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gliderlabs/ssh"
	"github.com/pkg/errors"
	"github.com/zond/consoleutil"
	"github.com/zond/consoleutil/console"
	"github.com/zond/consoleutil/editorid"
	"github.com/zond/consoleutil/host"
	"github.com/zond/consoleutil/pemfile"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	gossh "golang.org/x/crypto/ssh"
)

type Config struct {
	SSHAddr string
	Dir     string
	// World is a world seed file. The embedded default world is used if empty.
	World string
	// Frame is the interval between host frames.
	Frame time.Duration
}

func DefaultConfig() Config {
	return Config{
		SSHAddr: "127.0.0.1:15000",
		Dir:     filepath.Join(os.Getenv("HOME"), ".consoleutil"),
		Frame:   50 * time.Millisecond,
	}
}

type Server struct {
	config   Config
	process  *host.Process
	registry *editorid.Registry
}

// New starts the host the way it boots: hooks and commands are installed
// before any form is loaded.
func New(config Config) (*Server, error) {
	s := &Server{
		config:   config,
		process:  host.NewProcess(),
		registry: editorid.NewRegistry(editorid.NewCache()),
	}
	s.registry.Install(s.process)
	console.Install(s.process, s.registry.Cache())
	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) seed() error {
	if s.config.World == "" {
		return s.process.SeedDefault()
	}
	f, err := os.Open(s.config.World)
	if err != nil {
		return consoleutil.WithStack(err)
	}
	defer f.Close()
	return s.process.Seed(f)
}

func (s *Server) Process() *host.Process {
	return s.process
}

func (s *Server) Registry() *editorid.Registry {
	return s.registry
}

func (s *Server) hostKey() (gossh.Signer, error) {
	if err := os.MkdirAll(s.config.Dir, 0700); err != nil {
		return nil, consoleutil.WithStack(err)
	}
	signer, generated, err := pemfile.KeyParams{
		KeyPath:       filepath.Join(s.config.Dir, "private.pem"),
		SSHPubKeyPath: filepath.Join(s.config.Dir, "public.pem"),
	}.Signer()
	if err != nil {
		return nil, err
	}
	if generated {
		log.Printf("Generated server key pair in %q", s.config.Dir)
	}
	return signer, nil
}

// Start runs the frame loop and serves SSH until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	signer, err := s.hostKey()
	if err != nil {
		return err
	}
	sshServer := &ssh.Server{
		Addr:    s.config.SSHAddr,
		Handler: s.HandleSession,
	}
	sshServer.AddHostKey(signer)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		s.runFrames(ctx)
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		return consoleutil.WithStack(sshServer.Close())
	})
	eg.Go(func() error {
		log.Printf("Listening on %q with public key %q", s.config.SSHAddr, gossh.FingerprintSHA256(signer.PublicKey()))
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return consoleutil.WithStack(err)
		}
		return nil
	})
	return eg.Wait()
}

func (s *Server) runFrames(ctx context.Context) {
	ticker := time.NewTicker(s.config.Frame)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.process.Tick()
		}
	}
}

func (s *Server) HandleSession(sess ssh.Session) {
	t := term.NewTerminal(sess, "> ")
	s.process.Transcript.Attach(t)
	defer s.process.Transcript.Detach(t)
	if err := s.serve(sess.Context(), t); err != nil && !errors.Is(err, io.EOF) {
		fmt.Fprintf(t, "InternalServerError: %v\n", err)
		log.Println(err)
		log.Println(consoleutil.StackTrace(err))
	}
}

func (s *Server) serve(ctx context.Context, t *term.Terminal) error {
	for {
		line, err := t.ReadLine()
		if err != nil {
			return consoleutil.WithStack(err)
		}
		if err := s.process.Run(ctx, line); err != nil {
			return err
		}
	}
}
