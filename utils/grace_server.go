package utils

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = DefaultReadTimeout
	DefaultShutdownTimeout = 20 * time.Second

	gracefulEnvKey   = "TQ_GRACEFUL"
	gracefulEnvValue = gracefulEnvKey + "=1"
	inheritedFD      = 3
)

// Server wraps http.Server with signal driven shutdown and in-place restart.
type Server struct {
	*http.Server

	listener  net.Listener
	inherited bool
	hooks     []func(context.Context)
	signals   chan os.Signal
	done      chan struct{}
}

// NewServer creates a Server with timeouts and handler.
func NewServer(addr string, handler http.Handler) *Server {
	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadTimeout:       DefaultReadTimeout,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      DefaultWriteTimeout,
		},
		inherited: os.Getenv(gracefulEnvKey) != "",
		signals:   make(chan os.Signal, 1),
		done:      make(chan struct{}),
	}
}

// OnShutdown registers fn to run after the HTTP server stops accepting requests.
// Hooks run in registration order.
func (srv *Server) OnShutdown(fn func(context.Context)) {
	srv.hooks = append(srv.hooks, fn)
}

// ListenAndServe serves until SIGINT or SIGTERM, then drains connections and runs hooks.
// SIGUSR2 hands the listener to a fresh copy of the binary before shutting down.
func (srv *Server) ListenAndServe() error {
	ln, err := srv.listen()
	if err != nil {
		return err
	}
	srv.listener = ln

	signal.Notify(srv.signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR2)
	go srv.watchSignals()

	Logger.Info("http server listening", zap.String("addr", ln.Addr().String()), zap.Bool("inherited", srv.inherited))
	err = srv.Serve(ln)
	<-srv.done
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (srv *Server) listen() (net.Listener, error) {
	if srv.inherited {
		ln, err := net.FileListener(os.NewFile(inheritedFD, "listener"))
		if err != nil {
			return nil, fmt.Errorf("inherit listener: %w", err)
		}
		return ln, nil
	}
	addr := srv.Addr
	if addr == "" {
		addr = ":http"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	return ln, nil
}

func (srv *Server) watchSignals() {
	for sig := range srv.signals {
		switch sig {
		case syscall.SIGUSR2:
			pid, err := srv.fork()
			if err != nil {
				Sugar.Errorf("restart failed, continue serving: %v", err)
				continue
			}
			Sugar.Infof("restarted as pid=%d, draining old server", pid)
		default:
			Sugar.Infof("received %s, shutting down", sig)
		}
		signal.Stop(srv.signals)
		srv.shutdown()
		return
	}
}

func (srv *Server) shutdown() {
	defer close(srv.done)
	ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		Sugar.Errorf("http server shutdown: %v", err)
	}
	for _, fn := range srv.hooks {
		fn(ctx)
	}
	_ = Logger.Sync()
}

func (srv *Server) fork() (int, error) {
	tcpLn, ok := srv.listener.(*net.TCPListener)
	if !ok {
		return 0, errors.New("listener is not *net.TCPListener")
	}
	file, err := tcpLn.File()
	if err != nil {
		return 0, fmt.Errorf("listener file: %w", err)
	}
	defer file.Close()

	env := make([]string, 0, len(os.Environ())+1)
	for _, e := range os.Environ() {
		if e != gracefulEnvValue {
			env = append(env, e)
		}
	}
	env = append(env, gracefulEnvValue)

	return syscall.ForkExec(os.Args[0], os.Args, &syscall.ProcAttr{
		Env:   env,
		Files: []uintptr{os.Stdin.Fd(), os.Stdout.Fd(), os.Stderr.Fd(), file.Fd()},
	})
}
