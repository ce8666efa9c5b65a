package common

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"
)

// ShutdownHook runs before the server shuts down. Errors are logged and
// shutdown continues regardless.
type ShutdownHook func(ctx context.Context) error

// DebugServer serves the debug endpoints next to a short lived command.
type DebugServer struct {
	name   string
	server *http.Server
	cfg    TimeoutConfig
	done   chan struct{}
}

func NewDebugServer(name, addr string, handler http.Handler, cfg TimeoutConfig) *DebugServer {
	server := NewServerWithTimeouts(&http.Server{Addr: addr, Handler: handler}, cfg)
	return &DebugServer{
		name:   name,
		server: server,
		cfg:    cfg,
		done:   make(chan struct{}),
	}
}

// Start listens on the configured address and serves in the background.
// The returned address is the one actually bound, useful with port 0.
func (d *DebugServer) Start() (net.Addr, error) {
	listener, err := net.Listen("tcp", d.server.Addr)
	if err != nil {
		return nil, err
	}
	log.Printf("starting %s on %s", d.name, listener.Addr())
	go func() {
		defer close(d.done)
		if err := d.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("%s serve error: %v", d.name, err)
		}
	}()
	return listener.Addr(), nil
}

// Shutdown runs hooks in order, each with the hook timeout, and then shuts
// the server down within the shutdown timeout.
func (d *DebugServer) Shutdown(ctx context.Context, hooks ...ShutdownHook) error {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.Shutdown)
	defer cancel()

	for i, h := range hooks {
		if h == nil {
			continue
		}
		hCtx, hCancel := context.WithTimeout(ctx, d.cfg.Hook)
		if err := h(hCtx); err != nil {
			log.Printf("shutdown hook %d failed: %v", i, err)
		}
		if errors.Is(hCtx.Err(), context.DeadlineExceeded) {
			log.Printf("shutdown hook %d timed out", i)
		}
		hCancel()
	}

	if err := d.server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		return err
	}
	select {
	case <-d.done:
	case <-ctx.Done():
	}
	log.Printf("%s shutdown complete", d.name)
	return nil
}

// TimeoutConfig holds server and shutdown related timeouts.
type TimeoutConfig struct {
	ReadHeader time.Duration
	Read       time.Duration
	Write      time.Duration
	Idle       time.Duration
	Shutdown   time.Duration
	Hook       time.Duration
}

var DefaultTimeouts = TimeoutConfig{
	ReadHeader: 5 * time.Second,
	Read:       10 * time.Second,
	Write:      10 * time.Second,
	Idle:       60 * time.Second,
	Shutdown:   5 * time.Second,
	Hook:       2 * time.Second,
}

// LoadTimeoutConfig overrides defaults from the environment. Each variable
// is a whole number of seconds; invalid or non positive values are ignored.
//
//	READ_HEADER_TIMEOUT
//	READ_TIMEOUT
//	WRITE_TIMEOUT
//	IDLE_TIMEOUT
//	SHUTDOWN_TIMEOUT
//	HOOK_TIMEOUT
func LoadTimeoutConfig(defaults TimeoutConfig) TimeoutConfig {
	apply := func(curr *time.Duration, env string) {
		if v := os.Getenv(env); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				*curr = time.Duration(n) * time.Second
			}
		}
	}
	apply(&defaults.ReadHeader, "READ_HEADER_TIMEOUT")
	apply(&defaults.Read, "READ_TIMEOUT")
	apply(&defaults.Write, "WRITE_TIMEOUT")
	apply(&defaults.Idle, "IDLE_TIMEOUT")
	apply(&defaults.Shutdown, "SHUTDOWN_TIMEOUT")
	apply(&defaults.Hook, "HOOK_TIMEOUT")
	return defaults
}

// NewServerWithTimeouts attaches timeout settings to base, or to a new server if nil.
func NewServerWithTimeouts(base *http.Server, cfg TimeoutConfig) *http.Server {
	if base == nil {
		base = &http.Server{}
	}
	base.ReadHeaderTimeout = cfg.ReadHeader
	base.ReadTimeout = cfg.Read
	base.WriteTimeout = cfg.Write
	base.IdleTimeout = cfg.Idle
	return base
}

// GetEnv returns the environment value of key or fallback when unset.
func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
