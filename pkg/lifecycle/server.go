/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package lifecycle runs the dashboard HTTP server, and optionally a gRPC
// health endpoint, until a signal or context cancellation stops it.
package lifecycle

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
	"golang.org/x/net/netutil"

	"github.com/mfreeman451/goesradar/pkg/grpc"
)

const (
	ShutdownTimeout   = 10 * time.Second
	ReadHeaderTimeout = 5 * time.Second
)

// ServerOptions holds configuration for running the server.
type ServerOptions struct {
	ListenAddr  string
	ServiceName string
	Handler     http.Handler
	Logger      *zap.Logger

	// MaxConnections caps concurrently accepted HTTP connections. Zero
	// means unlimited.
	MaxConnections int

	// GRPCHealthAddr enables a grpc.health.v1 server when non-empty.
	GRPCHealthAddr string

	// Listener and GRPCListener replace ListenAddr and GRPCHealthAddr
	// when set.
	Listener     net.Listener
	GRPCListener net.Listener
}

// RunServer serves until SIGINT, SIGTERM, ctx cancellation or a server
// error, then shuts everything down gracefully.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	ln, err := listen(opts.Listener, opts.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", opts.ListenAddr, err)
	}

	if opts.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, opts.MaxConnections)
	}

	httpServer := &http.Server{
		Handler:           opts.Handler,
		ReadHeaderTimeout: ReadHeaderTimeout,
		ErrorLog:          zap.NewStdLog(log.Named("http")),
	}

	errChan := make(chan error, 2)

	go func() {
		log.Info("starting HTTP server", zap.String("service", opts.ServiceName), zap.Stringer("addr", ln.Addr()))

		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server: %w", err)
		}
	}()

	var hs *grpc.Server

	if opts.GRPCListener != nil || opts.GRPCHealthAddr != "" {
		hs, err = startHealthServer(opts, log, errChan)
		if err != nil {
			_ = httpServer.Close()
			return err
		}
	}

	return handleShutdown(ctx, log, httpServer, hs, errChan)
}

func listen(ln net.Listener, addr string) (net.Listener, error) {
	if ln != nil {
		return ln, nil
	}

	return net.Listen("tcp", addr)
}

func startHealthServer(opts *ServerOptions, log *zap.Logger, errChan chan<- error) (*grpc.Server, error) {
	ln, err := listen(opts.GRPCListener, opts.GRPCHealthAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", opts.GRPCHealthAddr, err)
	}

	s := grpc.NewServer(log.Named("grpc"))
	s.SetServing("")
	s.SetServing(opts.ServiceName)

	go func() {
		if err := s.Serve(ln); err != nil {
			errChan <- fmt.Errorf("grpc health server: %w", err)
		}
	}()

	return s, nil
}

func handleShutdown(
	ctx context.Context, log *zap.Logger, httpServer *http.Server, hs *grpc.Server, errChan chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var runErr error

	select {
	case sig := <-sigChan:
		log.Info("received signal, initiating shutdown", zap.Stringer("signal", sig))
	case err := <-errChan:
		log.Error("server error, initiating shutdown", zap.Error(err))
		runErr = err
	case <-ctx.Done():
		log.Info("context canceled, initiating shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if hs != nil {
		hs.Stop(shutdownCtx)
	}

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("error during HTTP shutdown", zap.Error(err))

		if runErr == nil {
			runErr = fmt.Errorf("shutdown error: %w", err)
		}
	}

	return runErr
}
