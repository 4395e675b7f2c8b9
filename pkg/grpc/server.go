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

// Package grpc pkg/grpc/server.go
package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
)

// ServerOption is a function type that modifies Server configuration.
type ServerOption func(*Server)

const (
	shutdownTimer = 5 * time.Second
)

// Server wraps a gRPC server that exposes grpc.health.v1 for the dashboard.
type Server struct {
	srv         *grpc.Server
	healthCheck *health.Server
	log         *zap.Logger
	mu          sync.Mutex
	services    map[string]struct{}
	serverOpts  []grpc.ServerOption
}

// NewServer creates a gRPC server with the health service registered.
func NewServer(log *zap.Logger, opts ...ServerOption) *Server {
	s := &Server{
		log:      log,
		services: make(map[string]struct{}),
	}

	s.serverOpts = []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.recoveryInterceptor),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle: 10 * time.Minute,
			Time:              120 * time.Second,
			Timeout:           20 * time.Second,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             60 * time.Second,
			PermitWithoutStream: true,
		}),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.srv = grpc.NewServer(s.serverOpts...)
	s.healthCheck = health.NewServer()
	healthpb.RegisterHealthServer(s.srv, s.healthCheck)

	// Enable reflection for grpcurl
	reflection.Register(s.srv)

	return s
}

// WithServerOptions adds gRPC server options.
func WithServerOptions(opt ...grpc.ServerOption) ServerOption {
	return func(s *Server) {
		s.serverOpts = append(s.serverOpts, opt...)
	}
}

// SetServing marks service as SERVING. The empty name is the overall
// server status.
func (s *Server) SetServing(service string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.services[service] = struct{}{}
	s.healthCheck.SetServingStatus(service, healthpb.HealthCheckResponse_SERVING)
}

// Serve accepts connections on lis until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("gRPC health server listening", zap.Stringer("addr", lis.Addr()))

	if err := s.srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Stop reports NOT_SERVING for every service, then stops gracefully,
// forcing the stop if open streams outlive ctx or the shutdown timer.
func (s *Server) Stop(ctx context.Context) {
	s.mu.Lock()
	for service := range s.services {
		s.healthCheck.SetServingStatus(service, healthpb.HealthCheckResponse_NOT_SERVING)
	}
	s.mu.Unlock()

	s.healthCheck.Shutdown()

	ctx, cancel := context.WithTimeout(ctx, shutdownTimer)
	defer cancel()

	stopped := make(chan struct{})

	go func() {
		s.srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		s.log.Info("gRPC server stopped gracefully")
	case <-ctx.Done():
		s.log.Warn("gRPC server shutdown timed out, forcing stop")
		s.srv.Stop()
	}
}

func (s *Server) loggingInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	s.log.Debug("gRPC call",
		zap.String("method", info.FullMethod),
		zap.Duration("duration", time.Since(start)),
		zap.Error(err))

	return resp, err
}

func (s *Server) recoveryInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("recovered from panic", zap.String("method", info.FullMethod), zap.Any("panic", r))

			err = errInternalError
		}
	}()

	return handler(ctx, req)
}
