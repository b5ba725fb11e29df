// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service of the sync server.
//
// The serving status of the empty service name ("") and of [ServiceName]
// follows the reachability of the note storage: a failed ping reports
// NOT_SERVING until the next successful one.
package grpc

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name of the reconciliation endpoint.
const ServiceName = "notesync.Reconcile"

// defaultProbeInterval is used by Watch when a non-positive interval is given.
const defaultProbeInterval = 10 * time.Second

// ReadinessProbe reports whether the storage behind the server is reachable.
type ReadinessProbe interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
type Handler struct {
	health *health.Server
	probe  ReadinessProbe

	mu      sync.Mutex
	serving bool
	checked bool

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose statuses start as NOT_SERVING until
// the first [Handler.Check] succeeds.
func NewHandler(probe ReadinessProbe, logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		probe:  probe,
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Check pings the storage once and updates the serving status accordingly.
// It returns the ping error.
func (h *Handler) Check(ctx context.Context) error {
	err := h.probe.Ping(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()

	serving := err == nil
	if h.checked && serving == h.serving {
		return err
	}

	if serving {
		h.logger.Info().Str("func", "Handler.Check").Msg("storage is reachable, serving")
		h.setStatus(healthpb.HealthCheckResponse_SERVING)
	} else {
		h.logger.Err(err).Str("func", "Handler.Check").Msg("storage is unreachable, not serving")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	}
	h.serving = serving
	h.checked = true

	return err
}

// Watch runs Check every interval until ctx is done.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	_ = h.Check(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = h.Check(ctx)
		}
	}
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
