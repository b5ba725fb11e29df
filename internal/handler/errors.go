// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated means the server config names no listener
	// address, so the reconciliation API would be unreachable.
	errNoHandlersAreCreated = errors.New("no handlers are created")
	// errNoReadinessProbe means a gRPC address was configured without a
	// probe for the health service to report on.
	errNoReadinessProbe = errors.New("grpc health requires a readiness probe")
)
