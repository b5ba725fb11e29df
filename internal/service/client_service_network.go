package service

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/config"
)

// configuredNetwork reports the network class declared in the client config.
type configuredNetwork struct {
	metered bool
}

// NewConfiguredNetwork returns a NetworkClassifier backed by
// ADAPTER_METERED.
func NewConfiguredNetwork(cfg config.ClientAdapter) NetworkClassifier {
	return configuredNetwork{metered: cfg.Metered}
}

func (n configuredNetwork) IsMetered(context.Context) bool {
	return n.metered
}
