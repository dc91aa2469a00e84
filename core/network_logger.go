package core

import (
	"go.uber.org/atomic"

	"instabug_bridge/contract"
)

// NetworkLogger toggles capture of the host's network traffic.
type NetworkLogger struct {
	svc     *Service
	enabled atomic.Bool
}

func (n *NetworkLogger) SetEnabled(enabled bool) {
	n.enabled.Store(enabled)
	n.svc.call(contract.SetNetworkLoggingEnabledMethod, enabled)
}

func (n *NetworkLogger) Enabled() bool {
	return n.enabled.Load()
}
