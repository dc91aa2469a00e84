package core

import "instabug_bridge/contract"

// SessionReplay drives the IBGSessionReplay native module.
type SessionReplay struct {
	svc *Service
}

func (r *SessionReplay) SetEnabled(enabled bool) {
	r.svc.callModule(contract.SessionReplayModule, contract.SetEnabledMethod, enabled)
}

func (r *SessionReplay) SetNetworkLogsEnabled(enabled bool) {
	r.svc.callModule(contract.SessionReplayModule, contract.SetNetworkLogsEnabledMethod, enabled)
}

func (r *SessionReplay) SetInstabugLogsEnabled(enabled bool) {
	r.svc.callModule(contract.SessionReplayModule, contract.SetInstabugLogsEnabledMethod, enabled)
}

func (r *SessionReplay) SetUserStepsEnabled(enabled bool) {
	r.svc.callModule(contract.SessionReplayModule, contract.SetUserStepsEnabledMethod, enabled)
}
