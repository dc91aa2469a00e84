package core

import "instabug_bridge/contract"

// OnNavigationStateChange feeds a navigation listener callback to the
// screen tracker.
func (s *Service) OnNavigationStateChange(prev, current *contract.RouteState) {
	s.loop.Post(func() {
		s.tracker.OnNavigationEvent(prev, current)
	})
}

// OnStateChange feeds a navigation container state change to the screen
// tracker.
func (s *Service) OnStateChange(state *contract.RouteState) {
	s.loop.Post(func() {
		s.tracker.OnStateChangeEvent(state)
	})
}

func (s *Service) ComponentDidAppear(event contract.ComponentEvent) {
	s.loop.Post(func() {
		s.tracker.OnComponentDidAppear(event)
	})
}

// ReportScreenChange reports name right away without going through the
// debounce.
func (s *Service) ReportScreenChange(name string) {
	s.loop.Post(func() {
		s.tracker.Report(name)
	})
}

func (s *Service) reportScreen(name string) {
	s.call(contract.ReportScreenChangeMethod, name)
	s.emitMessage(contract.ScreenMessage, name)
}
