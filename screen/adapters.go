package screen

import "instabug_bridge/contract"

// OnNavigationEvent handles a navigation-library listener callback. Nothing
// is observed when both states resolve to the same active route.
func (t *Tracker) OnNavigationEvent(prev, current *contract.RouteState) {
	currentName := ActiveRouteName(current)
	if ActiveRouteName(prev) == currentName {
		return
	}
	t.Observe(currentName)
}

// OnStateChangeEvent handles a container state listener callback, keyed by
// the full route path.
func (t *Tracker) OnStateChangeEvent(state *contract.RouteState) {
	t.Observe(FullRoute(state))
}

// OnComponentDidAppear handles imperative screen-lifecycle callbacks.
func (t *Tracker) OnComponentDidAppear(event contract.ComponentEvent) {
	t.ObserveNow(event.ComponentName)
}
