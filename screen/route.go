package screen

import (
	"strings"

	"instabug_bridge/contract"
)

// focused returns the route selected by state's index, or nil when the state
// is missing or its index does not point at a route.
func focused(state *contract.RouteState) *contract.Route {
	if state == nil || state.Index < 0 || state.Index >= len(state.Routes) {
		return nil
	}
	return &state.Routes[state.Index]
}

// ActiveRouteName walks nested navigator state down the focused routes and
// returns the name of the deepest one. Missing or malformed state yields "".
func ActiveRouteName(state *contract.RouteState) string {
	route := focused(state)
	if route == nil {
		return ""
	}
	if route.State != nil && focused(route.State) != nil {
		return ActiveRouteName(route.State)
	}
	return route.Name
}

// FullRoute joins the focused route names from the root navigator to the
// deepest one with "/". Missing or malformed state yields "".
func FullRoute(state *contract.RouteState) string {
	var names []string
	for route := focused(state); route != nil; route = focused(route.State) {
		names = append(names, route.Name)
	}
	return strings.Join(names, "/")
}
