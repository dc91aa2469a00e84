//go:build (android || ios) && cgo

// Command instabug_bridge is built with -buildmode=c-shared (Android) or
// c-archive (iOS) and linked into the host app. See bridge.h for the
// callbacks the host registers.
package main

func main() {}
