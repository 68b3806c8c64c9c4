// Package format renders listing values for display.
//
// Every function here is pure: it depends only on its arguments and returns
// a freshly built string, so results can be kept and reused across calls.
package format
