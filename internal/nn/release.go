//go:build !debug

package nn

const debugChecks = false
