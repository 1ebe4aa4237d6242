//go:build debug

package nn

// Debug builds verify every weighted sum and updated weight.
const debugChecks = true
