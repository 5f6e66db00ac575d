//go:build !boundsdebug

package bound

const debugAssertions = false

// assertf is compiled out unless built with -tags boundsdebug.
func assertf(bool, string, ...any) {}
