//go:build boundsdebug

package bound

import "fmt"

const debugAssertions = true

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("bound: "+format, args...))
	}
}
