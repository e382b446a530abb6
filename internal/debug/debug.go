//go:build debug

// Package debug includes debugging helpers for the tree surgery code.
package debug

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/timandy/routine"

	"github.com/bennyboer/syntax-tree/internal/xflag"
)

// Enabled is true when the module is built with the debug tag, which turns
// on tracing of tree mutations and internal assertions.
const Enabled = true

var (
	tracePattern = xflag.Func("trace", "regexp to filter debug traces by", regexp.Compile)
	nocapture    = flag.Bool("nocapture", false, "disables capturing debug traces as test logs")
)

// Log prints a trace line for one tree operation to stderr, or to the
// current test log when one is installed via [WithTesting].
func Log(operation, format string, args ...any) {
	_, file, line, _ := runtime.Caller(1)
	file = filepath.Base(file)

	buf := new(strings.Builder)
	_, _ = fmt.Fprintf(buf, "%s:%d [g%04d] %s: ", file, line, routine.Goid(), operation)
	_, _ = fmt.Fprintf(buf, format, args...)

	if *tracePattern != nil && !(*tracePattern).MatchString(buf.String()) {
		return
	}

	t := tls.Get()
	if !*nocapture && t != nil {
		t.Log(buf.String())
		return
	}

	buf.WriteByte('\n')
	_, _ = os.Stderr.WriteString(buf.String())
	_ = os.Stderr.Sync()
}

// Assert panics if cond is false, but only in debug mode.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("syntaxtree: internal assertion failed: "+format, args...))
	}
}
