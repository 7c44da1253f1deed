package source

import (
	"os"
	"syscall"
)

// Signal definitions for cross-platform compatibility
var (
	sigterm os.Signal = syscall.SIGTERM
	sigkill os.Signal = syscall.SIGKILL
	sigint  os.Signal = syscall.SIGINT
)

// InterruptSignals end a run without further output
var InterruptSignals = []os.Signal{sigint, sigterm}
