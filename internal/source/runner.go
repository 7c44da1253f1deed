package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/charliek/colorcat/internal/domain"
)

// ProcessRunner creates and starts processes
type ProcessRunner interface {
	Start(ctx context.Context, config domain.SourceConfig, env map[string]string) (Process, error)
}

// Process represents a running process
type Process interface {
	PID() int
	Wait() error
	Signal(sig os.Signal) error
	Stdout() io.Reader
}

// ExecRunner implements ProcessRunner using os/exec
type ExecRunner struct {
	stderr io.Writer
}

// NewExecRunner creates a new ExecRunner. The child's stderr is copied to
// stderr; nil discards it.
func NewExecRunner(stderr io.Writer) *ExecRunner {
	return &ExecRunner{stderr: stderr}
}

// Start starts a new process. The context is not bound to the process
// lifetime; stop it with Signal.
func (r *ExecRunner) Start(ctx context.Context, config domain.SourceConfig, env map[string]string) (Process, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Parse command - use shell to handle complex commands
	cmd := exec.Command("sh", "-c", config.Command)

	// Set up environment
	cmd.Env = os.Environ()
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("creating stdout pipe: %w", err)
	}
	cmd.Stderr = r.stderr

	// Set process group so we can kill all children, and so a terminal
	// Ctrl-C reaches us rather than the child
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting process: %w", err)
	}

	return &execProcess{
		cmd:    cmd,
		stdout: stdout,
	}, nil
}

// execProcess wraps exec.Cmd to implement Process interface
type execProcess struct {
	cmd    *exec.Cmd
	stdout io.Reader
}

func (p *execProcess) PID() int {
	if p.cmd.Process == nil {
		return 0
	}
	return p.cmd.Process.Pid
}

func (p *execProcess) Wait() error {
	return p.cmd.Wait()
}

func (p *execProcess) Signal(sig os.Signal) error {
	if p.cmd.Process == nil {
		return nil
	}

	// Kill entire process group
	pgid, err := syscall.Getpgid(p.cmd.Process.Pid)
	if err != nil {
		// Fall back to killing just the process
		return p.cmd.Process.Signal(sig)
	}

	return syscall.Kill(-pgid, sig.(syscall.Signal))
}

func (p *execProcess) Stdout() io.Reader {
	return p.stdout
}
