package downloads

import (
	"os/exec"
	"sync"
	"syscall"

	"grabarr/internal/utils/logging"
)

// HandleState tracks the lifecycle of one supervised subprocess.
type HandleState int

const (
	HandleRunning HandleState = iota
	HandleCancelRequested
	HandleExited
)

func (s HandleState) String() string {
	switch s {
	case HandleRunning:
		return "running"
	case HandleCancelRequested:
		return "cancel-requested"
	case HandleExited:
		return "exited"
	default:
		return "unknown"
	}
}

// ProcessHandle is the cancellation surface for one live subprocess. It
// is owned exclusively by the supervisor; callers hold it only to kill
// and to observe the cancel/exit race. Kill is idempotent: killing an
// already-exited or already-cancelling handle is a no-op, not an error.
//
// Any exit after a cancel request classifies as Cancelled, even if the
// process had already begun emitting success-shaped output.
type ProcessHandle struct {
	mu    sync.Mutex
	state HandleState
	cmd   *exec.Cmd
	done  chan struct{}
}

func newProcessHandle(cmd *exec.Cmd) *ProcessHandle {
	return &ProcessHandle{
		cmd:  cmd,
		done: make(chan struct{}),
	}
}

// Kill requests termination of the live process. The whole process group
// is signalled so helper children (e.g. ffmpeg) die with it. Termination
// is not retried; the exit-wait resolves the rest.
func (h *ProcessHandle) Kill() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != HandleRunning {
		logging.D(2, "Kill requested on %s handle, ignoring", h.state)
		return
	}
	h.state = HandleCancelRequested

	if h.cmd != nil && h.cmd.Process != nil {
		if err := syscall.Kill(-h.cmd.Process.Pid, syscall.SIGKILL); err != nil {
			logging.E("Failed to kill process group %d: %v", h.cmd.Process.Pid, err)
		}
	}
}

// CancelRequested reports whether a kill was ever requested.
func (h *ProcessHandle) CancelRequested() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state == HandleCancelRequested
}

// State returns the current handle state.
func (h *ProcessHandle) State() HandleState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Done closes once the process has exited.
func (h *ProcessHandle) Done() <-chan struct{} {
	return h.done
}

// markExited resolves the cancel/exit race: a cancel-requested handle
// stays cancel-requested so classification sees it.
func (h *ProcessHandle) markExited() {
	h.mu.Lock()
	if h.state == HandleRunning {
		h.state = HandleExited
	}
	h.mu.Unlock()
	close(h.done)
}
