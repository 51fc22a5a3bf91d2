//go:build linux

package runner

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// configureProcessGroup puts the child in its own process group so a
// timeout kill can reach grandchildren it may have spawned, the same
// supervision pattern the sandbox engine used for submission execution.
func configureProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid:   true,
		Pdeathsig: syscall.SIGKILL,
	}
}

// killProcessGroup sends SIGKILL to the whole group rooted at the child.
func killProcessGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	_ = unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
}

// withMemoryLimit narrows this process's own RLIMIT_AS to memoryMB
// megabytes for the duration of fn, so any child started inside fn (rlimits
// are inherited across fork/exec) is capped the same way. Grading runs one
// test case at a time on a single goroutine, so briefly narrowing and
// restoring the caller's own limit around a single Start() call is safe: no
// other goroutine forks a process in between. This stands in for full
// cgroup-based enforcement in a library with no cgroup filesystem of its own to
// manage. A memoryMB of 0 disables the cap and runs fn unmodified.
func withMemoryLimit(memoryMB int64, fn func() error) error {
	if memoryMB <= 0 {
		return fn()
	}

	var old unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_AS, &old); err != nil {
		return fn()
	}
	capped := unix.Rlimit{Cur: uint64(memoryMB) * 1024 * 1024, Max: old.Max}
	if err := unix.Setrlimit(unix.RLIMIT_AS, &capped); err != nil {
		return fn()
	}
	err := fn()
	_ = unix.Setrlimit(unix.RLIMIT_AS, &old)
	return err
}
