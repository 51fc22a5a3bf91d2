//go:build !linux

package runner

import "os/exec"

// configureProcessGroup is a no-op outside Linux; there is no portable
// process-group signaling primitive here.
func configureProcessGroup(cmd *exec.Cmd) {}

// killProcessGroup falls back to killing only the direct child.
func killProcessGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	_ = cmd.Process.Kill()
}

// withMemoryLimit is a no-op outside Linux; RLIMIT_AS has no portable
// equivalent here, so memory_limit goes unenforced.
func withMemoryLimit(_ int64, fn func() error) error {
	return fn()
}
