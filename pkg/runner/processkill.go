package runner

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"
)

// killProcessTree kills a browser process and all its children.
// On Windows, proc.Kill() only terminates the parent process — Chrome's
// child processes (GPU helper, renderer, crashpad) survive and block
// indefinitely. On Linux/macOS, proc.Kill() only sends SIGKILL to the
// parent; children get reparented to PID 1 and keep running.
func killProcessTree(proc *os.Process) {
	if proc == nil {
		return
	}
	if runtime.GOOS == "windows" {
		// taskkill /F = force, /T = tree (kill children too)
		_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(proc.Pid)).Run()
	} else {
		// chromedp launches Chrome with Setpgid=true so the group ID
		// equals the parent PID. Negative PID targets the group.
		err := exec.Command("kill", "-9", "--", "-"+strconv.Itoa(proc.Pid)).Run()
		if err != nil {
			_ = proc.Kill()
		}
	}
}
