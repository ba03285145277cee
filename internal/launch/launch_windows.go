//go:build windows

package launch

import (
	"fmt"
	"log"
	"os/exec"
	"syscall"
)

// Start asks the shell to open path as an independent process. `start`
// resolves .lnk files the same way a double-click does.
func Start(path string) error {
	cmd := exec.Command("cmd", "/C", "start", "", path)
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", path, err)
	}

	log.Printf("[LAUNCH] Started: %s", path)
	go cmd.Wait()
	return nil
}
