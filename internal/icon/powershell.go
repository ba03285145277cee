package icon

import (
	"encoding/base64"
	"fmt"
	"log"
	"os/exec"
	"path/filepath"
	"strings"

	lnk "github.com/parsiya/golnk"
)

// scriptTemplate extracts the associated icon of a target file and prints
// it as base64 PNG. PowerShell plus System.Drawing is present on every
// Windows edition, so no extra imaging dependency is shipped.
const scriptTemplate = `
$ErrorActionPreference = 'Stop'
try {
    Add-Type -Assembly System.Drawing
    $icon = [System.Drawing.Icon]::ExtractAssociatedIcon('%s')
    if (-not $icon) { exit 1 }
    $bmp = $icon.ToBitmap()
    $ms = New-Object System.IO.MemoryStream
    $bmp.Save($ms, [System.Drawing.Imaging.ImageFormat]::Png)
    [Convert]::ToBase64String($ms.ToArray())
} catch { exit 1 }
`

// PowerShellResolver extracts icons through an external PowerShell process.
// Both hooks are swappable so tests run without Windows.
type PowerShellResolver struct {
	run           func(script string) ([]byte, error)
	resolveTarget func(path string) string
}

func NewPowerShellResolver() *PowerShellResolver {
	return &PowerShellResolver{
		run:           runPowerShell,
		resolveTarget: resolveLinkTarget,
	}
}

// Resolve extracts an icon for the shortcut at path. Every failure — parse,
// spawn, non-zero exit, empty or malformed output — degrades to "no icon".
func (r *PowerShellResolver) Resolve(path string) (string, error) {
	target := r.resolveTarget(path)

	out, err := r.run(buildScript(target))
	if err != nil {
		log.Printf("[ICON] Extraction failed for %s: %v", path, err)
		return "", nil
	}

	b64 := strings.TrimSpace(string(out))
	if b64 == "" {
		return "", nil
	}
	if _, err := base64.StdEncoding.DecodeString(b64); err != nil {
		log.Printf("[ICON] Discarding malformed payload for %s", path)
		return "", nil
	}
	return b64, nil
}

// buildScript single-quotes the target into the extraction script.
// PowerShell single-quoted strings only need embedded quotes doubled, so
// arbitrary path content cannot terminate the literal.
func buildScript(target string) string {
	return fmt.Sprintf(scriptTemplate, strings.ReplaceAll(target, "'", "''"))
}

// resolveLinkTarget parses the .lnk and returns its target path. When the
// link cannot be parsed or names no local target, the shortcut file itself
// is the target; ExtractAssociatedIcon handles .lnk files directly.
func resolveLinkTarget(path string) string {
	f, err := lnk.File(path)
	if err != nil {
		return path
	}

	target := f.LinkInfo.LocalBasePath
	if target == "" {
		return path
	}
	if f.LinkInfo.CommonPathSuffix != "" {
		target = filepath.Join(target, f.LinkInfo.CommonPathSuffix)
	}
	return target
}

func runPowerShell(script string) ([]byte, error) {
	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("powershell: %w", err)
	}
	return out, nil
}
