package portal

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/FrogSnot/HardBore/internal/logs"
	"github.com/FrogSnot/HardBore/internal/picker"
)

// candidatePaths are tried in order before falling back to a bare $PATH
// lookup of the literal binary name.
var candidatePaths = []string{
	"/usr/local/bin/hardbore",
	"/usr/bin/hardbore",
}

// resolveHardborePath finds the picker binary: first-found among the
// well-known absolute install locations, then whatever "hardbore" resolves
// to on $PATH, finally the literal name so exec.Command can still report a
// clear "not found" error.
func resolveHardborePath() string {
	for _, p := range candidatePaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if p, err := exec.LookPath("hardbore"); err == nil {
		return p
	}
	return "hardbore"
}

// launchPicker spawns the resolved binary in picker mode with the given
// arguments, closes its stdin, and parses the selected paths from its
// stdout. Any spawn failure or non-zero exit yields no selections — the
// caller maps that uniformly to a cancelled reply.
func launchPicker(ctx context.Context, binPath string, args []string) []string {
	cmd := exec.CommandContext(ctx, binPath, args...)
	cmd.Stdin = nil

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logs.Notice(ctx, "portal: picker launch failed", "bin", binPath, "args", args, "error", err, "stderr", stderr.String())
		return nil
	}

	return picker.ParseOutput(&stdout)
}

// pickerArgs builds the argv for launching the picker in the given mode,
// translating portal options into the shared flag contract in §4.6.
func pickerArgs(mode picker.Mode, multiple bool, extensions []string, startDir, currentName string) []string {
	var args []string

	switch mode {
	case picker.Directories:
		args = append(args, "--picker-dirs")
	case picker.Save:
		args = append(args, "--picker-save")
	default:
		args = append(args, "--picker")
	}

	if multiple {
		args = append(args, "--multiple")
	}
	if len(extensions) > 0 && mode != picker.Directories {
		args = append(args, "--types", joinComma(extensions))
	}
	if startDir != "" {
		args = append(args, "--start-dir", startDir)
	}
	if currentName != "" {
		args = append(args, "--current-name", currentName)
	}

	return args
}

func joinComma(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ","
		}
		out += s
	}
	return out
}
