// Command hardbore is the single binary for the desktop file-manager
// backend: it runs as the portal service, a one-shot indexer/search CLI,
// or — when invoked with a --picker* flag — as the short-lived picker
// child process the portal spawns.
package main

import (
	"fmt"
	"os"

	"github.com/FrogSnot/HardBore/internal/picker"
)

func main() {
	if cfg := picker.ParseArgs(os.Args[1:]); cfg.Mode != picker.Disabled {
		runPickerMode(cfg)
		return
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runPickerMode is reached when argv carries a picker mode flag. Rendering
// the actual chooser UI belongs to the graphical front-end (an external
// collaborator, see the module's scope notes); absent that front-end this
// binary has nothing to show the user, so it reports a cancellation —
// preserving the stdout protocol the portal expects to parse.
func runPickerMode(cfg picker.Config) {
	picker.EmitCancelled(os.Stdout)
	os.Exit(picker.ExitCancelled)
}
