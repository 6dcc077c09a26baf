// Package picker implements the argv contract shared by the portal and the
// picker-mode UI: the same binary is the desktop app with no flags, and the
// file chooser child process when a mode flag is present.
package picker

// Mode selects which chooser the picker UI renders.
type Mode int

const (
	Disabled Mode = iota
	Files
	Directories
	Both
	Save
)

// Config is parsed once from argv at startup and never mutated afterward.
type Config struct {
	Mode          Mode
	AllowMultiple bool
	FileTypes     []string // extensions, no leading dot; nil when unset
	StartDir      string
	CurrentName   string
}

// ParseArgs walks args (as in os.Args[1:]) looking for the picker flags.
// Unrecognized arguments are ignored, matching the original's tolerant
// argv loop — this binary also accepts cobra subcommands on the same
// os.Args, and those are simply not picker flags.
func ParseArgs(args []string) Config {
	var cfg Config

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--picker":
			cfg.Mode = Files
		case "--picker-dirs":
			cfg.Mode = Directories
		case "--picker-both":
			cfg.Mode = Both
		case "--picker-save":
			cfg.Mode = Save
		case "--multiple":
			cfg.AllowMultiple = true
		case "--types":
			if i+1 < len(args) {
				cfg.FileTypes = splitCSV(args[i+1])
				i++
			}
		case "--start-dir":
			if i+1 < len(args) {
				cfg.StartDir = args[i+1]
				i++
			}
		case "--current-name":
			if i+1 < len(args) {
				cfg.CurrentName = args[i+1]
				i++
			}
		}
	}

	return cfg
}

func splitCSV(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return out
}
