// Package flagx picks single flags out of a command line before the main
// parser runs.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps only the arguments in args that belong to one of
// allowedFlags, together with their values. Both "-c conf.json" and
// "--config=conf.json" forms are recognised; a value is taken from the next
// argument only when it does not itself start with "-".
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, keep := allowed[name]; keep {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, keep := allowed[arg]; !keep {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// ConfigFileFlag scans args (usually os.Args[1:]) for the config file path
// given via -c, -config or --config, in either the separate-value or the
// "=value" form. Other arguments are ignored, so this can run before the real
// flag parser sees the command line. When the flag repeats, the last value wins.
//
// If no config flag is present, an empty string is returned.
func ConfigFileFlag(args []string) string {
	var config string

	filtered := FilterArgs(args, []string{"-c", "-config", "--config"})

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(filtered)

	return config
}
