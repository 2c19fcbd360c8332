// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"
)

// Flags holds values parsed from command-line flags.
// Only flags the user actually set are applied over the file config.
type Flags struct {
	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	EnableTags      *string
	DisableTags     *string
	SystemClipboard *bool
	NativeDialogs   *bool
	FontSize        *int

	set *flag.FlagSet
}

// DefineFlags registers the flags on fs.
func (f *Flags) DefineFlags(fs *flag.FlagSet) {
	f.set = fs
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default <user config dir>/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.SystemClipboard = fs.Bool("system-clipboard", SystemClipboard, "Use the system clipboard instead of an internal one")
	f.NativeDialogs = fs.Bool("native-dialogs", NativeDialogs, "Use the desktop's native file picker for Save")
	f.FontSize = fs.Int("font-size", 0, "Initial font size - Overrides config file")
}

// Parse defines the flags on fs and parses args.
func (f *Flags) Parse(fs *flag.FlagSet, args []string) error {
	f.DefineFlags(fs)
	return fs.Parse(args)
}

// ApplyOverrides copies every flag that was explicitly set into cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.set == nil {
		return
	}
	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "log-tags":
			cfg.Logger.EnabledTags = splitList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitList(*f.DisableTags)
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		case "native-dialogs":
			cfg.Editor.NativeDialogs = *f.NativeDialogs
		case "font-size":
			if *f.FontSize > 0 {
				cfg.Font.Size = *f.FontSize
			}
		}
	})
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
