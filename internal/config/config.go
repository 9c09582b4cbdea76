// Package config locates the applet script and loads the optional settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Settings tune how the status line is produced. Command line flags
// override them.
type Settings struct {
	Separator string            `toml:"separator"`
	Format    string            `toml:"format"`
	Source    string            `toml:"source"`
	ProcRoot  string            `toml:"proc_root"`
	Config    string            `toml:"config"`
	Defaults  map[string]string `toml:"defaults"`
}

func Default() Settings {
	return Settings{
		Separator: "  ",
		Format:    "tmux",
		Source:    "auto",
		ProcRoot:  "/proc",
	}
}

// ErrNoConfig is returned when none of the applet script locations can be read.
var ErrNoConfig = errors.New("unable to open configuration file")

// LoadSettings decodes the first settings file found. path overrides the
// search and must exist. A missing settings file is not an error; the
// returned string is the file used, empty when defaults apply.
func LoadSettings(path string) (Settings, string, error) {
	s := Default()
	paths := settingsPaths()
	if path != "" {
		paths = []string{path}
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			if path == "" && errors.Is(err, os.ErrNotExist) {
				continue
			}
			return s, p, err
		}
		if err := decodeSettings(data, &s); err != nil {
			return s, p, fmt.Errorf("%s: %w", p, err)
		}
		return s, p, nil
	}
	return s, "", nil
}

func decodeSettings(data []byte, s *Settings) error {
	md, err := toml.Decode(string(data), s)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown settings: %s", strings.Join(keys, ", "))
	}
	return nil
}

func settingsPaths() []string {
	var paths []string
	if env := strings.TrimSpace(os.Getenv("TMUX_APPLET_SETTINGS")); env != "" {
		paths = append(paths, env)
	}
	if cfgDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(cfgDir, "tmux-applet", "settings.toml"))
	}
	paths = append(paths, "tmux-applet.toml")
	return paths
}

// ScriptPaths lists where the applet script is looked for, in order.
// explicit (from -config or the settings file) replaces the search.
func ScriptPaths(explicit string) []string {
	if explicit != "" {
		return []string{expandHome(explicit)}
	}
	var paths []string
	if env := strings.TrimSpace(os.Getenv("TMUX_APPLET_CONF")); env != "" {
		paths = append(paths, expandHome(env))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".tmux-applet.conf"))
	}
	paths = append(paths, "/etc/tmux-applet.conf")
	return paths
}

// OpenScript opens the first readable applet script among paths.
func OpenScript(paths []string) (*os.File, error) {
	for _, p := range paths {
		f, err := os.Open(p)
		if err == nil {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w (tried %s)", ErrNoConfig, strings.Join(paths, ", "))
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
