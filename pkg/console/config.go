package console

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config keeps console configuration, read from the rc file.
type Config struct {
	// Prompt is printed before reading each command in interactive mode.
	Prompt string `yaml:"prompt"`
	// ValuePrefix is printed before each evaluation result.
	ValuePrefix string `yaml:"value-prefix"`
	// DB is the path of the variable database. Empty disables persistence.
	DB string `yaml:"db"`
}

func defaultConfig() Config {
	return Config{Prompt: "> ", ValuePrefix: "▶ "}
}

// loadConfig reads the rc file at path. A missing file is not an error; the
// defaults are returned.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	bytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cannot read rc file: %v", err)
	}
	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("cannot parse rc file %s: %v", path, err)
	}
	return cfg, nil
}
