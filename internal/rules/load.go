package rules

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads a ruleset file (YAML, JSON, or TOML by extension) and overlays
// it on the default ruleset, so a file only needs to state what differs.
func Load(path string) (Ruleset, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Ruleset{}, fmt.Errorf("reading ruleset %s: %w", path, err)
	}

	rs := Default()
	if err := v.Unmarshal(&rs); err != nil {
		return Ruleset{}, fmt.Errorf("parsing ruleset %s: %w", path, err)
	}

	return rs, nil
}
