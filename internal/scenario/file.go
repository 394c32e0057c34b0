package scenario

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadFile reads a scenario from a TOML file. The file carries the same
// fields as the built-ins: top-level name, description and world_width,
// plus one [[bodies]] table per body.
func LoadFile(path string) (Scenario, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var sc Scenario
	if err := v.Unmarshal(&sc); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}
