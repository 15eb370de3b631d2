package workflows

import (
	"context"

	"github.com/PolarWolf314/passmgr/internal/configs"
)

// ConfigValue is one key of the user configuration.
type ConfigValue struct {
	Key   string
	Value string
}

// ConfigShowResult contains the effective user configuration.
type ConfigShowResult struct {
	// Path is the config file location, whether or not it exists.
	Path string

	// Values are every known key in sorted order.
	Values []ConfigValue
}

// ConfigShow returns every configuration value, with defaults filled in.
func ConfigShow(ctx context.Context) (*ConfigShowResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	config, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}

	result := &ConfigShowResult{Path: configs.ConfigFilePath()}
	for _, key := range configs.ConfigKeys() {
		value, err := config.Get(key)
		if err != nil {
			return nil, err
		}
		result.Values = append(result.Values, ConfigValue{Key: key, Value: value})
	}
	return result, nil
}

// ConfigSetOptions configures the config-set workflow.
type ConfigSetOptions struct {
	Key   string
	Value string
}

// ConfigSetResult contains the outcome of a config-set operation.
type ConfigSetResult struct {
	Key      string
	Previous string
	Value    string
}

// ConfigSet changes one configuration value and writes config.toml.
//
// Returns ErrUnknownConfigKey for keys outside configs.ConfigKeys.
func ConfigSet(ctx context.Context, opts ConfigSetOptions) (*ConfigSetResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	config, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}

	previous, err := config.Get(opts.Key)
	if err != nil {
		return nil, err
	}
	if err := config.Set(opts.Key, opts.Value); err != nil {
		return nil, err
	}
	if err := configs.SaveUserConfig(config); err != nil {
		return nil, err
	}

	current, _ := config.Get(opts.Key)
	return &ConfigSetResult{Key: opts.Key, Previous: previous, Value: current}, nil
}
