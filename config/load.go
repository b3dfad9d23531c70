package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	fileName = "config.yaml"

	// PathEnv names an explicit config file and skips the directory search.
	PathEnv = "STOREFRONT_CONFIG"
)

// load reads the YAML file, then lets environment variables override any key the
// file declares. POSTGRES_MASTER_USERNAME lands on postgres.master.userName.
func load(name string, dirs ...string) (*Config, error) {
	path, err := findConfigFile(name, dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	declared := k.Raw()
	overrides := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, declared), value
		},
	})
	if err := k.Load(overrides, nil); err != nil {
		return nil, errors.Wrap(err, "load environment overrides")
	}

	cfg := new(Config)
	err = k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				// HTTP_ALLOWORIGINS=https://a.example,https://b.example
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: strings.EqualFold,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}

	return cfg, nil
}

// findConfigFile honours PathEnv, otherwise returns the first dirs entry holding name.
// Relative dirs are resolved against the working directory.
func findConfigFile(name string, dirs []string) (string, error) {
	if explicit := os.Getenv(PathEnv); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, "%s=%s", PathEnv, explicit)
		}

		return explicit, nil
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in %s", name, strings.Join(dirs, ", "))
}
