package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// LoadWithEnv decodes <name>.yaml into T and then applies environment
// overrides. The working directory is searched first, followed by dirs in
// order. Relative dirs are resolved against the working directory.
//
// Variables map to keys by splitting on underscores and matching each
// segment to the YAML key ignoring case, so POSTGRES_SSLMODE sets
// postgres.sslMode.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := findConfigFile(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s failed", path)
	}

	known := k.Raw()
	overrides := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, known), value
		},
	})
	if err := k.Load(overrides, nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	out := new(T)
	if err := k.UnmarshalWithConf("", out, koanf.UnmarshalConf{DecoderConfig: decoderConfig(out)}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s failed", path)
	}

	return out, nil
}

func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		MatchName:        strings.EqualFold,
	}
}

func findConfigFile(filename string, dirs []string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "os.Getwd")
	}

	for _, dir := range append([]string{"."}, dirs...) {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(wd, dir)
		}

		candidate := filepath.Join(dir, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s not found in any search path", filename)
}

// canonicalizeEnvKey turns an env variable name into a koanf key path,
// reusing the spelling of keys already present in known.
func canonicalizeEnvKey(name string, known map[string]any) string {
	var path []string

	level := known
	for _, part := range strings.Split(strings.ToLower(name), "_") {
		if part == "" {
			continue
		}

		key, child, ok := matchKey(level, part)
		if !ok {
			path = append(path, part)
			level = nil

			continue
		}

		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

func matchKey(level map[string]any, part string) (string, map[string]any, bool) {
	want := foldKey(part)
	for key, value := range level {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child, true
		}
	}

	return "", nil, false
}

// foldKey lowercases s and drops everything but letters and digits.
func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}
