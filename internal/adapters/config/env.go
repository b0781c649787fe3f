package config

import (
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/casset/internal/core/domain"
	"go.trai.ch/zerr"
)

// Environment variables read by the loader.
const (
	EnvURL       = "CASSET_URL"
	EnvCachePath = "CASSET_CACHE_PATH"
	EnvMin       = "CASSET_MIN"
	EnvCombine   = "CASSET_COMBINE"
	EnvName      = "CASSET_ENV"
)

// loadEnv returns the process environment merged with the .env file in dir.
// Variables set in the process win over the file.
func (l *Loader) loadEnv(dir string) (map[string]string, error) {
	env := make(map[string]string)

	envPath := path.Join(dir, domain.EnvFileName)
	if _, err := l.fs.Stat(envPath); err == nil {
		data, err := l.fs.ReadFile(envPath)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvFileLoadFailed.Error()), "path", envPath)
		}
		parsed, err := godotenv.Unmarshal(string(data))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvFileLoadFailed.Error()), "path", envPath)
		}
		for k, v := range parsed {
			env[k] = v
		}
	}

	for _, kv := range l.environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env, nil
}

func (l *Loader) environ() []string {
	if l.Environ != nil {
		return l.Environ()
	}
	return os.Environ()
}

// applyEnvOverrides replaces file settings with their CASSET_* variables.
func applyEnvOverrides(file *Cassetfile, env map[string]string) error {
	if v, ok := env[EnvURL]; ok && v != "" {
		file.URL = v
	}
	if v, ok := env[EnvCachePath]; ok && v != "" {
		file.CachePath = v
	}
	for name, target := range map[string]**bool{EnvMin: &file.Min, EnvCombine: &file.Combine} {
		v, ok := env[name]
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			err = zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
			return zerr.With(err, "var", name)
		}
		*target = &b
	}
	return nil
}
