package config

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/slighter12/go-lib/database/postgres"
)

// canonicalizeEnvKey maps RATELIMIT_OTPPERMINUTE to rateLimit.otpPerMinute by walking the
// keys already loaded from YAML. Segments with no YAML counterpart stay lower case.
func canonicalizeEnvKey(rawKey string, declared map[string]any) string {
	var path []string
	level := declared

	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child, ok := matchKey(level, segment)
		if !ok {
			key, child = segment, nil
		}
		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

func matchKey(level map[string]any, segment string) (string, map[string]any, bool) {
	want := foldKey(segment)
	for key, value := range level {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child, true
		}
	}

	return "", nil, false
}

// foldKey drops separators and case so sslMode, ssl_mode and SSLMODE compare equal.
func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}

// replicasFromEnv collects read replicas numbered from 0 until the first index
// without both a host and a port.
func replicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		get := func(field string) string {
			return os.Getenv(fmt.Sprintf("POSTGRES_REPLICAS_%d_%s", i, field))
		}

		host, port := get("HOST"), get("PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: get("USERNAME"),
			Password: get("PASSWORD"),
		})
	}
}
