/*
Copyright 2026 the Foody QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/joho/godotenv"

	"github.com/softuni-qa/foody/pkg/foody"
)

// ErrMissing is raised when required configuration is absent.
var ErrMissing = errors.New("missing required configuration")

// envPaths are searched, in order, for a .env file when FOODY_ENV_FILE is unset.
//
//nolint:gochecknoglobals
var envPaths = []string{
	".env",
	"test/.env",
	"../../../test/.env", // From test/api/suites directory
}

type Config struct {
	BaseURL          string
	Username         string
	Password         string
	RequestTimeout   time.Duration
	TestTimeout      time.Duration
	SkipIntegration  bool
	DebugLogging     bool
	LogRequests      bool
	LogResponses     bool
	ValidateContract bool
}

// Load loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func Load() (*Config, error) {
	loadEnvFile()

	config := &Config{
		BaseURL:          strings.TrimSuffix(os.Getenv("FOODY_BASE_URL"), "/"),
		Username:         os.Getenv("FOODY_USERNAME"),
		Password:         os.Getenv("FOODY_PASSWORD"),
		RequestTimeout:   getDurationWithDefault("REQUEST_TIMEOUT", 0),
		TestTimeout:      getDurationWithDefault("TEST_TIMEOUT", 5*time.Minute),
		SkipIntegration:  getBoolWithDefault("SKIP_INTEGRATION", false),
		DebugLogging:     getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:      getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:     getBoolWithDefault("LOG_RESPONSES", false),
		ValidateContract: getBoolWithDefault("VALIDATE_CONTRACT", true),
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// UseFake reports whether no remote service is configured, in which case
// callers may stand up an in-process one.
func (c *Config) UseFake() bool {
	return c.BaseURL == ""
}

// ClientOptions translates the configuration into client options.
func (c *Config) ClientOptions(log logr.Logger) []foody.Option {
	if c.DebugLogging {
		log = log.V(0)
	} else {
		log = log.V(1)
	}

	return []foody.Option{
		foody.WithTimeout(c.RequestTimeout),
		foody.WithLogger(log),
		foody.WithRequestLogging(c.LogRequests || c.DebugLogging, c.LogResponses || c.DebugLogging),
	}
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func findEnvFile() string {
	if path := os.Getenv("FOODY_ENV_FILE"); path != "" {
		return path
	}

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			if absPath, err := filepath.Abs(path); err == nil {
				return absPath
			}
		}
	}

	return ""
}

func loadEnvFile() {
	envPath := findEnvFile()
	if envPath == "" {
		// Not an error, CI sets the environment directly.
		return
	}

	// Variables already in the environment take precedence.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that credentials accompany a remote target.
func validateRequiredFields(config *Config) error {
	if config.UseFake() {
		return nil
	}

	var missing []string

	required := map[string]string{
		"FOODY_USERNAME": config.Username,
		"FOODY_PASSWORD": config.Password,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		slices.Sort(missing)

		return fmt.Errorf("%w: %s. Please set these environment variables or add them to a .env file", ErrMissing, strings.Join(missing, ", "))
	}

	return nil
}
