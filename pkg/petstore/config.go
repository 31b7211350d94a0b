/*
Copyright 2026 the Petstore API Tests Authors.

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

package petstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/KovalIllia/petstore-api-tests/pkg/waiter"
)

// ErrInvalidConfig is returned when one or more settings cannot be parsed.
var ErrInvalidConfig = errors.New("invalid test configuration")

// PollPolicies are the wait budgets used by the suites, one per call site.
type PollPolicies struct {
	// Pet bounds read-back waits on /pet/{petId}.
	Pet waiter.Policy
	// Order bounds read-back waits on /store/order/{orderId}.
	Order waiter.Policy
	// Update bounds update-with-retry.
	Update waiter.Policy
}

// DefaultPollPolicies match the budgets the suites were tuned against on the
// public pet store.
func DefaultPollPolicies() PollPolicies {
	return PollPolicies{
		Pet:    waiter.DefaultPolicy,
		Order:  waiter.Policy{MaxAttempts: 20, Delay: 4 * time.Second},
		Update: waiter.DefaultUpdatePolicy,
	}
}

type Config struct {
	// BaseURL of the store including the /v2 prefix. Empty means the suites
	// start an in-process fake store.
	BaseURL           string
	RequestTimeout    time.Duration
	TestTimeout       time.Duration
	RequestsPerSecond float64
	PolicyFile        string
	Policies          PollPolicies
	SkipIntegration   bool
	TolerateUnstable  bool
	ValidateContract  bool
	DebugLogging      bool
	LogRequests       bool
	LogResponses      bool
	FakeBackendLag    int
}

// UseFakeBackend is true when no remote store is configured.
func (c *Config) UseFakeBackend() bool {
	return c.BaseURL == ""
}

// LoadConfig loads configuration from environment variables and .env files.
// Every malformed value is reported in the returned error.
func LoadConfig() (*Config, error) {
	loadEnvFile()

	env := &envReader{}

	config := &Config{
		BaseURL:           strings.TrimSuffix(os.Getenv("API_BASE_URL"), "/"),
		RequestTimeout:    env.durationVar("REQUEST_TIMEOUT", 30*time.Second),
		TestTimeout:       env.durationVar("TEST_TIMEOUT", 20*time.Minute),
		RequestsPerSecond: env.floatVar("REQUESTS_PER_SECOND", 0),
		PolicyFile:        os.Getenv("POLICY_FILE"),
		Policies:          DefaultPollPolicies(),
		SkipIntegration:   env.boolVar("SKIP_INTEGRATION", false),
		TolerateUnstable:  env.boolVar("TOLERATE_UNSTABLE", false),
		ValidateContract:  env.boolVar("VALIDATE_CONTRACT", true),
		DebugLogging:      env.boolVar("DEBUG_LOGGING", false),
		LogRequests:       env.boolVar("LOG_REQUESTS", false),
		LogResponses:      env.boolVar("LOG_RESPONSES", false),
		FakeBackendLag:    env.intVar("FAKE_BACKEND_LAG", 2),
	}

	if config.PolicyFile != "" {
		policies, err := LoadPollPolicies(config.PolicyFile, config.Policies)
		if err != nil {
			env.problems = append(env.problems, err.Error())
		} else {
			config.Policies = policies
		}
	}

	if err := validate(config, env.problems); err != nil {
		return nil, err
	}

	return config, nil
}

// envReader parses typed environment variables, remembering what failed so
// everything can be reported at once.
type envReader struct {
	problems []string
}

func (r *envReader) fail(key, value string, err error) {
	r.problems = append(r.problems, fmt.Sprintf("%s=%q: %v", key, value, err))
}

func (r *envReader) durationVar(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		r.fail(key, value, err)
		return defaultValue
	}

	return duration
}

func (r *envReader) boolVar(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		r.fail(key, value, err)
		return defaultValue
	}

	return boolValue
}

func (r *envReader) intVar(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		r.fail(key, value, err)
		return defaultValue
	}

	return intValue
}

func (r *envReader) floatVar(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		r.fail(key, value, err)
		return defaultValue
	}

	return floatValue
}

func loadEnvFile() {
	envPaths := []string{
		".env",
		"../.env",
		"../../.env", // From test/api/suites directory
		"../../../.env",
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Existing environment wins over the file.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

func validate(config *Config, problems []string) error {
	if config.RequestTimeout <= 0 {
		problems = append(problems, "REQUEST_TIMEOUT must be positive")
	}

	if config.TestTimeout <= 0 {
		problems = append(problems, "TEST_TIMEOUT must be positive")
	}

	if config.RequestsPerSecond < 0 {
		problems = append(problems, "REQUESTS_PER_SECOND must not be negative")
	}

	if config.FakeBackendLag < 0 {
		problems = append(problems, "FAKE_BACKEND_LAG must not be negative")
	}

	if err := config.Policies.Pet.Validate(); err != nil {
		problems = append(problems, fmt.Sprintf("pet policy: %v", err))
	}

	if err := config.Policies.Order.Validate(); err != nil {
		problems = append(problems, fmt.Sprintf("order policy: %v", err))
	}

	if err := config.Policies.Update.Validate(); err != nil {
		problems = append(problems, fmt.Sprintf("update policy: %v", err))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s. Please fix these environment variables or the .env file", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)

	return nil
}

type policyFileEntry struct {
	MaxAttempts *int      `yaml:"maxAttempts"`
	Delay       *Duration `yaml:"delay"`
}

func (e *policyFileEntry) apply(p waiter.Policy) waiter.Policy {
	if e == nil {
		return p
	}

	if e.MaxAttempts != nil {
		p.MaxAttempts = *e.MaxAttempts
	}

	if e.Delay != nil {
		p.Delay = time.Duration(*e.Delay)
	}

	return p
}

type policyFile struct {
	Pet    *policyFileEntry `yaml:"pet"`
	Order  *policyFileEntry `yaml:"order"`
	Update *policyFileEntry `yaml:"update"`
}

// LoadPollPolicies overlays the policies in a YAML file on top of defaults.
// Keys that are absent keep their default value, e.g.
//
//	pet:
//	  maxAttempts: 30
//	  delay: 2s
//	update:
//	  delay: 500ms
func LoadPollPolicies(path string, defaults PollPolicies) (PollPolicies, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaults, fmt.Errorf("reading policy file: %w", err)
	}

	var file policyFile

	if err := yaml.Unmarshal(data, &file); err != nil {
		return defaults, fmt.Errorf("parsing policy file %s: %w", path, err)
	}

	return PollPolicies{
		Pet:    file.Pet.apply(defaults.Pet),
		Order:  file.Order.apply(defaults.Order),
		Update: file.Update.apply(defaults.Update),
	}, nil
}
