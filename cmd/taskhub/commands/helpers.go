package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"
	"github.com/taskhub-io/taskhub-client/internal/constants"
	"github.com/taskhub-io/taskhub-client/pkg/taskapi"
	"github.com/taskhub-io/taskhub-client/pkg/taskclient"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required (use --api or 'taskhub config set api <url>')")
	ErrNotAuthenticated    = errors.New("not authenticated (use 'taskhub login' first)")
	ErrEmailRequired       = errors.New("email is required")
	ErrConfigKeyUnknown    = errors.New("unknown config key")
)

// CLIConfig is the persisted CLI configuration.
type CLIConfig struct {
	API    string `yaml:"api,omitempty"`
	Token  string `yaml:"token,omitempty"`
	Output string `yaml:"output,omitempty"`
}

// configFilePath returns the config file in use, defaulting to
// ~/.taskhub/config.yml.
func configFilePath() (string, error) {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".taskhub", "config.yml"), nil
}

// loadCLIConfig reads the persisted configuration. A missing file yields an
// empty config.
func loadCLIConfig() (*CLIConfig, error) {
	path, err := configFilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &CLIConfig{}, nil
		}

		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config CLIConfig

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &config, nil
}

// saveCLIConfig writes the configuration back, creating the config
// directory when needed. The file holds a session token, so it is not
// group or world readable.
func saveCLIConfig(config *CLIConfig) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// effectiveAPI returns the API endpoint from flags, environment, or the
// persisted config.
func effectiveAPI() (string, error) {
	if api := viper.GetString("api"); api != "" {
		return api, nil
	}

	config, err := loadCLIConfig()
	if err != nil {
		return "", err
	}

	if config.API == "" {
		return "", ErrAPIEndpointRequired
	}

	return config.API, nil
}

// effectiveToken returns the session token from flags, environment, or the
// persisted config. The empty string means anonymous.
func effectiveToken() string {
	if token := viper.GetString("token"); token != "" {
		return token
	}

	config, err := loadCLIConfig()
	if err != nil {
		return ""
	}

	return config.Token
}

// CreateClient creates an API client from the effective configuration. The
// session starts with the persisted token, which may be empty.
func CreateClient(ctx context.Context) (taskapi.Client, error) {
	api, err := effectiveAPI()
	if err != nil {
		return nil, err
	}

	config := &taskapi.Config{
		APIEndpoint: api,
		AccessToken: effectiveToken(),
		Debug:       viper.GetBool("verbose"),
	}

	if config.Debug {
		config.Logger = newStderrLogger()
	}

	client, err := taskclient.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// CreateAuthenticatedClient creates a client and fails fast when no session
// token is available.
func CreateAuthenticatedClient(ctx context.Context) (taskapi.Client, error) {
	if effectiveToken() == "" {
		return nil, ErrNotAuthenticated
	}

	return CreateClient(ctx)
}

// persistToken stores the session token in the config file. An empty token
// clears it.
func persistToken(token string) error {
	config, err := loadCLIConfig()
	if err != nil {
		return err
	}

	config.Token = token

	return saveCLIConfig(config)
}

// StandardJSONRenderer encodes data as indented JSON on stdout.
func StandardJSONRenderer(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer encodes data as YAML on stdout.
func StandardYAMLRenderer(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	return nil
}

// printValidationErrors writes a field → message map to stderr in a stable
// order and returns a terminal error.
func printValidationErrors(errs map[string]string) error {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	for _, field := range fields {
		fmt.Fprintf(os.Stderr, "%s: %s\n", field, errs[field])
	}

	return errors.New("validation failed")
}

// stderrLogger adapts verbose CLI output to the client's Logger interface.
type stderrLogger struct{}

func newStderrLogger() *stderrLogger {
	return &stderrLogger{}
}

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s", level, msg)

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(os.Stderr, " %s=%v", key, fields[key])
	}

	fmt.Fprintln(os.Stderr)
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

func (l *stderrLogger) Info(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

func (l *stderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

func (l *stderrLogger) Error(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}
