// Config loading for the tower CLI.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/tower/internal/catalog"
	"github.com/mesh-intelligence/tower/internal/paths"
	"github.com/mesh-intelligence/tower/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyBackend = "backend"
	cfgKeyDataDir = "data_dir"
)

// defaultConfigHeader precedes the generated default config.yaml.
const defaultConfigHeader = `# tower configuration
#
# backend:      storage backend (only "sqlite" is available)
# data_dir:     data directory; overridden by --data-dir
# age_brackets: ordered fuzzy age brackets used by "tower classify".
#   shape triangular takes params [a, b, c], trapezoidal [a, b, c, d],
#   ramp and ramp_down take [start, end]; shape points takes a list of
#   {x, degree} breakpoints instead of params.

`

// fileConfig is the on-disk layout of config.yaml.
type fileConfig struct {
	Backend     string               `yaml:"backend" json:"backend"`
	ConfigDir   string               `yaml:"config_dir,omitempty" json:"config_dir,omitempty"`
	DataDir     string               `yaml:"data_dir,omitempty" json:"data_dir,omitempty"`
	AgeBrackets []catalog.Definition `yaml:"age_brackets" json:"age_brackets"`
}

// loadConfig reads config.yaml from configDir using Viper. It creates the
// directory and a default config.yaml on first run. A missing config.yaml is
// not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile writes the default config.yaml when the file does
// not exist yet.
func ensureDefaultConfigFile(configDir string) error {
	path := paths.ConfigFile(configDir)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	content, err := defaultConfigYAML()
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}

// defaultConfigYAML renders the header and the default settings.
func defaultConfigYAML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(defaultConfigHeader)
	if err := encodeYAML(&buf, fileConfig{
		Backend:     types.BackendSQLite,
		AgeBrackets: catalog.DefaultDefinitions(),
	}); err != nil {
		return nil, fmt.Errorf("render default config: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeYAML(buf *bytes.Buffer, v any) error {
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the tower configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Show prints the configuration after applying flags, environment variables
and defaults, including the age brackets used for classification.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := resolveDataDir()
		if err != nil {
			return sysError(err)
		}
		defs, err := catalog.Definitions(config)
		if err != nil {
			return userError(err)
		}
		effective := fileConfig{
			Backend:     config.GetString(cfgKeyBackend),
			ConfigDir:   configDirPath,
			DataDir:     dataDir,
			AgeBrackets: defs,
		}
		if flagJSON {
			return printJSON(cmd, effective)
		}
		var buf bytes.Buffer
		if err := encodeYAML(&buf, effective); err != nil {
			return sysError(err)
		}
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
