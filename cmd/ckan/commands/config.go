package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/ckan-client/internal/constants"
)

// Config represents the persisted CLI configuration.
type Config struct {
	URL    string `json:"url,omitempty"    yaml:"url,omitempty"`
	Token  string `json:"token,omitempty"  yaml:"token,omitempty"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// configSetters maps the keys accepted by "config set" to their fields.
var configSetters = map[string]func(*Config, string) error{
	"url": func(c *Config, v string) error {
		c.URL = strings.TrimRight(strings.TrimSpace(v), "/")

		return nil
	},
	"token": func(c *Config, v string) error {
		if v == "" {
			return constants.ErrEmptyToken
		}

		c.Token = v

		return nil
	},
	"output": func(c *Config, v string) error {
		switch v {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			c.Output = v

			return nil
		default:
			return fmt.Errorf("%w: %q", constants.ErrInvalidOutputType, v)
		}
	},
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the CKAN CLI configuration stored in $HOME/.ckan/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigSetTokenCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration with the token masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.Token != "" {
				config.Token = constants.MaskedSecret
			}

			format, err := outputFormat()
			if err != nil {
				return err
			}

			switch format {
			case constants.FormatJSON:
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")

				return encoder.Encode(config)
			case constants.FormatYAML:
				return writeYAML(cmd.OutOrStdout(), config)
			default:
				table := tablewriter.NewWriter(cmd.OutOrStdout())
				table.Header("Property", "Value")
				_ = table.Append([]string{"URL", formatConfigValue(config.URL)})
				_ = table.Append([]string{"Token", formatConfigValue(config.Token)})
				_ = table.Append([]string{"Output", formatConfigValue(config.Output)})
				_ = table.Append([]string{"Config File", formatConfigValue(viper.ConfigFileUsed())})

				return renderTable(table)
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of: url, token, output",
		Args:  cobra.ExactArgs(constants.MinimumKeyValueParts),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			path, err := saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", args[0], path)

			return nil
		},
	}
}

func newConfigSetTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-token [TOKEN]",
		Short: "Store an API token",
		Long:  "Store an API token. Without an argument the token is read from the terminal without echo.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var token string

			if len(args) == 1 {
				token = args[0]
			} else {
				fd := int(os.Stdin.Fd())
				if !term.IsTerminal(fd) {
					return constants.ErrNotATerminal
				}

				_, _ = fmt.Fprint(cmd.ErrOrStderr(), "API token: ")

				tokenBytes, err := term.ReadPassword(fd)

				_, _ = fmt.Fprintln(cmd.ErrOrStderr())

				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = strings.TrimSpace(string(tokenBytes))
			}

			config := loadConfig()

			err := setConfigValue(config, "token", token)
			if err != nil {
				return err
			}

			path, err := saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Token saved to %s\n", path)

			return nil
		},
	}
}

// loadConfig returns the effective configuration from viper.
func loadConfig() *Config {
	return &Config{
		URL:    viper.GetString("url"),
		Token:  viper.GetString("token"),
		Output: viper.GetString("output"),
	}
}

func setConfigValue(config *Config, key, value string) error {
	setter, ok := configSetters[strings.ToLower(key)]
	if !ok {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return setter(config, value)
}

// configFilePath returns the file in use, or $HOME/.ckan/config.yml.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

func saveConfig(config *Config) (string, error) {
	configFile, err := configFilePath()
	if err != nil {
		return "", err
	}

	err = writeConfigFile(configFile, config)
	if err != nil {
		return "", err
	}

	return configFile, nil
}

func writeConfigFile(configFile string, config *Config) error {
	err := os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func formatConfigValue(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
