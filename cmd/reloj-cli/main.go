// Command reloj-cli is the terminal client for the reloj-control service.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Zer0x25/reloj-control/client"
)

// Build-time variables set via ldflags.
var (
	version   = "0.1.0"
	commit    = ""
	buildDate = ""
)

const defaultURL = "http://localhost:4040"

var (
	apiClient *client.Client
	flagURL   string
	flagPIN   string
	flagFmt   string
	flagYes   bool
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("reloj version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("reloj version %s-dev", version)
}

type configFile struct {
	// Flat format
	URL      string `yaml:"url"`
	AdminPIN string `yaml:"admin_pin"`
	// Profile format
	Profiles      map[string]configProfile `yaml:"profiles"`
	ActiveProfile string                   `yaml:"active_profile"`
}

type configProfile struct {
	URL      string `yaml:"url"`
	AdminPIN string `yaml:"admin_pin"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "reloj",
		Short:   "Reloj Control CLI — time clock and shift log",
		Version: versionString(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			resolveConfig()
			var opts []client.Option
			if flagPIN != "" {
				opts = append(opts, client.WithAdminPIN(flagPIN))
			}
			apiClient = client.New(flagURL, opts...)
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagURL, "url", defaultURL, "Server URL (env: RELOJ_URL)")
	rootCmd.PersistentFlags().StringVar(&flagPIN, "pin", "", "Admin PIN (env: RELOJ_ADMIN_PIN)")
	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "json", "Output format: json|table|quiet")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompts")

	rootCmd.AddCommand(newEmployeeCmd())
	rootCmd.AddCommand(newClockCmd())
	rootCmd.AddCommand(newRecordCmd())
	rootCmd.AddCommand(newShiftCmd())
	rootCmd.AddCommand(newAuditCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveConfig() {
	// Flag takes precedence, then env, then config file.
	if flagURL == defaultURL {
		if v := os.Getenv("RELOJ_URL"); v != "" {
			flagURL = v
		}
	}
	if flagPIN == "" {
		flagPIN = os.Getenv("RELOJ_ADMIN_PIN")
	}

	// Try config file for any remaining defaults.
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	cfgPath := filepath.Join(home, ".reloj-control", "config.yaml")
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return
	}
	resolvedURL := cfg.URL
	resolvedPIN := cfg.AdminPIN
	if cfg.Profiles != nil {
		profileName := cfg.ActiveProfile
		if profileName == "" {
			profileName = "default"
		}
		if p, ok := cfg.Profiles[profileName]; ok {
			if p.URL != "" {
				resolvedURL = p.URL
			}
			if p.AdminPIN != "" {
				resolvedPIN = p.AdminPIN
			}
		}
	}
	if flagURL == defaultURL && resolvedURL != "" {
		flagURL = resolvedURL
	}
	if flagPIN == "" && resolvedPIN != "" {
		flagPIN = resolvedPIN
	}
}

// confirm asks the operator before a destructive action. Declining is a
// silent no-op exit.
func confirm(prompt string) bool {
	if flagYes {
		return true
	}
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	os.Exit(1)
}
