package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pders01/dsviz/internal/config"
	"github.com/pders01/dsviz/internal/debuglog"
	"github.com/pders01/dsviz/internal/structure"
	"github.com/pders01/dsviz/internal/tui"
)

// Version is the version of the application, set at build time
var Version = "dev"

var (
	configPath  string
	variantName string
	logLevel    string
	quiet       bool
)

var rootCmd = &cobra.Command{
	Use:   tui.AppName,
	Short: "Explore arrays, stacks, queues and linked lists in the terminal",
	Long: `dsviz opens an interactive page per data structure. Each page keeps a
small bounded collection of integers that you can grow, shrink and search
while the result of every operation is explained in the status line.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dsviz %s\n", Version)
		fmt.Println("Data structure visualizer")
		fmt.Println("github.com/pders01/dsviz")
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configGenCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the default configuration to ~/.config/dsviz/config.toml",
	Run: func(cmd *cobra.Command, args []string) {
		home, _ := os.UserHomeDir()
		configFile := filepath.Join(home, ".config", "dsviz", "config.toml")

		if err := config.GenerateDefaultConfig(configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Generated default configuration at: %s\n", configFile)
	},
}

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the available structures and their limits",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		printVariants(cmd.OutOrStdout(), catalog)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file")
	rootCmd.Flags().StringVar(&variantName, "variant", "", "open a structure directly (array, stack, queue, linkedlist)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "override log level (DEBUG, INFO, WARN, ERROR, OFF)")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "skip startup banner")

	configCmd.AddCommand(configGenCmd)
	rootCmd.AddCommand(versionCmd, configCmd, variantsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	if err := debuglog.Setup(debuglog.ParseLevel(cfg.Log.Level), cfg.Log.Path); err != nil {
		return fmt.Errorf("setting up log: %w", err)
	}
	defer debuglog.Close()

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	app := tui.NewApp(catalog, cfg)
	if variantName != "" {
		if err := app.OpenVariant(variantName); err != nil {
			return err
		}
	}

	if !quiet {
		tui.ShowBanner(cmd.OutOrStdout(), Version)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

// loadCatalog builds the structure catalog with the configured overrides.
func loadCatalog(cfg *config.Config) (*structure.Catalog, error) {
	catalog, err := structure.LoadCatalog(overridesFrom(cfg.Variants))
	if err != nil {
		return nil, fmt.Errorf("loading structures: %w", err)
	}
	return catalog, nil
}

func overridesFrom(variants map[string]config.VariantConfig) map[string]structure.Override {
	if len(variants) == 0 {
		return nil
	}
	out := make(map[string]structure.Override, len(variants))
	for name, vc := range variants {
		out[name] = structure.Override{
			Ceiling:  vc.Ceiling,
			Capacity: vc.Capacity,
			Seed:     vc.Seed,
		}
	}
	return out
}
