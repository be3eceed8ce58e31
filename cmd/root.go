package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pyrafetch/pyrafetch/internal/config"
	"github.com/pyrafetch/pyrafetch/internal/pyramid"
	"github.com/pyrafetch/pyrafetch/internal/sysinfo"
	"github.com/pyrafetch/pyrafetch/internal/tui"
	"github.com/pyrafetch/pyrafetch/internal/utils"

	"github.com/spf13/cobra"
)

// Version information - set via ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "pyrafetch",
	Short:   "Print system facts as a pyramid of gradient bars",
	Long:    `pyrafetch prints CPU, memory and OS facts as a small pyramid of colored bars, one static frame per run.`,
	Version: Version,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		noColor, _ := cmd.Flags().GetBool("no-color")
		profileFlag, _ := cmd.Flags().GetString("color-profile")
		debug, _ := cmd.Flags().GetBool("debug")

		settings, err := loadSettings(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
			os.Exit(1)
		}

		if debug {
			initializeLogging(settings)
		}

		switch {
		case noColor:
			settings.General.ColorProfile = config.ProfileASCII
		case profileFlag != "":
			settings.General.ColorProfile = profileFlag
		}
		if err := settings.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := renderFrame(cmd.OutOrStdout(), settings, sysinfo.Collect()); err != nil {
			utils.Debug("Render failed: %v", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// renderFrame builds one pyramid from snap and writes it to w
func renderFrame(w io.Writer, settings *config.Settings, snap sysinfo.Snapshot) error {
	styler, err := tui.NewStyler(w, settings.General.ColorProfile)
	if err != nil {
		return err
	}

	lines, err := tui.BuildLines(snap, settings, tui.NewStyles(styler.Renderer()))
	if err != nil {
		return err
	}
	utils.Debug("Rendering %d metric lines with profile %s", len(lines), settings.General.ColorProfile)

	return pyramid.New(lines...).Render(w, styler)
}

// settingsPath returns the --config override or the default location
func settingsPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.GetSettingsPath()
}

func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	return config.LoadSettingsFrom(settingsPath(cmd))
}

// initializeLogging enables the debug log and trims old log files
func initializeLogging(settings *config.Settings) {
	if err := config.EnsureDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %v\n", err)
		return
	}

	utils.ConfigureDebug(config.GetLogsDir())
	utils.CleanupLogs(settings.General.LogRetentionCount)
	utils.Debug("pyrafetch %s (built %s)", Version, BuildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("no-color", false, "Disable all color output")
	rootCmd.Flags().String("color-profile", "", "Force a color profile: truecolor, ansi256, ansi, ascii")
	rootCmd.Flags().Bool("debug", false, "Write a debug log to the logs directory")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Settings file (default: user config dir)")
	rootCmd.SetVersionTemplate("pyrafetch version {{.Version}}\n")
}
