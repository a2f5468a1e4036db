/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ponyo877/mockterm/internal/logging"
	"github.com/ponyo877/mockterm/widget/adaptor"
	"github.com/ponyo877/mockterm/widget/domain"
	"github.com/ponyo877/mockterm/widget/repository"
	"github.com/ponyo877/mockterm/widget/usecase"
)

var (
	cfgFile      string
	promptConfig = domain.DefaultPromptConfig()
)

const (
	userLabelKey = "user_label"
	hostLabelKey = "host_label"
	homeTokenKey = "home_token"
	mouseKey     = "mouse"
	logLevelKey  = "log_level"
	logFormatKey = "log_format"
	logFileKey   = "log_file"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mockterm",
	Short: "A decorative fake terminal with a mock file tree.",
	Long: `mockterm draws a fake shell prompt that understands three commands:

  ls         reveal the mock file tree
  cd <dir>   change the displayed path (cd .. goes up)
  clear      wipe the transcript

Anything else is echoed without output. Click folders in the tree to
expand or collapse them. Nothing touches the real file system.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(logging.Config{
			Level:      viper.GetString(logLevelKey),
			Format:     viper.GetString(logFormatKey),
			OutputPath: viper.GetString(logFileKey),
		}); err != nil {
			return fmt.Errorf("error initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		_ = logging.Sync()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTerminalUI(newSession(), viper.GetBool(mouseKey))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mockterm.yaml)")
	rootCmd.PersistentFlags().String("user", domain.DefaultUserLabel, "User shown in the prompt label")
	rootCmd.PersistentFlags().String("host", domain.DefaultHostLabel, "Host shown in the prompt label")
	rootCmd.PersistentFlags().String("home", domain.DefaultHomeToken, "Token displayed for the home directory")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "Log format (console, json)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file (default: discard)")
	rootCmd.Flags().Bool("mouse", true, "Enable mouse support")

	viper.BindPFlag(userLabelKey, rootCmd.PersistentFlags().Lookup("user"))
	viper.BindPFlag(hostLabelKey, rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag(homeTokenKey, rootCmd.PersistentFlags().Lookup("home"))
	viper.BindPFlag(logLevelKey, rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag(logFormatKey, rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag(logFileKey, rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag(mouseKey, rootCmd.Flags().Lookup("mouse"))
	viper.SetDefault(userLabelKey, domain.DefaultUserLabel)
	viper.SetDefault(hostLabelKey, domain.DefaultHostLabel)
	viper.SetDefault(homeTokenKey, domain.DefaultHomeToken)
	viper.SetDefault(mouseKey, true)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".mockterm" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mockterm")
	}

	viper.SetEnvPrefix("mockterm")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// Config file was found but another error was produced
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		}
	}

	promptConfig = domain.NewPromptConfig(
		viper.GetString(userLabelKey),
		viper.GetString(hostLabelKey),
		viper.GetString(homeTokenKey),
	)
}

func newSession() *usecase.Session {
	session := usecase.NewSession(repository.NewRepository(), promptConfig,
		usecase.WithLogger(logging.Named("session")))
	logging.L().Info("session started",
		zap.String("session", session.ID()),
		zap.String("prompt", promptConfig.Prompt(promptConfig.HomeToken)))
	return session
}

func runTerminalUI(term usecase.Terminal, mouse bool) error {
	app := tview.NewApplication()

	widget := adaptor.NewWidget(term, func(p tview.Primitive) {
		app.SetFocus(p)
	})
	card := adaptor.NewCard(adaptor.NewCardContent(widget.Primitive()))

	app.SetRoot(card, true).
		SetFocus(widget.Input()).
		EnableMouse(mouse)

	// Quit on Ctrl+C
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			app.Stop()
			return nil
		}
		return event
	})

	if err := app.Run(); err != nil {
		return fmt.Errorf("terminal UI error: %w", err)
	}
	logging.L().Info("session ended", zap.String("session", term.ID()))
	return nil
}
