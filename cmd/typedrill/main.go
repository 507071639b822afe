// Package main provides the CLI entrypoint for typedrill.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dzherb/typedrill/internal/config"
	"github.com/dzherb/typedrill/internal/engine"
	"github.com/dzherb/typedrill/internal/model"
	"github.com/dzherb/typedrill/internal/stats"
	"github.com/dzherb/typedrill/internal/texts"
	"github.com/dzherb/typedrill/internal/tui"
)

const (
	defaultMode       = string(model.ModeFixedQuote)
	defaultDifficulty = string(model.DifficultyMedium)
	defaultSeconds    = 30
	defaultWords      = 25
)

var (
	practiceMode       string
	practiceDifficulty string
	practiceSeconds    int
	practiceWords      int
	practiceText       string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typedrill",
		Short:         "TUI typing speed trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceMode, "mode", defaultMode, "session mode: quote, timed, or words")
	rootCmd.Flags().StringVar(&practiceDifficulty, "difficulty", defaultDifficulty, "text difficulty: easy, medium, hard, or custom")
	rootCmd.Flags().IntVar(&practiceSeconds, "seconds", defaultSeconds, "target duration for timed mode")
	rootCmd.Flags().IntVar(&practiceWords, "words", defaultWords, "target word count for words mode")
	rootCmd.Flags().StringVar(&practiceText, "text", "", "custom practice text (implies custom difficulty)")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &practiceMode, fileCfg.Practice.Mode)
	applyStringConfig(cmd, "difficulty", &practiceDifficulty, fileCfg.Practice.Difficulty)
	applyIntConfig(cmd, "seconds", &practiceSeconds, fileCfg.Practice.Seconds)
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyStringConfig(cmd, "text", &practiceText, fileCfg.Practice.Text)

	if strings.TrimSpace(practiceText) != "" {
		practiceDifficulty = string(model.DifficultyCustom)
	}

	cfg := model.SessionConfig{
		Mode:            model.Mode(practiceMode),
		Difficulty:      model.Difficulty(practiceDifficulty),
		TargetSeconds:   practiceSeconds,
		TargetWordCount: practiceWords,
		SourceText:      practiceText,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	eng := engine.New(nil, texts.New())
	program := tea.NewProgram(tui.NewModel(eng, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if results := eng.History(); len(results) > 0 {
		if err := stats.RenderHistory(os.Stdout, results, 0); err != nil {
			return fmt.Errorf("failed to render history: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typedrill configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# mode = %q          # Session mode: quote, timed, or words
# difficulty = %q   # Text difficulty: easy, medium, hard, or custom
# seconds = %d           # Target duration for timed mode
# words = %d             # Target word count for words mode
# text = ""              # Custom practice text
`,
		defaultMode,
		defaultDifficulty,
		defaultSeconds,
		defaultWords,
	)
}

func validateConfig(cfg model.SessionConfig) error {
	switch cfg.Mode {
	case model.ModeFixedQuote, model.ModeTimed, model.ModeWordCount:
	default:
		return fmt.Errorf("--mode must be one of quote, timed, words")
	}
	switch cfg.Difficulty {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard, model.DifficultyCustom:
	default:
		return fmt.Errorf("--difficulty must be one of easy, medium, hard, custom")
	}
	if cfg.Mode == model.ModeTimed && cfg.TargetSeconds <= 0 {
		return fmt.Errorf("--seconds must be > 0")
	}
	if cfg.Mode == model.ModeWordCount && cfg.TargetWordCount <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	return nil
}
