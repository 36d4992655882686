// Package main provides the CLI entrypoint for wordforge.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wordforge/internal/config"
	"github.com/verte-zerg/wordforge/internal/dictionary"
	"github.com/verte-zerg/wordforge/internal/model"
	"github.com/verte-zerg/wordforge/internal/pattern"
	"github.com/verte-zerg/wordforge/internal/report"
	"github.com/verte-zerg/wordforge/internal/store"
	"github.com/verte-zerg/wordforge/internal/tui"
)

const sampleSize = 20

var (
	genSeeds        []string
	genUsernameFile string
	genUseDates     bool
	genStartYear    int
	genEndYear      int
	genUseCommon    bool
	genUseKeyboard  bool
	genLeet         bool
	genUppercase    bool
	genNumbers      bool
	genSpecial      bool
	genOutput       string
	genMaxWords     int

	historyLast int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordforge",
		Short: "Targeted password-wordlist generator",
		Long: "wordforge expands seed words into a candidate password list using\n" +
			"common construction habits (dates, numbers, keyboard walks, leet-speak).\n" +
			"For authorized security testing and password-policy auditing only.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGenerateCmd,
	}

	rootCmd.Flags().StringSliceVar(&genSeeds, "seed", nil, "seed word (repeatable or comma-separated)")
	rootCmd.Flags().StringVar(&genUsernameFile, "usernames", "", "username file, one name per line")
	rootCmd.Flags().BoolVar(&genUseDates, "dates", false, "combine seeds with year/month/day patterns")
	rootCmd.Flags().IntVar(&genStartYear, "start-year", model.DefaultStartYear, "first year for date patterns")
	rootCmd.Flags().IntVar(&genEndYear, "end-year", model.DefaultEndYear, "last year for date patterns")
	rootCmd.Flags().BoolVar(&genUseCommon, "common", false, "include common breached passwords")
	rootCmd.Flags().BoolVar(&genUseKeyboard, "keyboard", false, "include keyboard walking patterns")
	rootCmd.Flags().BoolVar(&genLeet, "leet", false, "apply leet-speak mutations to seeds")
	rootCmd.Flags().BoolVar(&genUppercase, "uppercase", false, "apply case variations to seeds")
	rootCmd.Flags().BoolVar(&genNumbers, "numbers", false, "append number suffixes to seeds")
	rootCmd.Flags().BoolVar(&genSpecial, "special", false, "apply special-character decorations to seeds")
	rootCmd.Flags().StringVar(&genOutput, "output", config.DefaultOutputPath(), "output wordlist path")
	rootCmd.Flags().IntVar(&genMaxWords, "max-words", model.DefaultMaxWords, "maximum words to save (0 = unlimited)")

	rootCmd.AddCommand(newMenuCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runGenerateCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringSliceConfig(cmd, "seed", &genSeeds, fileCfg.Generate.SeedWords)
	applyStringConfig(cmd, "usernames", &genUsernameFile, fileCfg.Generate.UsernameFile)
	applyBoolConfig(cmd, "dates", &genUseDates, fileCfg.Generate.UseDates)
	applyIntConfig(cmd, "start-year", &genStartYear, fileCfg.Generate.StartYear)
	applyIntConfig(cmd, "end-year", &genEndYear, fileCfg.Generate.EndYear)
	applyBoolConfig(cmd, "common", &genUseCommon, fileCfg.Generate.UseCommon)
	applyBoolConfig(cmd, "keyboard", &genUseKeyboard, fileCfg.Generate.UseKeyboard)
	applyBoolConfig(cmd, "leet", &genLeet, fileCfg.Generate.LeetSpeak)
	applyBoolConfig(cmd, "uppercase", &genUppercase, fileCfg.Generate.Uppercase)
	applyBoolConfig(cmd, "numbers", &genNumbers, fileCfg.Generate.Numbers)
	applyBoolConfig(cmd, "special", &genSpecial, fileCfg.Generate.Special)
	applyStringConfig(cmd, "output", &genOutput, fileCfg.Generate.OutputFile)
	applyIntConfig(cmd, "max-words", &genMaxWords, fileCfg.Generate.MaxWords)

	seeds := append([]string(nil), genSeeds...)
	seeds = append(seeds, args...)

	cfg := model.GenerationConfig{
		SeedWords:    seeds,
		UsernameFile: genUsernameFile,
		UseDates:     genUseDates,
		StartYear:    genStartYear,
		EndYear:      genEndYear,
		UseCommon:    genUseCommon,
		UseKeyboard:  genUseKeyboard,
		Mutations: model.MutationConfig{
			LeetSpeak: genLeet,
			Uppercase: genUppercase,
			Numbers:   genNumbers,
			Special:   genSpecial,
		},
		OutputFile: genOutput,
		MaxWords:   genMaxWords,
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}
	return runGeneration(cmd, cfg)
}

func validateConfig(cfg model.GenerationConfig) error {
	if len(cfg.SeedWords) == 0 {
		return fmt.Errorf("at least one seed word is required (--seed or config file)")
	}
	if cfg.UseDates && cfg.EndYear < cfg.StartYear {
		return fmt.Errorf("--end-year must not precede --start-year")
	}
	if cfg.MaxWords < 0 {
		return fmt.Errorf("--max-words must be >= 0")
	}
	if cfg.OutputFile == "" {
		return fmt.Errorf("--output must not be empty")
	}
	return nil
}

// runGeneration executes one generation run, prints statistics and a
// sample, saves the list, and records the run in the history store.
func runGeneration(cmd *cobra.Command, cfg model.GenerationConfig) error {
	patterns := pattern.New(pattern.DefaultTables())
	gen := dictionary.New(patterns, os.Stderr)

	startedAt := time.Now()
	count, err := gen.Generate(cfg)
	if err != nil {
		if errors.Is(err, dictionary.ErrNoSeedWords) {
			return fmt.Errorf("nothing generated: %w", err)
		}
		return fmt.Errorf("generation failed: %w", err)
	}
	endedAt := time.Now()
	logErrf("Generated %d unique candidates\n", count)

	stats, ok := gen.Statistics()
	if !ok {
		return fmt.Errorf("no candidates generated")
	}
	out := cmd.OutOrStdout()
	if err := report.RenderStatistics(out, stats); err != nil {
		return fmt.Errorf("failed to render statistics: %w", err)
	}
	if err := report.RenderSample(out, gen.Words(), sampleSize); err != nil {
		return fmt.Errorf("failed to render sample: %w", err)
	}

	if err := gen.SaveToFile(cfg.OutputFile, cfg.MaxWords); err != nil {
		return fmt.Errorf("failed to save wordlist: %w", err)
	}

	recordRun(cfg, stats, startedAt, endedAt)
	return nil
}

// recordRun stores the run summary. History is best-effort and never
// fails the generation.
func recordRun(cfg model.GenerationConfig, stats model.GenerationStats, startedAt, endedAt time.Time) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open history db: %v\n", err)
		return
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close history db: %v\n", cerr)
		}
	}()

	run := model.RunRecord{
		StartedAt:  startedAt,
		EndedAt:    endedAt,
		SeedCount:  len(cfg.SeedWords),
		TotalWords: stats.TotalWords,
		MinLength:  stats.MinLength,
		MaxLength:  stats.MaxLength,
		AvgLength:  stats.AvgLength,
		BaseWords:  stats.BaseWords,
		DatePats:   stats.DatePatterns,
		Mutations:  stats.Mutations,
		OutputFile: cfg.OutputFile,
		MaxWords:   cfg.MaxWords,
		DurationMs: endedAt.Sub(startedAt).Milliseconds(),
	}
	if _, err := st.InsertRun(context.Background(), run); err != nil {
		logErrf("failed to record run: %v\n", err)
	}
}

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Assemble a generation interactively",
		Args:  cobra.NoArgs,
		RunE:  runMenuCmd,
	}
}

func runMenuCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	defaults := menuDefaults(fileCfg)

	wizard := tui.NewModel(defaults)
	program := tea.NewProgram(wizard)
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run menu: %w", err)
	}
	result, ok := final.(*tui.Model)
	if !ok || result.Aborted || !result.Done {
		logErrln("aborted")
		return nil
	}
	return runGeneration(cmd, result.Config())
}

// menuDefaults seeds the wizard with config-file values over built-in
// defaults.
func menuDefaults(fileCfg config.FileConfig) model.GenerationConfig {
	defaults := model.GenerationConfig{
		StartYear:  model.DefaultStartYear,
		EndYear:    model.DefaultEndYear,
		OutputFile: config.DefaultOutputPath(),
		MaxWords:   model.DefaultMaxWords,
	}
	gen := fileCfg.Generate
	if gen.SeedWords != nil {
		defaults.SeedWords = append([]string(nil), (*gen.SeedWords)...)
	}
	if gen.UsernameFile != nil {
		defaults.UsernameFile = *gen.UsernameFile
	}
	if gen.UseDates != nil {
		defaults.UseDates = *gen.UseDates
	}
	if gen.StartYear != nil {
		defaults.StartYear = *gen.StartYear
	}
	if gen.EndYear != nil {
		defaults.EndYear = *gen.EndYear
	}
	if gen.UseCommon != nil {
		defaults.UseCommon = *gen.UseCommon
	}
	if gen.UseKeyboard != nil {
		defaults.UseKeyboard = *gen.UseKeyboard
	}
	if gen.LeetSpeak != nil {
		defaults.Mutations.LeetSpeak = *gen.LeetSpeak
	}
	if gen.Uppercase != nil {
		defaults.Mutations.Uppercase = *gen.Uppercase
	}
	if gen.Numbers != nil {
		defaults.Mutations.Numbers = *gen.Numbers
	}
	if gen.Special != nil {
		defaults.Mutations.Special = *gen.Special
	}
	if gen.OutputFile != nil {
		defaults.OutputFile = *gen.OutputFile
	}
	if gen.MaxWords != nil {
		defaults.MaxWords = *gen.MaxWords
	}
	return defaults
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past generation runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N runs")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open history db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close history db: %v\n", cerr)
		}
	}()

	runs, err := st.ListRuns(context.Background(), historyLast)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	return report.RenderHistory(cmd.OutOrStdout(), runs, terminalWidth())
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

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0
	}
	return width
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

func applyStringSliceConfig(cmd *cobra.Command, name string, target *[]string, value *[]string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = append([]string(nil), (*value)...)
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

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordforge configuration
# Uncomment a value to enable it. CLI flags override config values.

[generate]
# seed-words = ["admin", "acme"]   # Seed words for expansion
# username-file = ""               # Username file, one name per line
# use-dates = false                # Combine seeds with date patterns
# start-year = %d                # First year for date patterns
# end-year = %d                  # Last year for date patterns
# use-common = false               # Include common breached passwords
# use-keyboard = false             # Include keyboard walking patterns
# leet = false                     # Leet-speak mutations
# uppercase = false                # Case variations
# numbers = false                  # Number suffixes
# special = false                  # Special-character decorations
# output = %q
# max-words = %d               # Maximum words to save (0 = unlimited)
`,
		model.DefaultStartYear,
		model.DefaultEndYear,
		config.DefaultOutputPath(),
		model.DefaultMaxWords,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
