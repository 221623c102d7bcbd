package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tomyanzhiyuan/cookieclickervision/internal/advisor"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/config"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/loader"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/models"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/rank"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/tui"
	"github.com/tomyanzhiyuan/cookieclickervision/pkg/format"
)

var (
	snapshotFile string
	configFile   string
	policyName   string
	logLevel     string
	quiet        bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "advisor",
		Short: "Cookie Clicker purchase advisor",
		Long: `A read-only analyzer that inspects a game-state snapshot,
estimates the payback time of every possible purchase and
recommends what to buy next. It never touches the game.`,
		Run: runAnalyze,
	}

	rootCmd.PersistentFlags().StringVarP(&snapshotFile, "snapshot", "s", "snapshot.json", "Path to snapshot JSON file")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to YAML config file with tunables")
	rootCmd.PersistentFlags().StringVarP(&policyName, "policy", "p", "", "Ranking policy override (greedy, relaxed)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")

	candidatesCmd := &cobra.Command{
		Use:   "candidates",
		Short: "Dump every candidate unranked, for inspection",
		Run:   runCandidates,
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-analyze the snapshot file on an interval in a live view",
		Run:   runWatch,
	}
	watchCmd.Flags().DurationVar(&tui.WatchInterval, "interval", tui.WatchInterval, "Re-analysis interval")

	rootCmd.AddCommand(candidatesCmd, watchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads config, logging and the advisor; shared by all subcommands
func setup() (*config.Configuration, *zap.Logger, *advisor.Advisor) {
	conf, err := config.LoadConfiguration(configFile)
	if err != nil {
		color.Red("Error loading config: %v", err)
		os.Exit(1)
	}
	if policyName != "" {
		conf.Policy = policyName
	}
	if err := conf.Validate(); err != nil {
		color.Red("Invalid config: %v", err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, logLevel)
	if err != nil {
		color.Red("Error initializing logger: %v", err)
		os.Exit(1)
	}

	adv := advisor.New(advisor.Options{
		Assumptions:  conf.EconomyAssumptions(),
		Policy:       conf.RankingPolicy(),
		Alternatives: conf.Alternatives,
		Logger:       logger,
	})
	return conf, logger, adv
}

// initializeLogger creates a zap logger from config with a CLI override
func initializeLogger(loggingConfig config.LoggingConfig, levelOverride string) (*zap.Logger, error) {
	level := loggingConfig.Level
	if levelOverride != "" {
		level = levelOverride
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "", "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	var zapConfig zap.Config
	switch loggingConfig.Format {
	case "", "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", loggingConfig.Format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	return zapConfig.Build()
}

func runAnalyze(cmd *cobra.Command, args []string) {
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen, color.Bold)

	if !quiet {
		titleColor.Println("\n╭───────────────────────────╮")
		titleColor.Println("│  Cookie Clicker Vision    │")
		titleColor.Println("│  Purchase Advisor         │")
		titleColor.Println("╰───────────────────────────╯")
		fmt.Println()
	}

	_, logger, adv := setup()
	defer func() { _ = logger.Sync() }()

	snap, err := loader.LoadSnapshot(snapshotFile)
	if err != nil {
		color.Red("Error loading snapshot: %v", err)
		os.Exit(1)
	}

	rec, err := adv.Analyze(snap)
	if err != nil {
		// An empty greedy result is worth a second look with the
		// relaxed policy before giving up.
		if f, ok := advisor.FailureOf(err); ok && f.Kind == advisor.NoCandidates && adv.PolicyName() == rank.GreedyName {
			color.Yellow("⚠ No purchase pays back within the ceiling; retrying with relaxed policy")
			adv.SetPolicy(rank.NewRelaxed())
			rec, err = adv.Analyze(snap)
		}
	}
	if err != nil {
		explainFailure(err)
		os.Exit(1)
	}

	if !quiet {
		printState(rec.State)
	}

	successColor.Printf("✓ Buy next: %s\n", rec.Top.Name)
	fmt.Printf("   Cost: %s | Gain: %s/s | Payback: %s | %s\n",
		format.Cookies(rec.Top.Cost),
		format.Cookies(rec.Top.RateDelta),
		format.Duration(rec.Top.PaybackTime),
		affordability(rec.Top, rec.State))

	if len(rec.Alternatives) > 0 {
		fmt.Println()
		printCandidateTable(rec.Alternatives, rec.State)
	}

	if !quiet {
		fmt.Printf("\n📐 Policy: %s\n", rec.Policy)
	}
}

func runCandidates(cmd *cobra.Command, args []string) {
	_, logger, adv := setup()
	defer func() { _ = logger.Sync() }()

	snap, err := loader.LoadSnapshot(snapshotFile)
	if err != nil {
		color.Red("Error loading snapshot: %v", err)
		os.Exit(1)
	}

	candidates, err := adv.ListCandidates(snap)
	if err != nil {
		explainFailure(err)
		os.Exit(1)
	}

	if !quiet {
		color.New(color.FgYellow).Printf("📋 %d candidates (unranked)\n\n", len(candidates))
	}
	printCandidateTable(candidates, nil)
}

func runWatch(cmd *cobra.Command, args []string) {
	conf, logger, adv := setup()
	defer func() { _ = logger.Sync() }()

	if err := tui.Watch(adv, snapshotFile, conf); err != nil {
		color.Red("Watch failed: %v", err)
		os.Exit(1)
	}
}

func printState(state *models.NormalizedState) {
	infoColor := color.New(color.FgYellow)
	infoColor.Println("📊 Snapshot:")
	fmt.Printf("   Bank: %s cookies | Rate: %s/s | Buildings: %d | Upgrades: %d\n\n",
		format.Cookies(state.Currency),
		format.Cookies(state.Rate),
		len(state.Buildings),
		len(state.Upgrades))
}

func printCandidateTable(candidates []models.Candidate, state *models.NormalizedState) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Kind", "Name", "Cost", "Gain/s", "Payback", "Owned"}),
	)

	for i, c := range candidates {
		owned := ""
		if c.Kind == models.KindBuilding {
			owned = fmt.Sprintf("%d", c.Owned)
		}
		name := c.Name
		if state != nil && !affordableNow(c, state) {
			name = name + " 🔒"
		}
		row := []string{
			fmt.Sprintf("%d", i+1),
			string(c.Kind),
			name,
			format.Cookies(c.Cost),
			format.Cookies(c.RateDelta),
			format.Duration(c.PaybackTime),
			owned,
		}
		_ = table.Append(row)
	}

	_ = table.Render()
}

func affordableNow(c models.Candidate, state *models.NormalizedState) bool {
	return c.Cost <= state.Currency
}

// affordability renders wallet context for the top pick, including a
// rough time-to-afford at the current rate
func affordability(c models.Candidate, state *models.NormalizedState) string {
	if affordableNow(c, state) {
		return "affordable now"
	}
	missing := c.Cost - state.Currency
	if state.Rate <= 0 {
		return "not affordable (no income)"
	}
	return fmt.Sprintf("affordable in %s", format.Duration(missing/state.Rate))
}

func explainFailure(err error) {
	f, ok := advisor.FailureOf(err)
	if !ok {
		color.Red("Analysis failed: %v", err)
		return
	}
	switch f.Kind {
	case advisor.InvalidSource:
		color.Red("✗ Snapshot unusable: %v", f.Err)
	case advisor.NoCandidates:
		color.Yellow("✗ Nothing to recommend: %v", f.Err)
	case advisor.PolicyFailure:
		color.Red("✗ Ranking policy broke: %v", f.Err)
	default:
		color.Red("✗ Analysis failed: %v", err)
	}
}
