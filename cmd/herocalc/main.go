package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Behamot007/herocalc/internal/combat"
	"github.com/Behamot007/herocalc/internal/config"
	"github.com/Behamot007/herocalc/internal/console"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "herocalc",
	Short: "Interactive solver front end for ingame hero battles",
	Long: `herocalc resolves lineups you type (or replay from a macro file) into
solve instances, searches for an army that beats each target and prints the
solution together with a replay string the ingame tournament page accepts.

Input lines may carry trailing "#" comments; type help at any prompt for
context-sensitive help.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if viper.GetString("output-level") == "debug" {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSession,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "catalog data directory (empty uses the built-in catalog)")
	flags.String("macro", "", "macro file replayed instead of typed input")
	flags.Bool("show-input", false, "echo prompts and consumed lines while a macro file runs")
	flags.String("output-level", "basic", "verbosity: vital|solution|basic|detailed|debug")
	flags.Bool("halt-on-exit", false, "wait for enter before exiting")

	viper.SetEnvPrefix("HEROCALC")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("macro", flags.Lookup("macro"))
	_ = viper.BindPFlag("show-input", flags.Lookup("show-input"))
	_ = viper.BindPFlag("output-level", flags.Lookup("output-level"))
	_ = viper.BindPFlag("halt-on-exit", flags.Lookup("halt-on-exit"))
}

func loadCatalog() (*combat.Catalog, error) {
	dir := viper.GetString("config")
	var (
		mc  *config.MonstersConfig
		hc  *config.HeroesConfig
		qc  *config.QuestsConfig
		err error
	)
	if dir == "" {
		mc, hc, qc, err = config.LoadDefault()
	} else {
		mc, hc, qc, err = config.LoadAll(dir)
	}
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	logger.Debug("catalog loaded",
		zap.String("dir", dir),
		zap.Int("monsters", len(mc.Monsters)),
		zap.Int("heroes", len(hc.Heroes)),
		zap.Int("quests", len(qc.Quests)))
	return combat.NewCatalog(mc, hc, qc)
}

func runSession(cmd *cobra.Command, args []string) error {
	level, err := console.ParseOutputLevel(viper.GetString("output-level"))
	if err != nil {
		return err
	}
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	c := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), level, logger)
	if macro := viper.GetString("macro"); macro != "" {
		c.InitMacroFile(macro, viper.GetBool("show-input"))
	}

	var heroes []combat.MonsterRef
	if c.AskYesNoQuestion("Do you want to input your hero levels?", "Heroes strengthen your solutions but slow the search down.\n", console.LevelBasic, console.NegativeAnswer) {
		heroes = combat.TakeHeroLevelInput(c, cat)
	}

	solver := combat.NewBruteForceSolver(cat, logger)
	for {
		instances := combat.TakeInstanceInput(c, cat, "Enter lineup(s) to solve: ")
		for _, instance := range instances {
			c.TimedOutput("Calculating...", console.LevelBasic, 0, true)
			if err := solver.Solve(instance, heroes); err != nil {
				return err
			}
			c.FinishTimedOutput(console.LevelBasic)
			report, err := instance.Report(cat)
			if err != nil {
				return err
			}
			c.OutputMessage(report, console.LevelSolution, 0, false)
		}
		if !c.AskYesNoQuestion("Do you want to calculate another lineup?", "Answering n ends the session.\n", console.LevelBasic, console.NegativeAnswer) {
			break
		}
	}

	if viper.GetBool("halt-on-exit") {
		c.HaltExecution()
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
