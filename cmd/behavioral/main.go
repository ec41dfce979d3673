// Package main runs one behavioral enhancement batch from the command line.
// It reads profile inputs from flags, enhances a synthetic Monte Carlo outcome
// array, archives the run and prints the metrics as JSON. Intended for
// inspecting how a demographic preset reshapes outcomes; the engine itself is
// consumed as a library.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/exp/rand"

	"github.com/moneypath/behavioral/internal/config"
	"github.com/moneypath/behavioral/internal/database"
	"github.com/moneypath/behavioral/internal/modules/enhancer"
	"github.com/moneypath/behavioral/internal/modules/runs"
	"github.com/moneypath/behavioral/pkg/logger"
)

func main() {
	demographic := flag.String("demographic", "", "cohort preset: genz, millennial, midcareer, senior")
	trials := flag.Int("trials", 1000, "number of synthetic Monte Carlo trials")
	expenses := flag.Float64("expenses", 3000, "monthly expenses")
	fund := flag.Float64("fund", 10000, "emergency fund balance")
	seed := flag.Uint64("seed", 0, "RNG seed (0 uses BEHAVIORAL_SEED or the clock)")
	archive := flag.Bool("archive", false, "archive the run in the runs database")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.DevMode})

	if *demographic == "" {
		*demographic = cfg.DefaultDemographic
	}
	if *trials <= 0 || *trials > cfg.MaxTrials {
		log.Fatal().Int("trials", *trials).Int("max", cfg.MaxTrials).Msg("trial count out of range")
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = cfg.Seed
	}
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}
	src := rand.NewSource(rngSeed)

	e := enhancer.NewForDemographic(*demographic, src, logger.Component(log, "enhancer"))

	// Synthetic runway outcomes spread across the behavioral thresholds.
	rng := rand.New(rand.NewSource(rngSeed + 1))
	base := make([]float64, *trials)
	volatility := make([]float64, *trials)
	for i := range base {
		base[i] = rng.Float64() * 18.0
		volatility[i] = rng.Float64() * 0.3
	}

	adjusted, metrics, err := e.EnhanceEmergencyFund(base, enhancer.EmergencyProfile{
		MonthlyExpenses:      *expenses,
		EmergencyFundBalance: *fund,
		Demographic:          *demographic,
	}, enhancer.RandomFactors{IncomeVolatility: volatility})
	if err != nil {
		log.Fatal().Err(err).Msg("enhancement failed")
	}

	if *archive {
		db, err := database.New(database.Config{
			Path:    filepath.Join(cfg.DataDir, "runs.db"),
			Profile: database.ProfileStandard,
			Name:    "runs",
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open runs database")
		}
		defer db.Close()

		if err := db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate runs database")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = db.HealthCheck(ctx)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("runs database failed its health check")
		}

		metricsMap := map[string]interface{}{
			"mean_expense_reduction": metrics.MeanExpenseReduction,
			"max_expense_reduction":  metrics.MaxExpenseReduction,
			"help_seeking_rate":      metrics.HelpSeekingRate,
			"mean_stress_level":      metrics.MeanStressLevel,
			"mean_behavioral_impact": metrics.MeanBehavioralImpact,
			"fraction_improved":      metrics.FractionImproved,
		}
		id, err := runs.NewRepository(db.Conn(), log).SaveRun(runs.Run{
			Scenario:         "emergency_fund",
			Demographic:      *demographic,
			BaseOutcomes:     base,
			AdjustedOutcomes: adjusted,
			Metrics:          metricsMap,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to archive run")
		}
		log.Info().Str("run_id", id).Msg("run archived")

		if err := db.WALCheckpoint(""); err != nil {
			log.Warn().Err(err).Msg("WAL checkpoint failed")
		}
	}

	out := struct {
		Demographic string                    `json:"demographic"`
		Trials      int                       `json:"trials"`
		Seed        uint64                    `json:"seed"`
		Metrics     enhancer.EmergencyMetrics `json:"metrics"`
		Report      enhancer.Report           `json:"report"`
	}{
		Demographic: *demographic,
		Trials:      *trials,
		Seed:        rngSeed,
		Metrics:     metrics,
		Report:      e.BehavioralReport(),
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to encode output")
	}
	fmt.Println(string(encoded))
}
