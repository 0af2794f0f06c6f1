// SPDX-License-Identifier: MIT

// Command campusnet builds the social graph, assigns roommates, simulates
// student activity and searches for referrals, then grades each step.
//
// Usage:
//
//	campusnet [-config campusnet.yaml] [-data students.csv] [-company Acme]
//
// Without -data (or data_file in the config) the three built-in sample
// populations are graded.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/campusnet/dataset"
	"github.com/katalvlaran/campusnet/internal/config"
	"github.com/katalvlaran/campusnet/internal/harness"
	"github.com/katalvlaran/campusnet/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "campusnet: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath, dataFile, company string
	flag.StringVar(&configPath, "config", "", "YAML configuration file")
	flag.StringVar(&dataFile, "data", "", "student dataset (overrides data_file)")
	flag.StringVar(&company, "company", "", "referral target company (overrides company)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	if company != "" {
		cfg.Company = company
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Sync(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cases, err := loadCases(cfg)
	if err != nil {
		return err
	}
	log.Info("grading",
		zap.Int("cases", len(cases)),
		zap.String("company", cfg.Company),
		zap.String("strategy", cfg.Strategy),
	)

	g := harness.NewGrader(cfg, log, os.Stdout)
	total, maxTotal := 0, 0
	for _, c := range cases {
		if err = ctx.Err(); err != nil {
			return err
		}
		r := g.Grade(ctx, c)
		total += r.Score()
		maxTotal += r.MaxScore()
	}
	fmt.Printf("\nOverall: %d/%d\n", total, maxTotal)

	return nil
}

func loadCases(cfg *config.Config) ([]harness.Case, error) {
	if cfg.DataFile == "" {
		return harness.Samples(), nil
	}
	students, err := dataset.ParseFile(cfg.DataFile)
	if err != nil {
		return nil, err
	}

	return []harness.Case{{Number: 1, Name: cfg.DataFile, Students: students}}, nil
}
