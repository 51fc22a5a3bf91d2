// Command grader runs a solution command against a declared test suite
// and reports a verdict, mirroring the exit-code contract any judge CLI
// hosting the grading core must honor.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	grading "gradecore/internal/grading"
	"gradecore/internal/grading/support/comparator"
	consolelogger "gradecore/internal/grading/support/logger"
	"gradecore/internal/grading/support/runner"
	"gradecore/internal/grading/support/specclient"
	appErr "gradecore/pkg/errors"
	"gradecore/pkg/utils/contextkey"
	"gradecore/pkg/utils/logger"
)

const (
	exitAccepted          = 0
	exitOtherVerdict      = 1
	exitStructuralFailure = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", defaultConfigPath, "Path to config file")
	flag.Parse()

	cfg, err := loadAppConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load app config failed: %v\n", err)
		return exitStructuralFailure
	}

	if err := logger.Init(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "init logger failed: %v\n", err)
		return exitStructuralFailure
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.WithValue(context.Background(), contextkey.RequestID, uuid.NewString())
	logger.Info(ctx, "grader starting", zap.String("manifest", cfg.ManifestPath), zap.String("slug", cfg.Problem.Slug))

	specClient, err := specclient.NewManifestClient(cfg.ManifestPath)
	if err != nil {
		logger.Error(ctx, "load manifest failed", zap.Error(err))
		return exitStructuralFailure
	}

	caseGrader := grading.NewDefaultTestCaseGrader(
		runner.NewExecRunner(cfg.Runner.OutputCapBytes),
		comparator.NewTokenComparator(),
	)
	console := consolelogger.NewConsoleLogger(os.Stdout, logger.GetLogger().WithContext(ctx))

	g := grading.NewGrader(specClient, caseGrader, caseGrader, grading.NewTestCaseAggregator(), grading.NewSubtaskAggregator(), console)

	overall, err := g.Grade(ctx, cfg.Problem.toGradingOptions())
	if err != nil {
		gerr := appErr.GetError(err)
		logger.Error(ctx, "grading aborted",
			zap.Error(err),
			zap.Int("code", int(gerr.Code)),
			zap.Any("details", gerr.Details),
		)
		return exitStructuralFailure
	}

	if overall.Verdict.Status == grading.StatusAC {
		return exitAccepted
	}
	return exitOtherVerdict
}
