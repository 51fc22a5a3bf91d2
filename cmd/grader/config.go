package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	grading "gradecore/internal/grading"
	"gradecore/pkg/utils/logger"
)

const defaultConfigPath = "configs/grader.yaml"

// ProblemConfig mirrors grading.GradingOptions in YAML-friendly shape.
type ProblemConfig struct {
	Slug            string    `yaml:"slug"`
	SolutionCommand string    `yaml:"solutionCommand"`
	OutputDir       string    `yaml:"outputDir"`
	SubtaskPoints   []float64 `yaml:"subtaskPoints"`
	TimeLimit       int64     `yaml:"timeLimitMs"`
	MemoryLimitMB   int64     `yaml:"memoryLimitMB"`
}

func (p ProblemConfig) toGradingOptions() grading.GradingOptions {
	return grading.GradingOptions{
		Slug:            p.Slug,
		SolutionCommand: p.SolutionCommand,
		OutputDir:       p.OutputDir,
		SubtaskPoints:   p.SubtaskPoints,
		TimeLimit:       time.Duration(p.TimeLimit) * time.Millisecond,
		MemoryLimitMB:   p.MemoryLimitMB,
	}
}

// RunnerConfig configures the process runner.
type RunnerConfig struct {
	OutputCapBytes int64 `yaml:"outputCapBytes"`
}

// AppConfig holds the grader CLI's config.
type AppConfig struct {
	Logger       logger.Config `yaml:"logger"`
	ManifestPath string        `yaml:"manifestPath"`
	Problem      ProblemConfig `yaml:"problem"`
	Runner       RunnerConfig  `yaml:"runner"`
}

func loadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file failed: %w", err)
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file failed: %w", err)
	}
	if cfg.ManifestPath == "" {
		return nil, fmt.Errorf("manifestPath is required")
	}
	if cfg.Problem.Slug == "" {
		return nil, fmt.Errorf("problem.slug is required")
	}
	if cfg.Problem.SolutionCommand == "" {
		return nil, fmt.Errorf("problem.solutionCommand is required")
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}
	if cfg.Logger.Format == "" {
		cfg.Logger.Format = "console"
	}
	return &cfg, nil
}
