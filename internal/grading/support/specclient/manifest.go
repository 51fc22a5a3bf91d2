// Package specclient adapts a JSON test-suite manifest on disk onto
// grading.SpecClient, in the same load-a-manifest-file shape the judge
// service used for its own test bundle layout.
package specclient

import (
	"context"
	"encoding/json"
	"os"

	grading "gradecore/internal/grading"
	pkgerrors "gradecore/pkg/errors"
)

// Manifest is the on-disk description of a problem's test suite.
type Manifest struct {
	Slug          string          `json:"slug"`
	MultiCase     bool            `json:"multiCase"`
	SubtaskPoints []float64       `json:"subtaskPoints"`
	Groups        []ManifestGroup `json:"groups"`
}

// ManifestGroup is one test group: the sample group (id 0), the main group
// (id -1, only present when SubtaskPoints is empty), or a declared subtask
// group (positive id).
type ManifestGroup struct {
	ID    int            `json:"id"`
	Cases []ManifestCase `json:"cases"`
}

// ManifestCase is one declared test case.
type ManifestCase struct {
	Name      string `json:"name"`
	InputPath string `json:"inputPath"`
	Subtasks  []int  `json:"subtasks"`
}

// LoadManifest parses a manifest file, mirroring the judge service's own
// manifest loader: read the whole file, unmarshal, wrap I/O and parse
// failures with a structural error code rather than a bare Go error.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, pkgerrors.Wrapf(err, pkgerrors.GradingSpecError, "read manifest %q failed", path)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, pkgerrors.Wrapf(err, pkgerrors.GradingSpecError, "parse manifest %q failed", path)
	}
	return m, nil
}

// TestSuite converts the manifest into grading's own data model.
func (m Manifest) TestSuite() grading.TestSuite {
	groups := make([]grading.TestGroup, 0, len(m.Groups))
	for _, g := range m.Groups {
		cases := make([]grading.TestCase, 0, len(g.Cases))
		for _, c := range g.Cases {
			cases = append(cases, grading.TestCase{
				Name:      c.Name,
				InputPath: c.InputPath,
				Subtasks:  c.Subtasks,
				Sample:    g.ID == grading.SampleGroupID,
			})
		}
		groups = append(groups, grading.TestGroup{ID: g.ID, Cases: cases})
	}
	return grading.TestSuite{Groups: groups}
}

// ManifestClient implements grading.SpecClient by loading a Manifest once
// at construction and serving it from memory for the lifetime of the run.
type ManifestClient struct {
	manifest Manifest
}

// NewManifestClient loads path and wraps it as a SpecClient.
func NewManifestClient(path string) (*ManifestClient, error) {
	m, err := LoadManifest(path)
	if err != nil {
		return nil, err
	}
	return &ManifestClient{manifest: m}, nil
}

// GetTestSuite implements grading.SpecClient.
func (c *ManifestClient) GetTestSuite(_ context.Context) (grading.TestSuite, error) {
	return c.manifest.TestSuite(), nil
}

// HasMultipleTestCases implements grading.SpecClient.
func (c *ManifestClient) HasMultipleTestCases(_ context.Context) (bool, error) {
	return c.manifest.MultiCase, nil
}
