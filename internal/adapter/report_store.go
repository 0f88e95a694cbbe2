package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/lloc/internal/model"
)

const (
	reportFileExt   = ".yaml"
	indexFileName   = "_index.yaml"
	reportHashBytes = 8
	reportDirPerm   = 0o750
	reportFilePerm  = 0o600
)

// ErrReportsNotFound is returned when a reports directory holds no reports.
var ErrReportsNotFound = errors.New("no reports found")

// ReportStore persists and retrieves per-file count reports.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.Report) error
	LoadReports(path m.Path) ([]m.Report, error)
}

// LocalReportStore keeps one YAML document per source file in a directory,
// plus an _index.yaml summarising them.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type indexEntryYAML struct {
	Source    string `yaml:"source"`
	Hash      string `yaml:"hash,omitempty"`
	File      string `yaml:"file"`
	LOC       uint64 `yaml:"loc"`
	Functions int    `yaml:"functions"`
}

type indexYAML struct {
	Files    int              `yaml:"files"`
	LOC      uint64           `yaml:"loc"`
	Physical uint64           `yaml:"physical"`
	Comment  uint64           `yaml:"comment"`
	Reports  []indexEntryYAML `yaml:"reports"`
}

// SaveReports writes each report to <dir>/<hash>.yaml and regenerates the
// index. The directory is created when missing.
func (rs *LocalReportStore) SaveReports(path m.Path, reports []m.Report) error {
	if path == "" {
		return fmt.Errorf("reports path is empty")
	}

	dir := string(path)
	if err := os.MkdirAll(dir, reportDirPerm); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	for _, report := range reports {
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshal report for %s: %w", report.Source, err)
		}

		file := filepath.Join(dir, rs.reportFileName(report.Source))
		if err := os.WriteFile(file, data, reportFilePerm); err != nil {
			return fmt.Errorf("write report %s: %w", file, err)
		}
	}

	return rs.RegenerateIndex(path)
}

// LoadReports reads every report in the directory, sorted by source path.
func (rs *LocalReportStore) LoadReports(path m.Path) ([]m.Report, error) {
	if path == "" {
		return nil, fmt.Errorf("reports path is empty")
	}

	entries, err := os.ReadDir(string(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w in %s", ErrReportsNotFound, path)
		}

		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	var reports []m.Report

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == indexFileName || !strings.HasSuffix(name, reportFileExt) {
			continue
		}

		report, err := rs.readReport(filepath.Join(string(path), name))
		if err != nil {
			return nil, err
		}

		reports = append(reports, report)
	}

	if len(reports) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrReportsNotFound, path)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Source < reports[j].Source
	})

	return reports, nil
}

// RegenerateIndex rebuilds _index.yaml from the reports on disk.
func (rs *LocalReportStore) RegenerateIndex(path m.Path) error {
	reports, err := rs.LoadReports(path)
	if err != nil {
		return err
	}

	index := indexYAML{Files: len(reports)}

	for _, report := range reports {
		index.LOC += report.Totals.LOC
		index.Physical += report.Totals.Physical
		index.Comment += report.Totals.Comment
		index.Reports = append(index.Reports, indexEntryYAML{
			Source:    string(report.Source),
			Hash:      report.Hash,
			File:      rs.reportFileName(report.Source),
			LOC:       report.Totals.LOC,
			Functions: len(report.Counted()),
		})
	}

	data, err := yaml.Marshal(index)
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	indexPath := filepath.Join(string(path), indexFileName)
	if err := os.WriteFile(indexPath, data, reportFilePerm); err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	return nil
}

func (rs *LocalReportStore) readReport(file string) (m.Report, error) {
	// #nosec G304 - file comes from listing the reports dir
	data, err := os.ReadFile(file)
	if err != nil {
		return m.Report{}, fmt.Errorf("read report %s: %w", file, err)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("unmarshal report %s: %w", file, err)
	}

	return report, nil
}

func (rs *LocalReportStore) computeReportHash(source m.Path) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:reportHashBytes])
}

func (rs *LocalReportStore) reportFileName(source m.Path) string {
	return rs.computeReportHash(source) + reportFileExt
}
