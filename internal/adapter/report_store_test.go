package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/lloc/internal/model"
)

func sampleReport(source string) m.Report {
	return m.Report{
		Source: m.Path(source),
		Hash:   "abc123",
		Totals: m.Totals{LOC: 8, Physical: 15, Comment: 4, CommentChars: 40, CommentNonSpace: 30},
		Functions: []m.Function{
			{Name: "max", LOC: 5},
			{Name: "proto", LOC: 0},
			{Name: "bump", LOC: 2},
		},
	}
}

func TestLocalReportStore_SaveReports_WritesHashedYAMLPerReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := &LocalReportStore{}
	report := sampleReport("/abs/path/oldstyle.c")

	expectedHash := rs.computeReportHash(report.Source)
	if expectedHash == "" {
		t.Fatalf("expected non-empty report hash")
	}

	if err := rs.SaveReports(m.Path(dir), []m.Report{report}); err != nil {
		t.Fatalf("SaveReports returned error: %v", err)
	}

	expectedFile := filepath.Join(dir, expectedHash+".yaml")
	info, err := os.Stat(expectedFile)
	if err != nil {
		t.Fatalf("expected report file %s to exist: %v", expectedFile, err)
	}
	if !info.Mode().IsRegular() {
		t.Fatalf("expected %s to be a regular file", expectedFile)
	}

	matched, err := regexp.MatchString(`^[0-9a-f]{16}\.yaml$`, filepath.Base(expectedFile))
	if err != nil {
		t.Fatalf("regex error: %v", err)
	}
	if !matched {
		t.Fatalf("unexpected filename: %s", filepath.Base(expectedFile))
	}

	data, err := os.ReadFile(expectedFile)
	if err != nil {
		t.Fatalf("read report file: %v", err)
	}

	var decoded m.Report
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal YAML: %v", err)
	}

	if decoded.Source != report.Source || decoded.Hash != report.Hash {
		t.Fatalf("unexpected source %q / hash %q", decoded.Source, decoded.Hash)
	}
	if decoded.Totals != report.Totals {
		t.Fatalf("unexpected totals: %+v", decoded.Totals)
	}
	if len(decoded.Functions) != 3 || decoded.Functions[0].Name != "max" || decoded.Functions[0].LOC != 5 {
		t.Fatalf("unexpected functions: %+v", decoded.Functions)
	}
}

func TestLocalReportStore_SaveReports_WritesIndexYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := &LocalReportStore{}

	a := sampleReport("/abs/a.c")
	b := sampleReport("/abs/b.c")
	b.Totals.LOC = 2

	if err := rs.SaveReports(m.Path(dir), []m.Report{b, a}); err != nil {
		t.Fatalf("SaveReports returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, indexFileName))
	if err != nil {
		t.Fatalf("expected _index.yaml to exist: %v", err)
	}

	var index indexYAML
	if err := yaml.Unmarshal(data, &index); err != nil {
		t.Fatalf("unmarshal _index.yaml: %v", err)
	}

	if index.Files != 2 || index.LOC != 10 || index.Physical != 30 || index.Comment != 8 {
		t.Fatalf("unexpected index totals: %+v", index)
	}
	if len(index.Reports) != 2 {
		t.Fatalf("expected 2 index entries, got %d", len(index.Reports))
	}
	if index.Reports[0].Source != "/abs/a.c" || index.Reports[1].Source != "/abs/b.c" {
		t.Fatalf("index not sorted by source: %+v", index.Reports)
	}
	if index.Reports[0].Functions != 2 {
		t.Fatalf("expected 2 counted functions, got %d", index.Reports[0].Functions)
	}
	if index.Reports[0].File != rs.reportFileName("/abs/a.c") {
		t.Fatalf("unexpected report file %q", index.Reports[0].File)
	}
}

func TestLocalReportStore_SaveReports_OverwritesSameSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := &LocalReportStore{}

	first := sampleReport("/abs/a.c")
	second := sampleReport("/abs/a.c")
	second.Totals.LOC = 99

	if err := rs.SaveReports(m.Path(dir), []m.Report{first}); err != nil {
		t.Fatalf("SaveReports returned error: %v", err)
	}
	if err := rs.SaveReports(m.Path(dir), []m.Report{second}); err != nil {
		t.Fatalf("SaveReports returned error: %v", err)
	}

	reports, err := rs.LoadReports(m.Path(dir))
	if err != nil {
		t.Fatalf("LoadReports returned error: %v", err)
	}
	if len(reports) != 1 || reports[0].Totals.LOC != 99 {
		t.Fatalf("expected the second report to replace the first, got %+v", reports)
	}
}

func TestLocalReportStore_SaveReports_EmptyPath_ReturnsError(t *testing.T) {
	t.Parallel()

	rs := &LocalReportStore{}
	if err := rs.SaveReports("", []m.Report{sampleReport("/a.c")}); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLocalReportStore_LoadReports_RoundTripSortedBySource(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "reports")
	rs := &LocalReportStore{}

	if err := rs.SaveReports(m.Path(dir), []m.Report{sampleReport("/z.c"), sampleReport("/a.c"), sampleReport("/m.c")}); err != nil {
		t.Fatalf("SaveReports returned error: %v", err)
	}

	reports, err := rs.LoadReports(m.Path(dir))
	if err != nil {
		t.Fatalf("LoadReports returned error: %v", err)
	}

	var got []m.Path
	for _, r := range reports {
		got = append(got, r.Source)
	}

	want := []m.Path{"/a.c", "/m.c", "/z.c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLocalReportStore_LoadReports_IgnoresForeignFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := &LocalReportStore{}

	if err := rs.SaveReports(m.Path(dir), []m.Report{sampleReport("/a.c")}); err != nil {
		t.Fatalf("SaveReports returned error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.yaml"), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	reports, err := rs.LoadReports(m.Path(dir))
	if err != nil {
		t.Fatalf("LoadReports returned error: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
}

func TestLocalReportStore_LoadReports_NoReportsDir_ReturnsNotFound(t *testing.T) {
	t.Parallel()

	rs := &LocalReportStore{}
	_, err := rs.LoadReports(m.Path(filepath.Join(t.TempDir(), "missing")))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrReportsNotFound) {
		t.Fatalf("expected ErrReportsNotFound, got %v", err)
	}
}

func TestLocalReportStore_LoadReports_EmptyDir_ReturnsNotFound(t *testing.T) {
	t.Parallel()

	rs := &LocalReportStore{}
	_, err := rs.LoadReports(m.Path(t.TempDir()))
	if !errors.Is(err, ErrReportsNotFound) {
		t.Fatalf("expected ErrReportsNotFound, got %v", err)
	}
}

func TestLocalReportStore_LoadReports_CorruptFile_ReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "0123456789abcdef.yaml"), []byte("functions: [\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	rs := &LocalReportStore{}
	if _, err := rs.LoadReports(m.Path(dir)); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestLocalReportStore_LoadReports_EmptyPath_ReturnsError(t *testing.T) {
	t.Parallel()

	rs := &LocalReportStore{}
	if _, err := rs.LoadReports(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
