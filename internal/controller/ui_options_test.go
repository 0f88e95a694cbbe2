package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := newStartConfig(nil)
	if cfg.mode != ModeCount || cfg.format != FormatTable {
		t.Fatalf("default config = %+v, want count mode and table format", cfg)
	}

	WithViewMode()(&cfg)
	if cfg.mode != ModeView {
		t.Fatalf("WithViewMode() mode = %v, want %v", cfg.mode, ModeView)
	}

	WithCountMode()(&cfg)
	if cfg.mode != ModeCount {
		t.Fatalf("WithCountMode() mode = %v, want %v", cfg.mode, ModeCount)
	}

	cfg = newStartConfig([]StartOption{WithFormat(FormatCSVHeader), WithViewMode()})
	if cfg.format != FormatCSVHeader || cfg.mode != ModeView {
		t.Fatalf("combined options = %+v", cfg)
	}
}

func TestFormat_IsCSV(t *testing.T) {
	tests := map[Format]bool{
		FormatTable:     false,
		FormatCSV:       true,
		FormatCSVHeader: true,
	}

	for format, want := range tests {
		if got := format.IsCSV(); got != want {
			t.Errorf("Format(%d).IsCSV() = %v, want %v", format, got, want)
		}
	}
}
