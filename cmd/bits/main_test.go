package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseLatLng(t *testing.T) {
	tests := []struct {
		in      string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{"51.5007,-0.1246", 51.5007, -0.1246, false},
		{" 10 , 20 ", 10, 20, false},
		{"10", 0, 0, true},
		{"abc,1", 0, 0, true},
		{"1,abc", 0, 0, true},
		{"91,0", 0, 0, true},
		{"0,-181", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLatLng(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLatLng(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && (got.Lat != tt.lat || got.Lng != tt.lng) {
				t.Errorf("parseLatLng(%q) = %+v", tt.in, got)
			}
		})
	}
}

func TestPort(t *testing.T) {
	for addr, want := range map[string]string{":23235": "23235", "0.0.0.0:22": "22", "2222": "2222"} {
		if got := port(addr); got != want {
			t.Errorf("port(%q) = %q, want %q", addr, got, want)
		}
	}
}

func TestLoadGameConfigVariant(t *testing.T) {
	flagConfig, flagVariant = "", "cozy"
	defer func() { flagVariant = "" }()

	cfg, name, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() error = %v", err)
	}
	if name != "cozy" || cfg.Rules.NeighborhoodRadius != 4 || cfg.Rules.ValueExponentRange != 2 {
		t.Errorf("cozy config = %s %+v", name, cfg.Rules)
	}

	flagVariant = "nope"
	if _, _, err := loadGameConfig(); err == nil {
		t.Error("unknown variant should fail")
	}
}

func TestLoadGameConfigKeepsFileRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bits.yaml")
	data := "rules:\n  neighborhood_radius: 3\n  inclusive_boundary: true\n  value_exponent_range: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig, flagVariant = path, ""
	defer func() { flagConfig = "" }()

	cfg, name, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() error = %v", err)
	}
	if name != "" {
		t.Errorf("variant = %q, want none", name)
	}
	r := cfg.Rules
	if r.NeighborhoodRadius != 3 || !r.InclusiveBoundary || r.ValueExponentRange != 5 {
		t.Errorf("rules = %+v, want the file's radius 3, inclusive, range 5", r)
	}

	// An explicit variant still wins over the file.
	flagVariant = "cozy"
	defer func() { flagVariant = "" }()
	cfg, _, err = loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() error = %v", err)
	}
	if cfg.Rules.NeighborhoodRadius != 4 || cfg.Rules.InclusiveBoundary {
		t.Errorf("cozy over file = %+v", cfg.Rules)
	}
}

func TestCommandsReturnErrors(t *testing.T) {
	flagConfig, flagVariant = "", ""

	flagAt = "not-a-position"
	defer func() { flagAt = "" }()
	if err := runPlay(nil, nil); err == nil {
		t.Error("runPlay with a bad --at should return an error")
	}

	flagRadius = -1
	defer func() { flagRadius = 5 }()
	if err := runMap(nil, nil); err == nil {
		t.Error("runMap with a negative radius should return an error")
	}

	flagVariant = "nope"
	defer func() { flagVariant = "" }()
	if err := runServe(nil, nil); err == nil {
		t.Error("runServe with an unknown variant should return an error")
	}
}
