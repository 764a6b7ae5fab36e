package app

import (
	"bytes"
	"flag"
	"strings"
	"testing"
)

func TestBindAndOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("simblock", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-sim", "district", "-seed", "7", "-set", "period=4", "-set", "down_chance = 60", "-config", "city.yaml"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "district" {
		t.Fatalf("sim %q", cfg.Sim)
	}
	got, err := cfg.Overrides()
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"period": "4", "down_chance": "60", "seed": "7", "config": "city.yaml"}
	if len(got) != len(want) {
		t.Fatalf("overrides %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("override %s = %q, want %q", k, got[k], v)
		}
	}
}

func TestBuildOverridesRejectsMalformed(t *testing.T) {
	if _, err := BuildOverrides("", 0, []string{"period"}); err == nil {
		t.Fatal("pair without '=' should fail")
	}
	if _, err := BuildOverrides("", 0, []string{"=3"}); err == nil {
		t.Fatal("empty key should fail")
	}
	got, err := BuildOverrides("", 0, nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("empty input: %v, %v", got, err)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug line logged at info level: %q", buf.String())
	}
	NewLogger(&buf, true).Debug("shown", "frame", 3)
	if !strings.Contains(buf.String(), "msg=shown") || !strings.Contains(buf.String(), "frame=3") {
		t.Fatalf("unexpected log output %q", buf.String())
	}
}
