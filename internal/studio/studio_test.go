package studio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gameforge/studio/internal/recordstore"
)

func TestNamespacesRegistry(t *testing.T) {
	nss := Namespaces()
	if len(nss) != 10 {
		t.Fatalf("got %d namespaces, want 10", len(nss))
	}
	byName := map[string]recordstore.Namespace{}
	for _, ns := range nss {
		if ns.Name == "" {
			t.Fatal("namespace with empty name")
		}
		if ns.Seed == nil {
			t.Fatalf("namespace %q has no seed", ns.Name)
		}
		if _, dup := byName[ns.Name]; dup {
			t.Fatalf("duplicate namespace %q", ns.Name)
		}
		byName[ns.Name] = ns
	}
	if !byName[NSBuilds].Prepend {
		t.Error("builds must prepend new records")
	}
	for name, ns := range byName {
		if name != NSBuilds && ns.Prepend {
			t.Errorf("namespace %q unexpectedly prepends", name)
		}
	}
}

func TestSeedIDsUniqueAndPositive(t *testing.T) {
	for _, ns := range Namespaces() {
		t.Run(ns.Name, func(t *testing.T) {
			records := ns.Seed()
			if len(records) == 0 {
				t.Fatal("empty seed")
			}
			seen := map[int64]bool{}
			for i, r := range records {
				id := r.ID()
				if id <= 0 {
					t.Errorf("record %d has non-positive id %d", i, id)
				}
				if seen[id] {
					t.Errorf("duplicate id %d", id)
				}
				seen[id] = true
			}
		})
	}
}

func TestSeedsLoadIntoStore(t *testing.T) {
	s, err := recordstore.New(t.TempDir(), Namespaces())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.InitializeIfEmpty(); err != nil {
		t.Fatal(err)
	}
	for _, ns := range Namespaces() {
		records, err := s.List(ns.Name)
		if err != nil {
			t.Fatalf("%s: %v", ns.Name, err)
		}
		if len(records) != len(ns.Seed()) {
			t.Errorf("%s: got %d records, want %d", ns.Name, len(records), len(ns.Seed()))
		}
	}
}

func TestSchemasCoverAllNamespaces(t *testing.T) {
	schemas := Schemas()
	for _, ns := range Namespaces() {
		cols, ok := schemas[ns.Name]
		if !ok {
			t.Errorf("no schema for namespace %q", ns.Name)
			continue
		}
		if len(cols) == 0 {
			t.Errorf("empty schema for namespace %q", ns.Name)
			continue
		}
		if cols[0].Name != "id" || cols[0].Type != ColumnTypeNumber {
			t.Errorf("%s: first column = %+v, want id number", ns.Name, cols[0])
		}
	}
}

func TestProjectColumns(t *testing.T) {
	cols := Schemas()[NSProjects]
	byName := map[string]Column{}
	for _, c := range cols {
		byName[c.Name] = c
	}
	name, ok := byName["name"]
	if !ok {
		t.Fatal("projects schema missing name column")
	}
	if !name.Required {
		t.Error("name column should be required")
	}
	if name.Type != ColumnTypeText {
		t.Errorf("name column type = %q, want text", name.Type)
	}
	if c := byName["completion"]; c.Type != ColumnTypeNumber {
		t.Errorf("completion column type = %q, want number", c.Type)
	}
}

func TestShaderTagsColumnIsJSONB(t *testing.T) {
	for _, c := range Schemas()[NSShaders] {
		if c.Name == "tags" {
			if c.Type != ColumnTypeJSONB {
				t.Errorf("tags column type = %q, want jsonb", c.Type)
			}
			return
		}
	}
	t.Fatal("shaders schema missing tags column")
}

func TestLoadServerConfigCreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadServerConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.JWTSecret) != 32 {
		t.Errorf("JWT secret length = %d, want 32", len(cfg.JWTSecret))
	}
	if cfg.AuthEnabled() {
		t.Error("auth should be disabled by default")
	}
	if _, err := os.Stat(filepath.Join(dir, "server_config.json")); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	// Reload keeps the generated secret stable.
	cfg2, err := LoadServerConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if string(cfg.JWTSecret) != string(cfg2.JWTSecret) {
		t.Error("JWT secret changed across reloads")
	}
}

func TestServerConfigPassword(t *testing.T) {
	cfg := ServerConfig{}
	if err := cfg.SetPassword("orchid-velvet-9"); err != nil {
		t.Fatal(err)
	}
	if !cfg.AuthEnabled() {
		t.Fatal("auth should be enabled after SetPassword")
	}
	if !cfg.CheckPassword("orchid-velvet-9") {
		t.Error("correct password rejected")
	}
	if cfg.CheckPassword("wrong") {
		t.Error("wrong password accepted")
	}
	if err := cfg.SetPassword(""); err != nil {
		t.Fatal(err)
	}
	if cfg.AuthEnabled() {
		t.Error("auth should be disabled after clearing password")
	}
	if cfg.CheckPassword("") {
		t.Error("empty password must never authenticate")
	}
}

func TestServerConfigValidate(t *testing.T) {
	cfg := ServerConfig{JWTSecret: make([]byte, 16)}
	if err := cfg.Validate(); err == nil {
		t.Error("short JWT secret should fail validation")
	}
	cfg.JWTSecret = make([]byte, 32)
	cfg.RateLimits = RateLimits{WriteRatePerMin: -1}
	if err := cfg.Validate(); err == nil {
		t.Error("negative rate limit should fail validation")
	}
	cfg.RateLimits = DefaultRateLimits()
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}
