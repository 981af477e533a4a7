package recordstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testNamespaces() []Namespace {
	return []Namespace{
		{Name: "projects", Seed: func() []Record {
			return []Record{{"id": int64(1), "name": "GameForge Studio", "status": "Active"}}
		}},
		{Name: "builds", Prepend: true},
		{Name: "assets"},
	}
}

func setupStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := New(dir, testNamespaces())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s, dir
}

func TestStoreAdd(t *testing.T) {
	t.Run("assigns sequential ids from 1", func(t *testing.T) {
		s, _ := setupStore(t)
		for i := int64(1); i <= 3; i++ {
			rec, err := s.Add("assets", Record{"name": "tex"})
			if err != nil {
				t.Fatalf("Add failed: %v", err)
			}
			if rec.ID() != i {
				t.Errorf("id = %d, want %d", rec.ID(), i)
			}
		}
	})

	t.Run("never reuses ids after deleting the max", func(t *testing.T) {
		s, _ := setupStore(t)
		// Empty projects namespace before use.
		if err := s.ReplaceAll("projects", nil); err != nil {
			t.Fatalf("ReplaceAll failed: %v", err)
		}
		r1, err := s.Add("projects", Record{"name": "Nebula"})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if r1.ID() != 1 {
			t.Errorf("id = %d, want 1", r1.ID())
		}
		r2, err := s.Add("projects", Record{"name": "Void"})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if r2.ID() != 2 {
			t.Errorf("id = %d, want 2", r2.ID())
		}
		if err := s.Delete("projects", 1); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		recs, err := s.List("projects")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(recs) != 1 || recs[0].ID() != 2 || recs[0]["name"] != "Void" {
			t.Errorf("List() = %v, want single record id=2 name=Void", recs)
		}
		r3, err := s.Add("projects", Record{"name": "Titan"})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		// max-of-remaining-ids+1, not a reuse of 1.
		if r3.ID() != 3 {
			t.Errorf("id = %d, want 3", r3.ID())
		}
	})

	t.Run("missing or zero ids count as 0 for max-finding", func(t *testing.T) {
		s, _ := setupStore(t)
		seed := []Record{{"name": "no id"}, {"id": int64(0), "name": "zero"}, {"id": int64(4), "name": "four"}}
		if err := s.ReplaceAll("assets", seed); err != nil {
			t.Fatalf("ReplaceAll failed: %v", err)
		}
		rec, err := s.Add("assets", Record{"name": "next"})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if rec.ID() != 5 {
			t.Errorf("id = %d, want 5", rec.ID())
		}
	})

	t.Run("builds namespace prepends", func(t *testing.T) {
		s, _ := setupStore(t)
		for _, name := range []string{"B1", "B2", "B3"} {
			if _, err := s.Add("builds", Record{"branch": name}); err != nil {
				t.Fatalf("Add failed: %v", err)
			}
		}
		recs, err := s.List("builds")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		got := []string{}
		for _, r := range recs {
			got = append(got, r["branch"].(string))
		}
		want := []string{"B3", "B2", "B1"}
		if len(got) != len(want) {
			t.Fatalf("stored order = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("stored order = %v, want %v", got, want)
			}
		}
	})

	t.Run("does not mutate the caller's record", func(t *testing.T) {
		s, _ := setupStore(t)
		in := Record{"name": "tex"}
		if _, err := s.Add("assets", in); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if _, ok := in[idField]; ok {
			t.Error("Add mutated the input record")
		}
	})
}

func TestStoreUpdate(t *testing.T) {
	t.Run("is a partial patch", func(t *testing.T) {
		s, _ := setupStore(t)
		if err := s.ReplaceAll("projects", []Record{{"id": int64(1), "name": "A", "status": "Active"}}); err != nil {
			t.Fatalf("ReplaceAll failed: %v", err)
		}
		rec, err := s.Update("projects", 1, Record{"status": "Beta"})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if rec["name"] != "A" || rec["status"] != "Beta" || rec.ID() != 1 {
			t.Errorf("Update() = %v, want {id:1 name:A status:Beta}", rec)
		}
	})

	t.Run("cannot change the id via patch", func(t *testing.T) {
		s, _ := setupStore(t)
		if err := s.ReplaceAll("projects", []Record{{"id": int64(1), "name": "A"}}); err != nil {
			t.Fatalf("ReplaceAll failed: %v", err)
		}
		rec, err := s.Update("projects", 1, Record{"id": int64(99)})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if rec.ID() != 1 {
			t.Errorf("id = %d, want 1", rec.ID())
		}
	})

	t.Run("unknown id returns ErrNotFound and persists nothing", func(t *testing.T) {
		s, dir := setupStore(t)
		if err := s.ReplaceAll("projects", []Record{{"id": int64(1), "name": "A"}}); err != nil {
			t.Fatalf("ReplaceAll failed: %v", err)
		}
		before, err := os.ReadFile(filepath.Join(dir, "projects.json"))
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if _, err := s.Update("projects", 42, Record{"name": "B"}); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Update err = %v, want ErrNotFound", err)
		}
		after, err := os.ReadFile(filepath.Join(dir, "projects.json"))
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if string(before) != string(after) {
			t.Error("failed update persisted data")
		}
	})
}

func TestStoreDelete(t *testing.T) {
	t.Run("is idempotent", func(t *testing.T) {
		s, _ := setupStore(t)
		if err := s.ReplaceAll("assets", []Record{{"id": int64(1)}, {"id": int64(2)}}); err != nil {
			t.Fatalf("ReplaceAll failed: %v", err)
		}
		if err := s.Delete("assets", 1); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if err := s.Delete("assets", 1); err != nil {
			t.Fatalf("second Delete failed: %v", err)
		}
		recs, err := s.List("assets")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(recs) != 1 || recs[0].ID() != 2 {
			t.Errorf("List() = %v, want single record id=2", recs)
		}
	})
}

func TestStoreList(t *testing.T) {
	t.Run("never-written namespace is empty, not an error", func(t *testing.T) {
		s, _ := setupStore(t)
		recs, err := s.List("assets")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(recs) != 0 {
			t.Errorf("List() = %v, want empty", recs)
		}
	})

	t.Run("corrupt file surfaces ErrCorruptData", func(t *testing.T) {
		s, dir := setupStore(t)
		if err := os.WriteFile(filepath.Join(dir, "assets.json"), []byte("{not json"), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		if _, err := s.List("assets"); !errors.Is(err, ErrCorruptData) {
			t.Fatalf("List err = %v, want ErrCorruptData", err)
		}
	})

	t.Run("unknown namespace is rejected", func(t *testing.T) {
		s, _ := setupStore(t)
		if _, err := s.List("nope"); !errors.Is(err, ErrUnknownNamespace) {
			t.Fatalf("List err = %v, want ErrUnknownNamespace", err)
		}
	})

	t.Run("returned records are copies", func(t *testing.T) {
		s, _ := setupStore(t)
		if err := s.ReplaceAll("assets", []Record{{"id": int64(1), "name": "tex"}}); err != nil {
			t.Fatalf("ReplaceAll failed: %v", err)
		}
		recs, err := s.List("assets")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		recs[0]["name"] = "mutated"
		again, err := s.List("assets")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if again[0]["name"] != "tex" {
			t.Error("List exposed internal state to mutation")
		}
	})
}

func TestExportImport(t *testing.T) {
	t.Run("round-trip leaves collections identical", func(t *testing.T) {
		s, _ := setupStore(t)
		if err := s.ReplaceAll("projects", []Record{{"id": int64(1), "name": "A", "completion": 85.0}}); err != nil {
			t.Fatalf("ReplaceAll failed: %v", err)
		}
		if err := s.ReplaceAll("assets", []Record{{"id": int64(1), "name": "tex"}}); err != nil {
			t.Fatalf("ReplaceAll failed: %v", err)
		}
		snap, err := s.ExportAll()
		if err != nil {
			t.Fatalf("ExportAll failed: %v", err)
		}
		doc, err := json.Marshal(snap)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if err := s.ImportAll(doc); err != nil {
			t.Fatalf("ImportAll failed: %v", err)
		}
		after, err := s.ExportAll()
		if err != nil {
			t.Fatalf("ExportAll failed: %v", err)
		}
		got, _ := json.Marshal(after)
		want, _ := json.Marshal(snap)
		if string(got) != string(want) {
			t.Errorf("round-trip changed data:\ngot  %s\nwant %s", got, want)
		}
	})

	t.Run("partial import preserves untouched namespaces", func(t *testing.T) {
		s, _ := setupStore(t)
		if err := s.ReplaceAll("assets", []Record{{"id": int64(7), "name": "keep me"}}); err != nil {
			t.Fatalf("ReplaceAll failed: %v", err)
		}
		doc := []byte(`{"projects":[{"id":1,"name":"Imported"}]}`)
		if err := s.ImportAll(doc); err != nil {
			t.Fatalf("ImportAll failed: %v", err)
		}
		projects, err := s.List("projects")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(projects) != 1 || projects[0]["name"] != "Imported" {
			t.Errorf("projects = %v, want the imported record", projects)
		}
		assets, err := s.List("assets")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(assets) != 1 || assets[0]["name"] != "keep me" {
			t.Errorf("assets = %v, want untouched record", assets)
		}
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		s, _ := setupStore(t)
		if err := s.ImportAll([]byte(`{"bogus":[{"id":1}]}`)); err != nil {
			t.Fatalf("ImportAll failed: %v", err)
		}
	})

	t.Run("malformed documents fail loudly with no partial import", func(t *testing.T) {
		s, _ := setupStore(t)
		if err := s.ReplaceAll("assets", []Record{{"id": int64(1), "name": "keep"}}); err != nil {
			t.Fatalf("ReplaceAll failed: %v", err)
		}
		docs := [][]byte{
			[]byte("not json"),
			[]byte("null"),
			[]byte(`[1,2,3]`),
			[]byte(`{"projects":[{"id":1}],"assets":"not an array"}`),
		}
		for _, doc := range docs {
			if err := s.ImportAll(doc); !errors.Is(err, ErrMalformedSnapshot) {
				t.Errorf("ImportAll(%s) err = %v, want ErrMalformedSnapshot", doc, err)
			}
		}
		assets, err := s.List("assets")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(assets) != 1 || assets[0]["name"] != "keep" {
			t.Errorf("assets = %v, want untouched record", assets)
		}
	})
}

func TestSeeding(t *testing.T) {
	t.Run("InitializeIfEmpty seeds missing namespaces once", func(t *testing.T) {
		s, _ := setupStore(t)
		if err := s.InitializeIfEmpty(); err != nil {
			t.Fatalf("InitializeIfEmpty failed: %v", err)
		}
		recs, err := s.List("projects")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(recs) != 1 || recs[0]["name"] != "GameForge Studio" {
			t.Fatalf("projects = %v, want seed data", recs)
		}
		// User edits survive a second initialization.
		if _, err := s.Update("projects", 1, Record{"status": "Beta"}); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if err := s.InitializeIfEmpty(); err != nil {
			t.Fatalf("second InitializeIfEmpty failed: %v", err)
		}
		recs, err = s.List("projects")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if recs[0]["status"] != "Beta" {
			t.Error("InitializeIfEmpty overwrote existing data")
		}
	})

	t.Run("ResetToDefaults overwrites everything", func(t *testing.T) {
		s, _ := setupStore(t)
		if err := s.ReplaceAll("projects", []Record{{"id": int64(9), "name": "Custom"}}); err != nil {
			t.Fatalf("ReplaceAll failed: %v", err)
		}
		if err := s.ResetToDefaults(); err != nil {
			t.Fatalf("ResetToDefaults failed: %v", err)
		}
		recs, err := s.List("projects")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(recs) != 1 || recs[0]["name"] != "GameForge Studio" {
			t.Errorf("projects = %v, want seed data", recs)
		}
		builds, err := s.List("builds")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(builds) != 0 {
			t.Errorf("builds = %v, want empty (nil seed)", builds)
		}
	})
}

func TestIDsSurviveDiskRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, testNamespaces())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	rec, err := s.Add("assets", Record{"name": "tex"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	// A fresh store re-reads ids as JSON numbers; they must still match.
	s2, err := New(dir, testNamespaces())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	got, err := s2.Update("assets", rec.ID(), Record{"name": "tex2"})
	if err != nil {
		t.Fatalf("Update after reload failed: %v", err)
	}
	if got.ID() != rec.ID() {
		t.Errorf("id = %d, want %d", got.ID(), rec.ID())
	}
}
