package store

import (
	"encoding/json"
	"path/filepath"
	"reflect"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "huntboard.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return st
}

func TestSaveAndLoad(t *testing.T) {
	st := openTestStore(t)

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	want := record{Name: "Summer 2026", Count: 3}

	if err := st.Save("test-key", want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	raw, ok, err := st.Load("test-key")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !ok {
		t.Fatal("Load() ok = false for a saved key")
	}
	var got record
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("stored value is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestSaveBareString(t *testing.T) {
	st := openTestStore(t)

	if err := st.Save(KeyActiveTerm, "default"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	raw, ok, err := st.Load(KeyActiveTerm)
	if err != nil || !ok {
		t.Fatalf("Load() = (%v, %v)", ok, err)
	}
	var got string
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != "default" {
		t.Errorf("got %q", got)
	}
}

func TestLoadMissingKey(t *testing.T) {
	st := openTestStore(t)

	raw, ok, err := st.Load("never-written")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ok || raw != nil {
		t.Errorf("Load(absent) = (%q, %v), want (nil, false)", raw, ok)
	}
}

func TestSaveOverwrites(t *testing.T) {
	st := openTestStore(t)

	if err := st.Save("test-key", []string{"old"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := st.Save("test-key", []string{"new", "values"}); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	raw, ok, err := st.Load("test-key")
	if err != nil || !ok {
		t.Fatalf("Load() = (%v, %v)", ok, err)
	}
	var got []string
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"new", "values"}) {
		t.Errorf("overwrite left %v", got)
	}
}
