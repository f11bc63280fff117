package mockdata

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
)

func TestBuildIsDeterministicForSeed(t *testing.T) {
	a := buildScenario(t, 42)
	b := buildScenario(t, 42)

	aJSON, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Failed to marshal first dataset: %v", err)
	}
	bJSON, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Failed to marshal second dataset: %v", err)
	}

	if !bytes.Equal(aJSON, bJSON) {
		t.Error("Two builds with the same seed and reference time produced different output")
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := buildScenario(t, 1)
	b := buildScenario(t, 2)

	if a.Users[0].Name == b.Users[0].Name && a.Users[0].Username == b.Users[0].Username {
		t.Error("Different seeds produced the same first user; generator does not appear seeded")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	ds := buildScenario(t, 10)

	path := filepath.Join(t.TempDir(), "mockdata.json")
	if err := ds.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	// Compare through the serialized form: RFC 3339 round-trips exactly,
	// while reflect.DeepEqual trips over time.Time location pointers.
	want, err := json.Marshal(ds)
	if err != nil {
		t.Fatalf("Failed to marshal original: %v", err)
	}
	have, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Failed to marshal round-tripped dataset: %v", err)
	}
	if !bytes.Equal(want, have) {
		t.Error("Round-tripped dataset differs from the original")
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Expected error reading a missing snapshot file")
	}
}

func TestSnapshotTableKeys(t *testing.T) {
	ds := buildScenario(t, 11)

	data, err := json.Marshal(ds)
	if err != nil {
		t.Fatalf("Failed to marshal dataset: %v", err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		t.Fatalf("Failed to unmarshal snapshot: %v", err)
	}

	expected := []string{
		"users", "addresses", "contacts", "clients", "suppliers",
		"projects", "items", "documents", "projectItems", "documentsRelations",
	}
	for _, key := range expected {
		if _, ok := top[key]; !ok {
			t.Errorf("Snapshot is missing table key %q", key)
		}
	}
	if len(top) != len(expected) {
		t.Errorf("Expected %d table keys, got %d", len(expected), len(top))
	}
}

func TestOwnerRefMarshalsSingleKey(t *testing.T) {
	data, err := json.Marshal(OwnClient(7))
	if err != nil {
		t.Fatalf("Failed to marshal OwnerRef: %v", err)
	}
	if string(data) != `{"clientId":7}` {
		t.Errorf(`Expected {"clientId":7}, got %s`, data)
	}

	data, err = json.Marshal(TargetItem(3))
	if err != nil {
		t.Fatalf("Failed to marshal DocTarget: %v", err)
	}
	if string(data) != `{"itemId":3}` {
		t.Errorf(`Expected {"itemId":3}, got %s`, data)
	}
}
