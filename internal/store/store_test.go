package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "replay.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewRunReturnsUniqueSessionIds(t *testing.T) {
	s := openTestStore(t)
	a, err := s.NewRun(1)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	b, err := s.NewRun(1)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct session ids, got %q twice", a)
	}
}

func TestRecordAndReadFingerprintsAscendingByTick(t *testing.T) {
	s := openTestStore(t)
	session, err := s.NewRun(7)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}

	if err := s.RecordFingerprint(session, 2, "hash-2"); err != nil {
		t.Fatalf("RecordFingerprint: %v", err)
	}
	if err := s.RecordFingerprint(session, 0, "hash-0"); err != nil {
		t.Fatalf("RecordFingerprint: %v", err)
	}
	if err := s.RecordFingerprint(session, 1, "hash-1"); err != nil {
		t.Fatalf("RecordFingerprint: %v", err)
	}

	got, err := s.Fingerprints(session)
	if err != nil {
		t.Fatalf("Fingerprints: %v", err)
	}
	want := []Fingerprint{{Tick: 0, Hash: "hash-0"}, {Tick: 1, Hash: "hash-1"}, {Tick: 2, Hash: "hash-2"}}
	if len(got) != len(want) {
		t.Fatalf("got %d fingerprints, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fingerprint %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSaveAndLoadAttackPlanPreservesOrder(t *testing.T) {
	s := openTestStore(t)
	session, err := s.NewRun(3)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}

	records := []AttackPlanRecord{
		{TimeMs: 0, SpeciesId: 0, IndexWithinSpecies: 0, Health: 10, StepMs: 300},
		{TimeMs: 500, SpeciesId: 0, IndexWithinSpecies: 1, Health: 10, StepMs: 300},
		{TimeMs: 900, SpeciesId: 1, IndexWithinSpecies: 0, Health: 15, StepMs: 250},
	}
	if err := s.SaveAttackPlan(session, 4, records); err != nil {
		t.Fatalf("SaveAttackPlan: %v", err)
	}

	got, err := s.AttackPlan(session, 4)
	if err != nil {
		t.Fatalf("AttackPlan: %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("got %d records, want %d", len(got), len(records))
	}
	for i := range records {
		if got[i] != records[i] {
			t.Fatalf("record %d = %+v, want %+v", i, got[i], records[i])
		}
	}
}

func TestAttackPlanEmptyForUnknownWave(t *testing.T) {
	s := openTestStore(t)
	session, err := s.NewRun(5)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	got, err := s.AttackPlan(session, 999)
	if err != nil {
		t.Fatalf("AttackPlan: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no records for an unknown wave, got %#v", got)
	}
}
