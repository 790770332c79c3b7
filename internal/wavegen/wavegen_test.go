package wavegen

import (
	"testing"

	"github.com/Mikko-Finell/maze-defence/internal/tuning"
)

func TestGenerateIsDeterministicForSameSeed(t *testing.T) {
	tune := tuning.Default().WaveGen
	r1, m1 := Generate(12345, tune, 2.0)
	r2, m2 := Generate(12345, tune, 2.0)

	if len(r1) != len(r2) {
		t.Fatalf("record counts diverged: %d vs %d", len(r1), len(r2))
	}
	for i := range r1 {
		if r1[i] != r2[i] {
			t.Fatalf("record %d diverged: %+v vs %+v", i, r1[i], r2[i])
		}
	}
	if len(m1) != len(m2) {
		t.Fatalf("telemetry counts diverged: %d vs %d", len(m1), len(m2))
	}
	for i := range m1 {
		if m1[i] != m2[i] {
			t.Fatalf("telemetry %d diverged: %+v vs %+v", i, m1[i], m2[i])
		}
	}
}

func TestGenerateDifferentSeedsDiverge(t *testing.T) {
	tune := tuning.Default().WaveGen
	r1, _ := Generate(1, tune, 2.0)
	r2, _ := Generate(2, tune, 2.0)

	if len(r1) == len(r2) {
		same := true
		for i := range r1 {
			if r1[i] != r2[i] {
				same = false
				break
			}
		}
		if same {
			t.Fatalf("seeds 1 and 2 produced identical schedules")
		}
	}
}

func TestGenerateRecordsSortedByTimeThenSpeciesThenIndex(t *testing.T) {
	tune := tuning.Default().WaveGen
	records, _ := Generate(777, tune, 3.0)
	if len(records) == 0 {
		t.Fatalf("expected at least one record")
	}
	for i := 1; i < len(records); i++ {
		prev, cur := records[i-1], records[i]
		if cur.TimeMs < prev.TimeMs {
			t.Fatalf("record %d out of time order: %d before %d", i, cur.TimeMs, prev.TimeMs)
		}
		if cur.TimeMs == prev.TimeMs {
			if cur.SpeciesId < prev.SpeciesId {
				t.Fatalf("record %d out of species order at equal time", i)
			}
			if cur.SpeciesId == prev.SpeciesId && cur.IndexWithinSpecies < prev.IndexWithinSpecies {
				t.Fatalf("record %d out of index order at equal time/species", i)
			}
		}
	}
}

func TestGenerateEveryRecordHasPositiveHealthAndStep(t *testing.T) {
	tune := tuning.Default().WaveGen
	records, _ := Generate(42, tune, 5.0)
	for _, r := range records {
		if r.Health < 1 {
			t.Fatalf("record has non-positive health: %+v", r)
		}
		if r.StepMs < 1 {
			t.Fatalf("record has non-positive step_ms: %+v", r)
		}
		if r.TimeMs < 0 {
			t.Fatalf("record has negative time_ms: %+v", r)
		}
	}
}

func TestGenerateHigherDifficultyProducesMoreRecords(t *testing.T) {
	tune := tuning.Default().WaveGen
	low, _ := Generate(9, tune, 1.0)
	high, _ := Generate(9, tune, 8.0)
	if len(high) <= len(low) {
		t.Fatalf("expected higher difficulty to produce more spawns: low=%d high=%d", len(low), len(high))
	}
}

func TestMergeUnderShareAlwaysEmitsTelemetry(t *testing.T) {
	tune := tuning.Default().WaveGen
	_, telemetry := Generate(3, tune, 1.0)
	foundMerge := false
	foundCompression := false
	for _, rec := range telemetry {
		switch rec.Stage {
		case "species_merge":
			foundMerge = true
		case "duration_compression":
			foundCompression = true
		}
	}
	if !foundMerge {
		t.Fatalf("expected a species_merge telemetry record even when untriggered")
	}
	if !foundCompression {
		t.Fatalf("expected a duration_compression telemetry record even when untriggered")
	}
}
