// Package wavegen implements the procedural wave generator (§4.6): a
// pure function of (seed, difficulty) that samples a reproducible spawn
// schedule through a fixed sequence of stages — count/HP/speed latents,
// species apportionment, a merge pass enforcing a minimum share, a global
// pressure-alignment bisection, and cadence scheduling with duration
// compression. It generalizes the teacher's static internal/defs/waves.go
// table (one hand-authored WaveDefinition per wave number) into the
// spec's procedural generator, grounded further on
// original_source/systems/pressure_v2 (whose PressureTuning struct names
// the constants the spec leaves implicit) even though that crate's own
// generate() is an unimplemented stub.
package wavegen

import (
	"math"
	"sort"

	"github.com/Mikko-Finell/maze-defence/internal/prng"
	"github.com/Mikko-Finell/maze-defence/internal/simtypes"
	"github.com/Mikko-Finell/maze-defence/internal/tuning"
)

type species struct {
	hpMul  float64
	spdMul float64
	count  int
}

// Generate runs every stage of §4.6 in order and returns the resulting
// AttackPlan (minus WaveId, set by the caller) along with telemetry
// records from the species-merge and duration-compression stages, each
// present whether or not it triggered. The other stages emit no telemetry.
func Generate(seed uint64, t tuning.WaveGen, difficulty float64) ([]simtypes.AttackPlanRecord, []simtypes.SpeciesMergeTelemetry) {
	s := prng.NewStream(seed)
	var telemetry []simtypes.SpeciesMergeTelemetry

	// Stage 1: count latent.
	muCount := t.CountMin + (t.CountCap-t.CountMin)/(1+math.Exp(-t.CountA*(difficulty-t.CountDMid)))
	count := int(math.Round(s.TruncatedNormal(muCount, 0.08*muCount, 5, t.CountCap)))
	if count < 1 {
		count = 1
	}

	// Stage 2: HP latent.
	muHPMul := (1 + t.HPSoft*(1-math.Exp(-t.HPK*(difficulty-1)))) * math.Pow(t.HPG, math.Max(0, difficulty-t.HPDh))
	hpMul0 := s.TruncatedNormal(muHPMul, 0.05, t.HPMulMin, t.HPMulMax)

	// Stage 3: speed latent, analogous curve.
	muVMul := (1 + t.SpeedSoft*(1-math.Exp(-t.SpeedK*(difficulty-1)))) * math.Pow(t.SpeedG, math.Max(0, difficulty-t.HPDh))
	spdMul0 := s.TruncatedNormal(muVMul, 0.05, t.SpeedMulMin, t.SpeedMulMax)

	// Stage 4: pressure budget.
	pressureWave := math.Round(float64(count) * (t.PressureAlpha*t.HPBase*hpMul0 + t.PressureBeta*math.Pow(spdMul0, t.PressureGamma)))

	// Stage 5: species count.
	kappa := t.PoissonIntercept + t.PoissonSlope*math.Max(0, difficulty-1)
	kRaw := s.Poisson(kappa)
	shareFloor := int(math.Ceil(t.MinShareFraction * float64(count)))
	if shareFloor < 1 {
		shareFloor = 1
	}
	maxByShare := count / shareFloor
	k := kRaw
	if k > t.MaxSpeciesCount {
		k = t.MaxSpeciesCount
	}
	if k > maxByShare {
		k = maxByShare
	}
	if k < 1 {
		k = 1
	}

	// Stage 6: species centres.
	logHPMean := math.Log(muHPMul)
	logVMean := math.Log(muVMul)
	specs := make([]species, k)
	for i := 0; i < k; i++ {
		logHP, logV := s.BivariateTruncatedNormal(logHPMean, logVMean, t.LogSigma, t.LogRho)
		specs[i].hpMul = clampF(math.Exp(logHP), t.HPMulMin, t.HPMulMax)
		specs[i].spdMul = clampF(math.Exp(logV), t.SpeedMulMin, t.SpeedMulMax)
	}

	// Stage 7: apportionment via Dirichlet + Hamilton largest-remainder.
	mix := s.Dirichlet(t.MixAlpha, k)
	specs = apportion(specs, mix, count)

	// Stage 8: merge pass.
	specs, telemetry = mergeUnderShare(specs, shareFloor, telemetry)

	// Stage 9: global eta scaling via fixed-iteration bisection.
	eta := solveEta(specs, t, float64(pressureWave))
	for i := range specs {
		specs[i].hpMul *= eta
		specs[i].spdMul *= eta
	}

	// Stage 10: cadence + start offset, per species, Cad_s before Start_s.
	muCad := clampF(t.CadenceBaseMs+t.CadenceSlopeMsPerD*(difficulty-1), float64(t.CadenceMinMs), float64(t.CadenceMaxMs))
	cadences := make([]float64, k)
	starts := make([]float64, k)
	for i := 0; i < k; i++ {
		cadences[i] = s.TruncatedNormal(muCad, t.CadenceSdRatio*muCad, float64(t.CadenceMinMs), float64(t.CadenceMaxMs))
		starts[i] = s.TruncatedNormal(t.StartMeanMs, t.StartSdRatio*t.StartMeanMs, 0, t.StartMaxMs)
	}

	// Stage 11: schedule.
	records := schedule(specs, cadences, starts, t)

	// Stage 12: duration compression.
	records, telemetry = compress(records, specs, cadences, starts, t, difficulty, telemetry)

	// Stage 13: sort by (time_ms, species_id, index_within_species).
	sort.Slice(records, func(i, j int) bool {
		if records[i].TimeMs != records[j].TimeMs {
			return records[i].TimeMs < records[j].TimeMs
		}
		if records[i].SpeciesId != records[j].SpeciesId {
			return records[i].SpeciesId < records[j].SpeciesId
		}
		return records[i].IndexWithinSpecies < records[j].IndexWithinSpecies
	})

	return records, telemetry
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// apportion converts a Dirichlet mixture into integer per-species counts
// summing exactly to total via Hamilton's largest-remainder method.
func apportion(specs []species, mix []float64, total int) []species {
	k := len(specs)
	raw := make([]float64, k)
	floorSum := 0
	for i, m := range mix {
		raw[i] = m * float64(total)
		specs[i].count = int(math.Floor(raw[i]))
		floorSum += specs[i].count
	}
	remainder := total - floorSum

	type frac struct {
		idx int
		rem float64
	}
	fracs := make([]frac, k)
	for i := range raw {
		fracs[i] = frac{idx: i, rem: raw[i] - math.Floor(raw[i])}
	}
	sort.Slice(fracs, func(i, j int) bool {
		if fracs[i].rem != fracs[j].rem {
			return fracs[i].rem > fracs[j].rem
		}
		return fracs[i].idx < fracs[j].idx
	})
	for i := 0; i < remainder && i < len(fracs); i++ {
		specs[fracs[i].idx].count++
	}
	return specs
}

// mergeUnderShare repeatedly folds the smallest under-share species into
// its nearest neighbour in normalized log-space until every remaining
// species clears the floor or only one remains (§4.6 stage 8).
func mergeUnderShare(specs []species, shareFloor int, telemetry []simtypes.SpeciesMergeTelemetry) ([]species, []simtypes.SpeciesMergeTelemetry) {
	triggeredAny := false
	for len(specs) > 1 {
		smallest := -1
		for i, sp := range specs {
			if sp.count < shareFloor {
				if smallest == -1 || sp.count < specs[smallest].count {
					smallest = i
				}
			}
		}
		if smallest == -1 {
			break
		}

		nearest := -1
		bestDist := math.MaxFloat64
		for i, sp := range specs {
			if i == smallest {
				continue
			}
			d := math.Abs(math.Log(sp.hpMul)-math.Log(specs[smallest].hpMul)) +
				math.Abs(math.Log(sp.spdMul)-math.Log(specs[smallest].spdMul))
			if d < bestDist {
				bestDist = d
				nearest = i
			}
		}

		specs[nearest].count += specs[smallest].count
		specs = append(specs[:smallest], specs[smallest+1:]...)
		triggeredAny = true
		telemetry = append(telemetry, simtypes.SpeciesMergeTelemetry{
			Stage: "species_merge", Triggered: true,
			FromSpecies: smallest, IntoSpecies: nearest,
		})
	}
	if !triggeredAny {
		telemetry = append(telemetry, simtypes.SpeciesMergeTelemetry{Stage: "species_merge", Triggered: false})
	}
	return specs, telemetry
}

// solveEta bisects for a fixed number of iterations to bring the wave's
// total pressure to target (§4.6 stage 9).
func solveEta(specs []species, t tuning.WaveGen, target float64) float64 {
	pressureAt := func(eta float64) float64 {
		var total float64
		for _, sp := range specs {
			total += float64(sp.count) * (t.PressureAlpha*eta*t.HPBase*sp.hpMul + t.PressureBeta*math.Pow(eta*sp.spdMul, t.PressureGamma))
		}
		return total
	}

	lo, hi := t.EtaLo, t.EtaHi
	for i := 0; i < t.EtaIterations; i++ {
		mid := (lo + hi) / 2
		if pressureAt(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return clampF((lo+hi)/2, t.EtaLo, t.EtaHi)
}

func schedule(specs []species, cadences, starts []float64, t tuning.WaveGen) []simtypes.AttackPlanRecord {
	var records []simtypes.AttackPlanRecord
	for s, sp := range specs {
		for i := 0; i < sp.count; i++ {
			timeMs := starts[s] + float64(i)*cadences[s]
			records = append(records, simtypes.AttackPlanRecord{
				TimeMs:             int64(math.Round(timeMs)),
				SpeciesId:          s,
				IndexWithinSpecies: i,
				Health:             healthFor(sp, t),
				StepMs:             stepMsFor(sp, t),
			})
		}
	}
	return records
}

func healthFor(sp species, t tuning.WaveGen) int {
	h := int(math.Round(t.HPBase * sp.hpMul))
	if h < 1 {
		h = 1
	}
	return h
}

func stepMsFor(sp species, t tuning.WaveGen) int64 {
	if sp.spdMul <= 0 {
		return int64(t.BaseStepMs)
	}
	ms := int64(math.Round(t.BaseStepMs / sp.spdMul))
	if ms < 1 {
		ms = 1
	}
	return ms
}

// compress enforces the duration target by shrinking cadences (§4.6
// stage 12): if the schedule's span exceeds T_target(D), cadences shrink
// by the overrun ratio, clamped at cad_min, and the schedule is rebuilt.
// The compressed result is accepted even when cad_min prevents the
// target from being fully met.
func compress(records []simtypes.AttackPlanRecord, specs []species, cadences, starts []float64, t tuning.WaveGen, difficulty float64, telemetry []simtypes.SpeciesMergeTelemetry) ([]simtypes.AttackPlanRecord, []simtypes.SpeciesMergeTelemetry) {
	var maxTime int64
	for _, r := range records {
		if r.TimeMs > maxTime {
			maxTime = r.TimeMs
		}
	}

	target := t.TargetDurationBaseMs + t.TargetDurationSlopeMs*(difficulty-1)
	if target < float64(t.CadenceMinMs) {
		target = float64(t.CadenceMinMs)
	}

	if float64(maxTime) <= target {
		telemetry = append(telemetry, simtypes.SpeciesMergeTelemetry{Stage: "duration_compression", Triggered: false})
		return records, telemetry
	}

	c := float64(maxTime) / target
	newCadences := make([]float64, len(cadences))
	for i, cad := range cadences {
		compressed := math.Floor(cad / c)
		if compressed < float64(t.CadenceMinMs) {
			compressed = float64(t.CadenceMinMs)
		}
		newCadences[i] = compressed
	}

	telemetry = append(telemetry, simtypes.SpeciesMergeTelemetry{Stage: "duration_compression", Triggered: true})
	return schedule(specs, newCadences, starts, t), telemetry
}
