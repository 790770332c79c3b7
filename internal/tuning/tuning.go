// Package tuning holds the single configuration struct §6 calls for,
// generalizing the teacher's internal/config/config.go constant block
// (HexSize, TowerRange, ProjectileSpeed, ...) to the spec's tile-based
// kernel. Unlike the teacher, values here can be overlaid from a .env
// file via godotenv so a deployment can retune the crowd planner or the
// Basic tower's combat stats without a rebuild. Wave-generator constants
// are overlaid from YAML by internal/defs, not from .env.
package tuning

// Movement holds the crowd planner's bounded-search parameters (§4.3).
type Movement struct {
	CongestionLookahead int
	DetourRadius        int
}

// Combat holds per-tower-kind constants. Only Basic exists today (§6).
type Combat struct {
	BasicFireCooldownMs         int64
	BasicProjectileTravelTimeMs int64
	BasicDamage                 int
	BasicRangeInTiles           int
}

// WaveGen holds the wave generator's defaults (§4.6). Field names follow
// the Greek-letter variables the spec names; where the spec under-
// specifies a constant (κ(D)'s own slope/intercept, the base bug cadence
// a speed multiplier of 1 corresponds to, the duration target's slope),
// the value is grounded on original_source/systems/pressure_v2's
// ComponentTuning/CadenceTuning defaults, the only place those constants
// are named even though that crate's generate() is itself an unimplemented
// stub.
type WaveGen struct {
	CountMin, CountCap float64
	CountDMid, CountA  float64

	HPBase, HPSoft, HPK, HPG float64
	HPDh                     float64
	HPMulMin, HPMulMax       float64

	SpeedSoft, SpeedK, SpeedG float64
	SpeedMulMin, SpeedMulMax  float64
	BaseStepMs                float64

	PressureAlpha, PressureBeta, PressureGamma float64

	PoissonIntercept, PoissonSlope float64
	MaxSpeciesCount                int

	MixAlpha         float64
	MinShareFraction float64
	LogSigma         float64
	LogRho           float64

	EtaLo, EtaHi  float64
	EtaIterations int

	CadenceMinMs, CadenceMaxMs int64
	CadenceSdRatio             float64
	CadenceBaseMs, CadenceSlopeMsPerD float64

	StartMeanMs    float64
	StartSdRatio   float64
	StartMaxMs     float64

	TargetDurationBaseMs   float64
	TargetDurationSlopeMs float64
}

// Tuning is the full tunable surface, exposed as one struct per §6.
type Tuning struct {
	Movement Movement
	Combat   Combat
	WaveGen  WaveGen
}

// Default returns the compiled-in defaults from §4.3, §4.6, and §6.
func Default() Tuning {
	return Tuning{
		Movement: Movement{
			CongestionLookahead: 5,
			DetourRadius:        6,
		},
		Combat: Combat{
			BasicFireCooldownMs:         1000,
			BasicProjectileTravelTimeMs: 1000,
			BasicDamage:                 1,
			BasicRangeInTiles:           4,
		},
		WaveGen: WaveGen{
			CountMin: 20, CountCap: 1000, CountDMid: 3, CountA: 1.2,

			HPBase: 10, HPSoft: 0.6, HPK: 1.0, HPG: 1.08, HPDh: 4,
			HPMulMin: 0.6, HPMulMax: 2.2,

			SpeedSoft: 0.6, SpeedK: 1.0, SpeedG: 1.08,
			SpeedMulMin: 0.6, SpeedMulMax: 1.7,
			BaseStepMs: 300,

			PressureAlpha: 1, PressureBeta: 0.6, PressureGamma: 1,

			PoissonIntercept: 1.2, PoissonSlope: 0.45,
			MaxSpeciesCount: 6,

			MixAlpha:         1.5,
			MinShareFraction: 0.10,
			LogSigma:         0.10,
			LogRho:           -0.5,

			EtaLo: 0.75, EtaHi: 1.5, EtaIterations: 24,

			CadenceMinMs: 120, CadenceMaxMs: 2000,
			CadenceSdRatio: 0.08, CadenceBaseMs: 600, CadenceSlopeMsPerD: -40,

			StartMeanMs: 1000, StartSdRatio: 0.15, StartMaxMs: 10000,

			TargetDurationBaseMs: 60000, TargetDurationSlopeMs: -1500,
		},
	}
}
