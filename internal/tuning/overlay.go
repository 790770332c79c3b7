package tuning

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadOverlay reads path (a .env file, in the shape steerpike-dungeonband
// uses for its runtime configuration) and overlays any recognized keys
// onto base. A missing file is not an error — it just means "no overlay",
// the common case for a developer running the demo without a .env.
func LoadOverlay(path string, base Tuning) (Tuning, error) {
	out := base
	vars, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return out, err
	}

	if v, ok := intVar(vars, "MAZE_CONGESTION_LOOKAHEAD"); ok {
		out.Movement.CongestionLookahead = v
	}
	if v, ok := intVar(vars, "MAZE_DETOUR_RADIUS"); ok {
		out.Movement.DetourRadius = v
	}
	if v, ok := int64Var(vars, "MAZE_BASIC_FIRE_COOLDOWN_MS"); ok {
		out.Combat.BasicFireCooldownMs = v
	}
	if v, ok := intVar(vars, "MAZE_BASIC_DAMAGE"); ok {
		out.Combat.BasicDamage = v
	}
	if v, ok := intVar(vars, "MAZE_BASIC_RANGE_TILES"); ok {
		out.Combat.BasicRangeInTiles = v
	}
	return out, nil
}

func intVar(vars map[string]string, key string) (int, bool) {
	raw, ok := vars[key]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func int64Var(vars map[string]string, key string) (int64, bool) {
	raw, ok := vars[key]
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
