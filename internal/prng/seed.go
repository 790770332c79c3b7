package prng

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// WaveSeed computes the stable 64-bit hash over a documented labelled
// concatenation of (game_seed, level_id, wave_index, difficulty) that
// seeds a wave's generator (§4.6, §5 determinism invariant 4). The label
// scheme keeps two waves with swapped inputs (e.g. level_id and
// wave_index) from accidentally hashing to the same seed.
func WaveSeed(gameSeed uint64, levelId int, waveIndex int, difficulty float64) uint64 {
	var buf []byte
	buf = append(buf, "game:"...)
	buf = strconv.AppendUint(buf, gameSeed, 10)
	buf = append(buf, "|level:"...)
	buf = strconv.AppendInt(buf, int64(levelId), 10)
	buf = append(buf, "|wave:"...)
	buf = strconv.AppendInt(buf, int64(waveIndex), 10)
	buf = append(buf, "|difficulty:"...)
	buf = strconv.AppendInt(buf, int64(difficulty*1000), 10) // fixed-point, 3 decimals
	return xxhash.Sum64(buf)
}
