// Package layout implements the maze layout transfer format (§6): a
// compact textual encoding towers can be copied/pasted through, replacing
// the hex-map JSON the teacher never had an equivalent of. It is grounded
// on original_source/adapters/cli/src/layout_transfer.rs, whose
// "maze:v1:ColxRow:<base64 json>" scheme this package still accepts for
// backward compatibility alongside the new varint-encoded v2 form.
package layout

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Mikko-Finell/maze-defence/internal/simtypes"
)

const (
	v2Header = "maze:v2"
	v1Header = "maze:v1"
)

// Tower is one placed tower within a layout snapshot.
type Tower struct {
	Kind   simtypes.TowerKind
	Origin simtypes.Cell
}

// Snapshot is the full decoded layout: grid dimensions plus every tower.
type Snapshot struct {
	TileCols     int
	TileRows     int
	CellsPerTile int
	Towers       []Tower
}

// Encode renders a snapshot as the v2 textual form: "maze:v2:CxR|<payload>"
// where payload is URL-safe base64 of varint-encoded
// (cells_per_tile, tower_count, (kind, col, row)xN) (§6).
func Encode(s Snapshot) string {
	buf := make([]byte, 0, 16+len(s.Towers)*9)
	buf = binary.AppendUvarint(buf, uint64(s.CellsPerTile))
	buf = binary.AppendUvarint(buf, uint64(len(s.Towers)))
	for _, t := range s.Towers {
		buf = binary.AppendUvarint(buf, uint64(t.Kind))
		buf = binary.AppendUvarint(buf, uint64(t.Origin.Col))
		buf = binary.AppendUvarint(buf, uint64(t.Origin.Row))
	}
	payload := base64.URLEncoding.EncodeToString(buf)
	return fmt.Sprintf("%s:%dx%d|%s", v2Header, s.TileCols, s.TileRows, payload)
}

// Decode parses either the v2 varint form or a legacy v1 JSON payload
// (§6 "Legacy maze:v1 JSON payloads must be accepted"). The CxR grid
// embedded in the payload always overrides any configuration the caller
// already holds.
func Decode(value string) (Snapshot, error) {
	trimmed := strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(trimmed, v2Header+":"):
		return decodeV2(trimmed)
	case strings.HasPrefix(trimmed, v1Header+":"):
		return decodeV1(trimmed)
	default:
		return Snapshot{}, fmt.Errorf("layout: unrecognized header in %q", trimmed)
	}
}

func decodeV2(value string) (Snapshot, error) {
	rest := strings.TrimPrefix(value, v2Header+":")
	dims, payload, ok := strings.Cut(rest, "|")
	if !ok {
		return Snapshot{}, fmt.Errorf("layout: v2 payload missing '|' separator")
	}
	cols, rows, err := parseDimensions(dims)
	if err != nil {
		return Snapshot{}, err
	}

	buf, err := base64.URLEncoding.DecodeString(payload)
	if err != nil {
		return Snapshot{}, fmt.Errorf("layout: invalid v2 base64 payload: %w", err)
	}

	cellsPerTile, n := binary.Uvarint(buf)
	if n <= 0 {
		return Snapshot{}, fmt.Errorf("layout: malformed v2 payload (cells_per_tile)")
	}
	buf = buf[n:]

	towerCount, n := binary.Uvarint(buf)
	if n <= 0 {
		return Snapshot{}, fmt.Errorf("layout: malformed v2 payload (tower_count)")
	}
	buf = buf[n:]

	towers := make([]Tower, 0, towerCount)
	for i := uint64(0); i < towerCount; i++ {
		kind, n := binary.Uvarint(buf)
		if n <= 0 {
			return Snapshot{}, fmt.Errorf("layout: malformed v2 payload (tower kind)")
		}
		buf = buf[n:]

		col, n := binary.Uvarint(buf)
		if n <= 0 {
			return Snapshot{}, fmt.Errorf("layout: malformed v2 payload (origin col)")
		}
		buf = buf[n:]

		row, n := binary.Uvarint(buf)
		if n <= 0 {
			return Snapshot{}, fmt.Errorf("layout: malformed v2 payload (origin row)")
		}
		buf = buf[n:]

		towers = append(towers, Tower{
			Kind:   simtypes.TowerKind(kind),
			Origin: simtypes.Cell{Col: int(col), Row: int(row)},
		})
	}

	return Snapshot{
		TileCols:     cols,
		TileRows:     rows,
		CellsPerTile: int(cellsPerTile),
		Towers:       towers,
	}, nil
}

// legacyTower and legacySnapshot mirror layout_transfer.rs's
// TowerLayoutTower/SerializableSnapshot JSON shape exactly, so v1 strings
// produced by the original implementation decode unchanged.
type legacyTower struct {
	Kind   int `json:"kind"`
	Origin struct {
		Col int `json:"col"`
		Row int `json:"row"`
	} `json:"origin"`
}

type legacySnapshot struct {
	TileLength   float32       `json:"tile_length"`
	CellsPerTile int           `json:"cells_per_tile"`
	Towers       []legacyTower `json:"towers"`
}

func decodeV1(value string) (Snapshot, error) {
	rest := strings.TrimPrefix(value, v1Header+":")
	dims, payload, ok := strings.Cut(rest, ":")
	if !ok {
		return Snapshot{}, fmt.Errorf("layout: v1 payload missing dimensions separator")
	}
	cols, rows, err := parseDimensions(dims)
	if err != nil {
		return Snapshot{}, err
	}

	buf, err := base64.StdEncoding.WithPadding(base64.NoPadding).DecodeString(payload)
	if err != nil {
		return Snapshot{}, fmt.Errorf("layout: invalid v1 base64 payload: %w", err)
	}

	var decoded legacySnapshot
	if err := json.Unmarshal(buf, &decoded); err != nil {
		return Snapshot{}, fmt.Errorf("layout: invalid v1 json payload: %w", err)
	}

	towers := make([]Tower, 0, len(decoded.Towers))
	for _, t := range decoded.Towers {
		towers = append(towers, Tower{
			Kind:   simtypes.TowerKind(t.Kind),
			Origin: simtypes.Cell{Col: t.Origin.Col, Row: t.Origin.Row},
		})
	}

	return Snapshot{
		TileCols:     cols,
		TileRows:     rows,
		CellsPerTile: decoded.CellsPerTile,
		Towers:       towers,
	}, nil
}

func parseDimensions(dims string) (int, int, error) {
	colsStr, rowsStr, ok := strings.Cut(strings.ToLower(dims), "x")
	if !ok {
		return 0, 0, fmt.Errorf("layout: invalid dimensions %q", dims)
	}
	cols, err := strconv.Atoi(strings.TrimSpace(colsStr))
	if err != nil || cols <= 0 {
		return 0, 0, fmt.Errorf("layout: invalid column count in %q", dims)
	}
	rows, err := strconv.Atoi(strings.TrimSpace(rowsStr))
	if err != nil || rows <= 0 {
		return 0, 0, fmt.Errorf("layout: invalid row count in %q", dims)
	}
	return cols, rows, nil
}
