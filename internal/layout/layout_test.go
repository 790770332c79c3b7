package layout

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/Mikko-Finell/maze-defence/internal/simtypes"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := Snapshot{
		TileCols:     6,
		TileRows:     8,
		CellsPerTile: 2,
		Towers: []Tower{
			{Kind: simtypes.Basic, Origin: simtypes.Cell{Col: 3, Row: 5}},
			{Kind: simtypes.Basic, Origin: simtypes.Cell{Col: 9, Row: 1}},
		},
	}

	encoded := Encode(s)
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.TileCols != s.TileCols || decoded.TileRows != s.TileRows || decoded.CellsPerTile != s.CellsPerTile {
		t.Fatalf("dimensions mismatch: got %+v, want %+v", decoded, s)
	}
	if len(decoded.Towers) != len(s.Towers) {
		t.Fatalf("tower count mismatch: got %d, want %d", len(decoded.Towers), len(s.Towers))
	}
	for i := range s.Towers {
		if decoded.Towers[i] != s.Towers[i] {
			t.Fatalf("tower %d mismatch: got %+v, want %+v", i, decoded.Towers[i], s.Towers[i])
		}
	}
}

func TestEncodeDecodeEmptyTowers(t *testing.T) {
	s := Snapshot{TileCols: 4, TileRows: 4, CellsPerTile: 2}
	decoded, err := Decode(Encode(s))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded.Towers) != 0 {
		t.Fatalf("expected no towers, got %#v", decoded.Towers)
	}
}

func TestDecodeRejectsUnrecognizedHeader(t *testing.T) {
	if _, err := Decode("bogus:v9:whatever"); err == nil {
		t.Fatalf("expected an error for an unrecognized header")
	}
}

func TestDecodeLegacyV1Payload(t *testing.T) {
	legacy := legacySnapshot{
		TileLength:   32,
		CellsPerTile: 2,
		Towers: []legacyTower{
			{Kind: 0, Origin: struct {
				Col int `json:"col"`
				Row int `json:"row"`
			}{Col: 2, Row: 3}},
		},
	}
	raw, err := json.Marshal(legacy)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	payload := base64.StdEncoding.WithPadding(base64.NoPadding).EncodeToString(raw)
	value := "maze:v1:5x5:" + payload

	decoded, err := Decode(value)
	if err != nil {
		t.Fatalf("Decode v1: %v", err)
	}
	if decoded.TileCols != 5 || decoded.TileRows != 5 {
		t.Fatalf("dimensions mismatch: %+v", decoded)
	}
	if len(decoded.Towers) != 1 || decoded.Towers[0].Origin.Col != 2 || decoded.Towers[0].Origin.Row != 3 {
		t.Fatalf("unexpected towers: %#v", decoded.Towers)
	}
}

func TestParseDimensionsRejectsInvalidInput(t *testing.T) {
	if _, err := Decode("maze:v2:notadimension|"); err == nil {
		t.Fatalf("expected an error for invalid dimensions")
	}
}
