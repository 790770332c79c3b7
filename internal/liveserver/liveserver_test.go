package liveserver

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Mikko-Finell/maze-defence/internal/simtypes"
)

type fakeWorld struct{}

func (fakeWorld) PlayMode() simtypes.PlayMode { return simtypes.Attack }
func (fakeWorld) Gold() uint64                { return 42 }
func (fakeWorld) DifficultyTier() int         { return 3 }
func (fakeWorld) BugViews() []simtypes.BugView {
	return []simtypes.BugView{{Id: 1, Cell: simtypes.Cell{Col: 2, Row: 3}, Health: 5, Species: "a"}}
}
func (fakeWorld) TowerViews() []simtypes.TowerView { return nil }
func (fakeWorld) ProjectileViews() []simtypes.ProjectileView { return nil }
func (fakeWorld) Analytics() simtypes.Analytics {
	return simtypes.Analytics{TowerCount: 0}
}

func TestServeHTTPBroadcastsStateFrame(t *testing.T) {
	srv := New(fakeWorld{}, 50)
	stop := make(chan struct{})
	go srv.Run(stop)
	defer close(stop)

	ts := httptest.NewServer(srv)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame stateFrame
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if frame.Type != "state" {
		t.Fatalf("frame type = %q, want \"state\"", frame.Type)
	}
	if frame.Gold != 42 {
		t.Fatalf("frame gold = %d, want 42", frame.Gold)
	}
	if frame.DifficultyTier != 3 {
		t.Fatalf("frame difficulty_tier = %d, want 3", frame.DifficultyTier)
	}
	if len(frame.Bugs) != 1 || frame.Bugs[0].Id != 1 {
		t.Fatalf("unexpected bugs in frame: %#v", frame.Bugs)
	}
}

func TestNewDefaultsNonPositiveRate(t *testing.T) {
	srv := New(fakeWorld{}, 0)
	if srv.rateHz != 10 {
		t.Fatalf("rateHz = %v, want default 10", srv.rateHz)
	}
}
