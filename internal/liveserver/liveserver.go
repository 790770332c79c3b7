// Package liveserver exposes a running World to spectators over a
// websocket, replacing the teacher's hex-map raylib window with a
// text-protocol read-only feed. It generalizes n0remac-Light-Speed-Duel's
// net.go/internal/server/ws.go shape (an upgrader, a per-connection
// read goroutine, and a ticker-driven write goroutine emitting JSON state
// frames) from that project's per-player ghost/missile view to a single
// shared simulation's bug/tower/projectile/analytics view. Spectators
// never mutate the world: the read goroutine discards every inbound frame
// and only watches for the connection closing; everything else is outbound.
package liveserver

import (
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Mikko-Finell/maze-defence/internal/simtypes"
)

// WorldView is the read-only query surface liveserver broadcasts. It is
// satisfied by *world.World directly.
type WorldView interface {
	PlayMode() simtypes.PlayMode
	Gold() uint64
	DifficultyTier() int
	BugViews() []simtypes.BugView
	TowerViews() []simtypes.TowerView
	ProjectileViews() []simtypes.ProjectileView
	Analytics() simtypes.Analytics
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server fans out a snapshot of World to every connected spectator at a
// fixed tick rate.
type Server struct {
	world    WorldView
	rateHz   float64
	log      *log.Logger
	register chan *spectator
	unreg    chan *spectator
	spectators map[*spectator]struct{}
}

// New creates a server that samples world at rateHz frames per second.
func New(world WorldView, rateHz float64) *Server {
	if rateHz <= 0 {
		rateHz = 10
	}
	return &Server{
		world:      world,
		rateHz:     rateHz,
		log:        log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "liveserver"}),
		register:   make(chan *spectator),
		unreg:      make(chan *spectator),
		spectators: make(map[*spectator]struct{}),
	}
}

// Run drives the broadcast loop until stop is closed. It is meant to run
// in its own goroutine alongside the simulation driver's tick loop.
func (s *Server) Run(stop <-chan struct{}) {
	ticker := time.NewTicker(time.Duration(1000.0/s.rateHz) * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			for sp := range s.spectators {
				sp.conn.Close()
			}
			return
		case sp := <-s.register:
			s.spectators[sp] = struct{}{}
			s.log.Info("spectator connected", "id", sp.id)
		case sp := <-s.unreg:
			if _, ok := s.spectators[sp]; ok {
				delete(s.spectators, sp)
				sp.conn.Close()
				s.log.Info("spectator disconnected", "id", sp.id)
			}
		case <-ticker.C:
			frame := s.snapshot()
			for sp := range s.spectators {
				select {
				case sp.out <- frame:
				default:
					s.log.Warn("spectator send buffer full, dropping", "id", sp.id)
				}
			}
		}
	}
}

// ServeHTTP upgrades the request to a websocket and registers a spectator
// connection, mirroring serveWS's per-connection read/write goroutine
// split.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", "err", err)
		return
	}

	sp := &spectator{
		id:   uuid.NewString(),
		conn: conn,
		out:  make(chan stateFrame, 8),
		done: make(chan struct{}),
	}
	s.register <- sp

	go s.readPump(sp)
	go s.writePump(sp)
}

// readPump discards everything but a close signal; spectators are
// read-only clients.
func (s *Server) readPump(sp *spectator) {
	defer func() {
		s.unreg <- sp
		close(sp.done)
	}()
	for {
		if _, _, err := sp.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) writePump(sp *spectator) {
	for {
		select {
		case <-sp.done:
			return
		case frame := <-sp.out:
			if err := sp.conn.WriteJSON(frame); err != nil {
				return
			}
		}
	}
}

type spectator struct {
	id   string
	conn *websocket.Conn
	out  chan stateFrame
	done chan struct{}
}

type stateFrame struct {
	Type           string          `json:"type"`
	PlayMode       string          `json:"play_mode"`
	Gold           uint64          `json:"gold"`
	DifficultyTier int             `json:"difficulty_tier"`
	Bugs           []bugDTO        `json:"bugs"`
	Towers         []towerDTO      `json:"towers"`
	Projectiles    []projectileDTO `json:"projectiles"`
	Analytics      analyticsDTO    `json:"analytics"`
}

type bugDTO struct {
	Id      uint64 `json:"id"`
	Col     int    `json:"col"`
	Row     int    `json:"row"`
	Health  int    `json:"health"`
	Species string `json:"species"`
	Tint    uint32 `json:"tint"`
}

type towerDTO struct {
	Id       uint64 `json:"id"`
	Kind     int    `json:"kind"`
	Col      int    `json:"col"`
	Row      int    `json:"row"`
	Cooldown int64  `json:"cooldown_ms"`
}

type projectileDTO struct {
	Id        uint64 `json:"id"`
	Tower     uint64 `json:"tower"`
	Target    uint64 `json:"target"`
	ElapsedMs int64  `json:"elapsed_ms"`
	TravelMs  int64  `json:"travel_ms"`
}

type analyticsDTO struct {
	CoverageMean          float64 `json:"coverage_mean"`
	FiringCompletePercent float64 `json:"firing_complete_percent"`
	ShortestPathLength    int     `json:"shortest_path_length"`
	TowerCount            int     `json:"tower_count"`
	TotalDps              float64 `json:"total_dps"`
	CongestionHotCells    int     `json:"congestion_hot_cells"`
}

func (s *Server) snapshot() stateFrame {
	bugs := s.world.BugViews()
	bugDTOs := make([]bugDTO, 0, len(bugs))
	for _, b := range bugs {
		bugDTOs = append(bugDTOs, bugDTO{
			Id: uint64(b.Id), Col: b.Cell.Col, Row: b.Cell.Row,
			Health: b.Health, Species: b.Species, Tint: b.Tint,
		})
	}

	towers := s.world.TowerViews()
	towerDTOs := make([]towerDTO, 0, len(towers))
	for _, t := range towers {
		towerDTOs = append(towerDTOs, towerDTO{
			Id: uint64(t.Id), Kind: int(t.Kind),
			Col: t.Region.Origin.Col, Row: t.Region.Origin.Row,
			Cooldown: t.Cooldown,
		})
	}

	projectiles := s.world.ProjectileViews()
	projDTOs := make([]projectileDTO, 0, len(projectiles))
	for _, p := range projectiles {
		projDTOs = append(projDTOs, projectileDTO{
			Id: uint64(p.Id), Tower: uint64(p.Tower), Target: uint64(p.Target),
			ElapsedMs: p.ElapsedMs, TravelMs: p.TravelTimeMs,
		})
	}

	a := s.world.Analytics()
	return stateFrame{
		Type:           "state",
		PlayMode:       s.world.PlayMode().String(),
		Gold:           s.world.Gold(),
		DifficultyTier: s.world.DifficultyTier(),
		Bugs:           bugDTOs,
		Towers:         towerDTOs,
		Projectiles:    projDTOs,
		Analytics: analyticsDTO{
			CoverageMean:          a.CoverageMean,
			FiringCompletePercent: a.FiringCompletePercent,
			ShortestPathLength:    a.ShortestPathLength,
			TowerCount:            a.TowerCount,
			TotalDps:              a.TotalDps,
			CongestionHotCells:    a.CongestionHotCells,
		},
	}
}
