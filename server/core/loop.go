package core

import (
	"log"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

type GameLoop struct {
	server   *Server
	tickRate int
	dt       time.Duration
	running  bool
	stopChan chan struct{}

	// Zero disables the periodic stats line
	StatsInterval time.Duration
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		dt:       time.Second / time.Duration(tickRate),
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	g.running = true
	ticker := time.NewTicker(g.dt)
	defer ticker.Stop()

	var stats <-chan time.Time
	if g.StatsInterval > 0 {
		statsTicker := time.NewTicker(g.StatsInterval)
		defer statsTicker.Stop()
		stats = statsTicker.C
	}

	log.Printf("[server] Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("[server] Game loop stopped")
			return
		case <-ticker.C:
			g.tick()
		case <-stats:
			g.logStats()
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

// tick runs one fixed step: connection events and inputs, the simulation,
// then the network snapshot.
func (g *GameLoop) tick() {
	g.server.ProcessCommands()
	g.server.sim.Step(g.dt)
	g.server.syncNetState()

	if err := srvsync.DoSync(); err != nil {
		log.Printf("[server] Sync error: %v", err)
	}
}

func (g *GameLoop) logStats() {
	stats := g.server.sim.MutationStats()
	log.Printf("[server] tick %d, %d players, %d mutations applied, %d dropped",
		g.server.sim.Tick(), g.server.PlayerCount(), stats.Applied, stats.Dropped)
}
