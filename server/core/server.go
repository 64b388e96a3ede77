package core

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/doomerang-actions/config"
	"github.com/automoto/doomerang-actions/shared/leveldata"
	"github.com/automoto/doomerang-actions/shared/messages"
	"github.com/automoto/doomerang-actions/shared/netcomponents"
	"github.com/automoto/doomerang-actions/sim"
	"github.com/automoto/doomerang-actions/tags"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

type commandKind int

const (
	cmdJoin commandKind = iota
	cmdLeave
)

// command is a connection event queued by a network goroutine and applied
// by the game loop, which owns the world.
type command struct {
	kind   commandKind
	client *router.NetworkClient
}

// playerSlot is a connected client's combatant and its latest input.
type playerSlot struct {
	entity  donburi.Entity
	input   messages.PlayerInput
	latched bool // primary was down in some input since the last tick
}

// Server manages the game state and client connections
type Server struct {
	sim       *sim.World
	loop      *GameLoop
	transport *transports.WsServerTransport
	combos    *config.ComboRegistry

	mu       sync.Mutex
	commands []command
	inputs   map[*router.NetworkClient]messages.PlayerInput
	latches  map[*router.NetworkClient]bool
	lastSeq  map[*router.NetworkClient]uint32 // newest accepted sequence, kept across ticks

	// Owned by the game loop
	players map[*router.NetworkClient]*playerSlot
	bots    []donburi.Entity
}

// NewServer creates a new game server around the given arena. A nil arena
// gives an empty walled-off field of the configured size.
func NewServer(tickRate int, combos *config.ComboRegistry, arenaName string, arena *leveldata.CollisionData) *Server {
	var world *sim.World
	if arena != nil {
		world = sim.NewWorldWithLevel(arenaName, arena)
		log.Printf("[level] Loaded arena %s: %d solid tiles, %d spawn points, %dx%d map",
			arenaName, len(arena.SolidRects), len(arena.SpawnPoints), arena.MapWidth, arena.MapHeight)
	} else {
		world = sim.NewWorld()
	}

	s := &Server{
		sim:     world,
		combos:  combos,
		inputs:  make(map[*router.NetworkClient]messages.PlayerInput),
		latches: make(map[*router.NetworkClient]bool),
		lastSeq: make(map[*router.NetworkClient]uint32),
		players: make(map[*router.NetworkClient]*playerSlot),
	}
	s.loop = NewGameLoop(s, tickRate)

	// Set up the world for esync
	srvsync.UseEsync(world.ECS().World)

	s.setupRouterCallbacks()

	return s
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("[server] Client connected: %s", client.Id())
		s.enqueue(command{kind: cmdJoin, client: client})
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			log.Printf("[server] Client %s disconnected with error: %v", client.Id(), err)
		} else {
			log.Printf("[server] Client %s disconnected", client.Id())
		}
		s.enqueue(command{kind: cmdLeave, client: client})
	})

	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.onPlayerInput(client, input)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] Client error: %v", err)
	})
}

func (s *Server) enqueue(cmd command) {
	s.mu.Lock()
	s.commands = append(s.commands, cmd)
	s.mu.Unlock()
}

// onPlayerInput keeps the newest input per client. A press that is released
// again before the next tick still counts as a press.
func (s *Server) onPlayerInput(client *router.NetworkClient, input messages.PlayerInput) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.lastSeq[client]; ok && input.Sequence < last {
		return
	}
	s.lastSeq[client] = input.Sequence
	s.inputs[client] = input
	if input.Primary {
		s.latches[client] = true
	}
}

// ProcessCommands applies queued joins, leaves and inputs to the world. It
// runs on the game loop goroutine before each step.
func (s *Server) ProcessCommands() {
	s.mu.Lock()
	commands := s.commands
	s.commands = nil
	inputs := s.inputs
	s.inputs = make(map[*router.NetworkClient]messages.PlayerInput, len(inputs))
	latches := s.latches
	s.latches = make(map[*router.NetworkClient]bool, len(latches))
	s.mu.Unlock()

	for _, cmd := range commands {
		switch cmd.kind {
		case cmdJoin:
			s.join(cmd.client)
		case cmdLeave:
			s.leave(cmd.client)
		}
	}

	for client, slot := range s.players {
		if input, ok := inputs[client]; ok {
			slot.input = input
		}
		slot.latched = latches[client]
		s.applyInput(slot)
	}
}

func (s *Server) join(client *router.NetworkClient) {
	if _, exists := s.players[client]; exists {
		return
	}

	entry := s.sim.SpawnAtNextPoint(tags.Player, netcomponents.NetPosition, netcomponents.NetActionState)
	entity := entry.Entity()
	writeNetState(entry)

	err := srvsync.NetworkSync(s.sim.ECS().World, &entity,
		srvsync.WithInterp(netcomponents.NetPosition),
		netcomponents.NetActionState,
	)
	if err != nil {
		log.Printf("[server] Failed to setup network sync for player: %v", err)
		s.sim.Despawn(entry)
		return
	}

	s.players[client] = &playerSlot{entity: entity}
	log.Printf("[server] Player spawned for client %s", client.Id())
}

func (s *Server) leave(client *router.NetworkClient) {
	slot, exists := s.players[client]
	if !exists {
		return
	}
	delete(s.players, client)

	s.mu.Lock()
	delete(s.lastSeq, client)
	s.mu.Unlock()

	world := s.sim.ECS().World
	if world.Valid(slot.entity) {
		s.sim.Despawn(world.Entry(slot.entity))
		log.Printf("[server] Player entity removed for client %s", client.Id())
	}
}

// SpawnBots adds n bots fighting with the default combo. Call before Start.
func (s *Server) SpawnBots(n int, difficulty config.BotDifficulty) error {
	spec, ok := s.combos.Lookup(config.Combat.DefaultCombo)
	if !ok {
		return fmt.Errorf("spawn bots: unknown combo %q", config.Combat.DefaultCombo)
	}
	world := s.sim.ECS().World
	for i := 0; i < n; i++ {
		entry := s.sim.SpawnBot(difficulty, spec, netcomponents.NetPosition, netcomponents.NetActionState)
		entity := entry.Entity()
		writeNetState(entry)
		err := srvsync.NetworkSync(world, &entity,
			srvsync.WithInterp(netcomponents.NetPosition),
			netcomponents.NetActionState,
		)
		if err != nil {
			s.sim.Despawn(entry)
			return fmt.Errorf("spawn bots: %w", err)
		}
		s.bots = append(s.bots, entity)
	}
	log.Printf("[server] Spawned %d bots", n)
	return nil
}

// PlayerCount returns the number of players in the world. Only valid on the
// game loop goroutine.
func (s *Server) PlayerCount() int {
	return len(s.players)
}

// World returns the simulation.
func (s *Server) World() *sim.World {
	return s.sim
}

// SetStatsInterval sets how often the game loop logs its counters. Call
// before Start.
func (s *Server) SetStatsInterval(d time.Duration) {
	s.loop.StatsInterval = d
}
