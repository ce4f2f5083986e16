package core

import (
	"log/slog"
	"sync"

	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/shared/messages"
	"github.com/automoto/codesymphony/shared/netcomponents"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Server runs one auto-played battle and replicates it to spectators
type Server struct {
	conf      Config
	world     donburi.World
	battle    *Battle
	loop      *GameLoop
	transport *transports.WsServerTransport
	log       *slog.Logger

	// Spectator names by connection, set from router goroutines
	spectators map[*router.NetworkClient]string
	status     netcomponents.NetBattleStateData
	mu         sync.RWMutex
}

// NewServer creates the battle and its replicated world
func NewServer(conf Config) (*Server, error) {
	if conf.Logger == nil {
		conf.Logger = slog.Default()
	}
	if conf.TickRate <= 0 {
		conf.TickRate = cfg.C.TPS
	}
	world := donburi.NewWorld()
	srvsync.UseEsync(world)

	battle, err := NewBattle(conf, world, NetworkSync)
	if err != nil {
		return nil, err
	}

	s := &Server{
		conf:       conf,
		world:      world,
		battle:     battle,
		log:        conf.Logger.With("session", battle.Sim.SessionID()),
		spectators: make(map[*router.NetworkClient]string),
	}
	s.loop = NewGameLoop(s, conf.TickRate)
	s.setupRouterCallbacks()
	return s, nil
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
		s.onConnect(client)
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, hello messages.SpectateHello) {
		s.onHello(client, hello)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		s.log.Warn("client error", "client", client.Id(), "err", err)
	})
}

func (s *Server) onConnect(client *router.NetworkClient) {
	s.mu.Lock()
	s.spectators[client] = client.Id()
	n := len(s.spectators)
	s.mu.Unlock()

	s.log.Info("spectator connected", "client", client.Id(), "spectators", n)
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	s.mu.Lock()
	name := s.spectators[client]
	delete(s.spectators, client)
	n := len(s.spectators)
	s.mu.Unlock()

	if err != nil {
		s.log.Info("spectator disconnected", "client", name, "spectators", n, "err", err)
		return
	}
	s.log.Info("spectator disconnected", "client", name, "spectators", n)
}

func (s *Server) onHello(client *router.NetworkClient, hello messages.SpectateHello) {
	if hello.Version != "" && s.conf.Version != "" && hello.Version != s.conf.Version {
		s.log.Warn("spectator version mismatch", "client", client.Id(), "version", hello.Version)
	}
	if hello.Name == "" {
		return
	}
	s.mu.Lock()
	if _, ok := s.spectators[client]; ok {
		s.spectators[client] = hello.Name
	}
	s.mu.Unlock()
	s.log.Info("spectator named", "client", client.Id(), "name", hello.Name)
}

// tick advances the battle. Called from the game loop goroutine only.
func (s *Server) tick() {
	st := s.battle.Step(s.SpectatorCount())
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}

// Status is the battle state published on the last tick
func (s *Server) Status() netcomponents.NetBattleStateData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// SpectatorCount returns the number of connected spectators
func (s *Server) SpectatorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.spectators)
}

// World returns the replicated world
func (s *Server) World() donburi.World {
	return s.world
}
