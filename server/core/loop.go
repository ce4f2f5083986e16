package core

import (
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

// GameLoop ticks the server at a fixed rate. A tick that runs longer than
// the interval is counted as an overrun; the ticker drops the missed beats.
type GameLoop struct {
	server   *Server
	tickRate int
	interval time.Duration
	overruns int
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 1
	}
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		interval: time.Second / time.Duration(tickRate),
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	g.server.log.Info("game loop started", "tps", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.server.log.Info("game loop stopped",
				"ticks", g.server.battle.Ticks(),
				"overruns", g.overruns)
			return
		case <-ticker.C:
			start := time.Now()
			g.tick()
			if took := time.Since(start); took > g.interval {
				g.overruns++
				g.server.log.Warn("tick overrun", "took", took, "interval", g.interval)
			}
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick() {
	g.server.tick()

	if err := srvsync.DoSync(); err != nil {
		g.server.log.Warn("sync error", "err", err)
	}
}
