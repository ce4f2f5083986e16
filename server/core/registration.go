package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/automoto/codesymphony/server/directory"
	"github.com/automoto/codesymphony/shared/netcomponents"
)

// StatusSource reports the live battle for directory heartbeats
type StatusSource interface {
	Status() netcomponents.NetBattleStateData
}

// Registration lists the server in a battle directory and keeps the
// listing fresh with the live boss and score.
type Registration struct {
	directoryURL string
	listingID    string
	name         string
	address      string
	version      string
	source       StatusSource
	client       *http.Client
	every        time.Duration
	log          *slog.Logger
	stopCh       chan struct{}
}

func NewRegistration(directoryURL, name, address, version string, source StatusSource, logger *slog.Logger) *Registration {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registration{
		directoryURL: directoryURL,
		name:         name,
		address:      address,
		version:      version,
		source:       source,
		client:       &http.Client{Timeout: 5 * time.Second},
		every:        directory.HeartbeatEvery,
		log:          logger.With("component", "registration"),
		stopCh:       make(chan struct{}),
	}
}

func (r *Registration) Start() {
	if err := r.register(); err != nil {
		r.log.Warn("initial registration failed", "err", err)
	}
	go r.heartbeatLoop()
}

func (r *Registration) Stop() {
	close(r.stopCh)
}

func (r *Registration) status() directory.Status {
	st := r.source.Status()
	return directory.Status{
		Session:    st.SessionID,
		Boss:       st.BossName,
		BossIndex:  st.BossIndex,
		BossHealth: st.BossHealth,
		BossMax:    st.BossMax,
		TotalScore: st.TotalScore,
		State:      st.State,
		Spectators: st.Spectators,
	}
}

func (r *Registration) register() error {
	body, err := json.Marshal(directory.RegisterRequest{
		Name:    r.name,
		Address: r.address,
		Version: r.version,
		Status:  r.status(),
	})
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	resp, err := r.client.Post(r.directoryURL+"/battles/register", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result directory.RegisterResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	r.listingID = result.ID
	r.log.Info("registered with directory", "id", r.listingID)
	return nil
}

func (r *Registration) heartbeatLoop() {
	ticker := time.NewTicker(r.every)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			if err := r.sendHeartbeat(); err != nil {
				r.log.Warn("heartbeat failed", "err", err)
			}
		}
	}
}

func (r *Registration) sendHeartbeat() error {
	body, err := json.Marshal(directory.HeartbeatRequest{
		ID:     r.listingID,
		Status: r.status(),
	})
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	resp, err := r.client.Post(r.directoryURL+"/battles/heartbeat", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		r.log.Info("directory lost our listing, re-registering")
		return r.register()
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	return nil
}
