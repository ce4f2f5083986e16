package persistence

import (
	"errors"
	"sync"
	"testing"

	cfg "github.com/automoto/codesymphony/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	m := NewMemoryStore()

	got, err := m.Load()
	require.NoError(t, err)
	assert.Nil(t, got, "nothing saved yet")

	want := &Snapshot{
		CurrentBossIndex:      1,
		TotalScore:            123456,
		BPM:                   128,
		SkillCharge:           42.5,
		ComboCount:            7,
		UltimateComboRemainMs: 2500,
		BossHealths:           []float64{0, 9_000_000, 25_000_000},
		Volume:                60,
		BPMMax:                200,
	}
	require.NoError(t, m.Save(want))

	got, err = m.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, m.Clear())
	got, err = m.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMissingKeysKeepDefaults(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"no volume key", `{"currentBossIndex":1,"bpm":130}`, cfg.Audio.DefaultVolume},
		{"explicit mute", `{"currentBossIndex":1,"volume":0}`, 0},
		{"saved volume", `{"volume":35}`, 35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemoryStore()
			m.SetRaw([]byte(tt.raw))

			got, err := m.Load()
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Volume)
		})
	}
}

func TestMemoryStoreCorrupt(t *testing.T) {
	m := NewMemoryStore()
	m.SetRaw([]byte(`{"currentBossIndex": "two"`))

	got, err := m.Load()
	assert.Error(t, err)
	assert.Nil(t, got)
}

// blockingStore lets the test hold the worker inside Save
type blockingStore struct {
	mu      sync.Mutex
	gate    chan struct{}
	entered chan struct{}
	saved   []Snapshot
	fail    bool
}

func (b *blockingStore) Load() (*Snapshot, error) { return nil, nil }
func (b *blockingStore) Clear() error { return nil }

func (b *blockingStore) Save(s *Snapshot) error {
	b.entered <- struct{}{}
	<-b.gate
	b.mu.Lock()
	defer b.mu.Unlock()
	b.saved = append(b.saved, *s)
	if b.fail {
		return errors.New("disk full")
	}
	return nil
}

func TestSaverLatestWins(t *testing.T) {
	store := &blockingStore{gate: make(chan struct{}), entered: make(chan struct{}, 8)}
	s := NewSaver(store)

	s.Request(Snapshot{TotalScore: 1})
	<-store.entered // worker is now stuck writing snapshot 1

	s.Request(Snapshot{TotalScore: 2})
	s.Request(Snapshot{TotalScore: 3})
	s.Request(Snapshot{TotalScore: 4})

	close(store.gate)
	s.Close()

	require.Len(t, store.saved, 2)
	assert.Equal(t, int64(1), store.saved[0].TotalScore)
	assert.Equal(t, int64(4), store.saved[1].TotalScore)
}

func TestSaverSurvivesStoreErrors(t *testing.T) {
	store := &blockingStore{gate: make(chan struct{}), entered: make(chan struct{}, 8), fail: true}
	close(store.gate)
	s := NewSaver(store)

	s.Request(Snapshot{TotalScore: 1})
	s.Close()
	s.Request(Snapshot{TotalScore: 2}) // ignored after close
	s.Close()

	assert.Len(t, store.saved, 1)
}
