package directory

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/automoto/codesymphony/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, mux http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw)))
	return rec
}

func TestRegisterHeartbeatList(t *testing.T) {
	reg := NewRegistry(time.Minute, clock.NewMock(time.Unix(0, 0)))
	mux := NewMux(reg)

	rec := post(t, mux, "/battles/register", RegisterRequest{
		Name:    "bot arena",
		Address: "127.0.0.1:7373",
		Status:  Status{Session: "s-1", Boss: "Code Golem"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created RegisterResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.NotEmpty(t, created.ID)

	rec = post(t, mux, "/battles/heartbeat", HeartbeatRequest{
		ID:     created.ID,
		Status: Status{Session: "s-1", Boss: "Neural Core", BossIndex: 2, Spectators: 3},
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/battles", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []Listing
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "bot arena", listed[0].Name)
	assert.Equal(t, "Neural Core", listed[0].Boss)
	assert.Equal(t, 3, listed[0].Spectators)
}

func TestRegisterRejectsBadRequests(t *testing.T) {
	mux := NewMux(NewRegistry(time.Minute, nil))

	tests := []struct {
		name string
		path string
		body any
		want int
	}{
		{"missing address", "/battles/register", RegisterRequest{Name: "x"}, http.StatusBadRequest},
		{"missing name", "/battles/register", RegisterRequest{Address: "x:1"}, http.StatusBadRequest},
		{"unknown heartbeat", "/battles/heartbeat", HeartbeatRequest{ID: "nope"}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, post(t, mux, tt.path, tt.body).Code)
		})
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/battles/register", bytes.NewBufferString("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
