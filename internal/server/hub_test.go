package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/lukeberry99/duck/internal/telemetry"
)

func TestHub_BroadcastsTelemetryToClients(t *testing.T) {
	repo := telemetry.NewMemoryRepository()
	hub := NewHub(nil)
	go hub.Run()
	go hub.Forward(repo.Subscribe())

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWs))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)
	defer conn.Close()

	// Give the register handshake a moment to land in the hub loop.
	time.Sleep(50 * time.Millisecond)

	assert.NoError(t, repo.RecordEvent(telemetry.EventMilestoneReached, telemetry.EventMetadata{"milestone": 100}))

	assert.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	assert.NoError(t, err)

	var envelope struct {
		Type     string         `json:"type"`
		Metadata map[string]any `json:"metadata"`
	}
	assert.NoError(t, json.Unmarshal(msg, &envelope))
	assert.Equal(t, "milestone_reached", envelope.Type)
	assert.Equal(t, float64(100), envelope.Metadata["milestone"])
}
