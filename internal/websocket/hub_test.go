package websocket_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fleetadmin/internal/logger"
	"fleetadmin/internal/middleware"
	ws "fleetadmin/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) (*ws.Hub, *middleware.Auth, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := middleware.NewAuth("test-secret")
	hub := ws.NewHub(logger.NewNop(), middleware.RoleAdmin, middleware.RoleManager)
	go hub.Run()

	router := gin.New()
	router.GET("/ws", func(c *gin.Context) { ws.ServeWs(hub, auth, c) })
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return hub, auth, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func TestHub_PublishReachesClient(t *testing.T) {
	hub, auth, url := startServer(t)

	token, err := auth.SignToken("user-1", middleware.RoleAdmin, time.Hour)
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(url+"?token="+token, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish("tax_rule.created", map[string]string{"id": "r1"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Type    string            `json:"type"`
		Payload map[string]string `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(message, &event))
	assert.Equal(t, "tax_rule.created", event.Type)
	assert.Equal(t, "r1", event.Payload["id"])
}

func TestServeWs_RejectsUnauthorized(t *testing.T) {
	_, auth, url := startServer(t)

	staff, err := auth.SignToken("user-2", middleware.RoleStaff, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"garbage token", "?token=abc", http.StatusUnauthorized},
		{"role not allowed", "?token=" + staff, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, resp, err := websocket.DefaultDialer.Dial(url+tt.query, nil)
			require.Error(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestHub_PublishWithoutClientsDoesNotBlock(t *testing.T) {
	hub := ws.NewHub(logger.NewNop())

	done := make(chan struct{})
	go func() {
		for range 100 {
			hub.Publish("tax_rule.updated", nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked without a running hub")
	}
}
