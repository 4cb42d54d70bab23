// File: test/e2e_setup_test.go
package test

import (
	"math/rand"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lguibr/bollywood"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"

	"github.com/pong3d/pong3d/game"
	"github.com/pong3d/pong3d/server"
	"github.com/pong3d/pong3d/utils"
)

// E2ESetupResult holds everything a test needs to talk to a live match.
type E2ESetupResult struct {
	Engine         *bollywood.Engine
	MatchPID       *bollywood.PID
	BroadcasterPID *bollywood.PID
	Server         *httptest.Server
	WsURL          string
	Origin         string
	Cfg            utils.Config
}

// SetupE2ETest spins up the full stack: engine, broadcaster, match actor,
// and an HTTP test server exposing the subscribe socket.
func SetupE2ETest(t *testing.T, cfg utils.Config) E2ESetupResult {
	t.Helper()

	engine := bollywood.NewEngine()
	broadcasterPID := engine.Spawn(bollywood.NewProps(game.NewBroadcasterProducer()))
	require.NotNil(t, broadcasterPID)

	rng := rand.New(rand.NewSource(1))
	matchPID := engine.Spawn(bollywood.NewProps(game.NewMatchActorProducer(engine, cfg, rng, broadcasterPID, nil)))
	require.NotNil(t, matchPID)
	time.Sleep(100 * time.Millisecond) // allow actors to start

	srv := server.NewServer(engine, matchPID, broadcasterPID)
	s := httptest.NewServer(websocket.Handler(srv.HandleSubscribe()))

	return E2ESetupResult{
		Engine:         engine,
		MatchPID:       matchPID,
		BroadcasterPID: broadcasterPID,
		Server:         s,
		WsURL:          "ws" + strings.TrimPrefix(s.URL, "http"),
		Origin:         "http://localhost/",
		Cfg:            cfg,
	}
}

// TeardownE2ETest shuts down the engine and closes the server.
func TeardownE2ETest(t *testing.T, setup E2ESetupResult, shutdownTimeout time.Duration) {
	t.Helper()
	if setup.Server != nil {
		setup.Server.Close()
	}
	if setup.Engine != nil {
		setup.Engine.Shutdown(shutdownTimeout)
	}
}
