package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lguibr/bollywood"
	"golang.org/x/net/websocket"

	"github.com/pong3d/pong3d/game"
	"github.com/pong3d/pong3d/server"
	"github.com/pong3d/pong3d/telemetry"
	"github.com/pong3d/pong3d/utils"
)

func main() {
	var (
		addr       = flag.String("addr", ":3001", "listen address")
		configPath = flag.String("config", "pong3d.yaml", "config file path (created with defaults if missing)")
		statsPath  = flag.String("stats", "", "write per-rally statistics to this CSV file on shutdown")
		seed       = flag.Int64("seed", 0, "AI random seed (0 seeds from the clock)")
	)
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	engine := bollywood.NewEngine()

	broadcasterPID := engine.Spawn(bollywood.NewProps(game.NewBroadcasterProducer()))

	var collector *telemetry.Collector
	var observer game.SnapshotObserver
	if *statsPath != "" {
		collector = telemetry.NewCollector()
		observer = collector
	}

	matchPID := engine.Spawn(bollywood.NewProps(game.NewMatchActorProducer(engine, cfg, rng, broadcasterPID, observer)))

	srv := server.NewServer(engine, matchPID, broadcasterPID)

	http.HandleFunc("/", srv.HandleState())
	http.HandleFunc("/healthz", srv.HandleHealth())
	http.Handle("/subscribe", websocket.Handler(srv.HandleSubscribe()))

	fmt.Printf("pong3d listening on %s (tick rate %d, win score %d)\n", *addr, cfg.TickRate, cfg.WinScore)

	httpErr := make(chan error, 1)
	go func() {
		httpErr <- http.ListenAndServe(*addr, nil)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-httpErr:
		fmt.Println("HTTP server error:", err)
	case sig := <-stop:
		fmt.Println("Shutting down on signal:", sig)
	}

	engine.Shutdown(5 * time.Second)

	if collector != nil {
		if err := collector.ExportFile(*statsPath); err != nil {
			fmt.Println("Error exporting stats:", err)
		} else {
			fmt.Printf("Wrote %d rally records to %s\n", len(collector.Records()), *statsPath)
		}
	}
}
