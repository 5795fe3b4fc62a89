// Command sightsrv runs a headless visibility-mesh server.
//
// It loads a YAML scene, orbits the fan origin around the scene on a fixed
// tick, and broadcasts every rebuilt mesh to websocket clients at /ws.
// A minimal canvas viewer is served at /.
package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"log/slog"
	"math"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gosight/sightmesh"
	"github.com/gosight/sightmesh/stream"
	"github.com/gosight/sightmesh/world"
)

//go:embed viewer.html
var viewerHTML []byte

func main() {
	var (
		addr      = flag.String("addr", ":8080", "HTTP listen address")
		scenePath = flag.String("scene", "", "YAML scene file (default: built-in map)")
		tps       = flag.Int("tps", 30, "mesh rebuilds per second")
		orbit     = flag.Float64("orbit", 120, "radius of the origin's patrol circle")
		compress  = flag.Bool("snappy", false, "send snappy-compressed binary frames")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	sightmesh.SetLogger(logger)

	if *tps <= 0 {
		logger.Error("tps must be positive", "tps", *tps)
		os.Exit(1)
	}

	scene, params := builtinScene()
	if *scenePath != "" {
		var err error
		scene, params, err = world.Load(*scenePath)
		if err != nil {
			logger.Error("load scene", "error", err)
			os.Exit(1)
		}
	}

	hub := stream.NewHub()
	var sinkOpts []stream.SinkOption
	if *compress {
		sinkOpts = append(sinkOpts, stream.WithSnappy())
	}
	builder, err := sightmesh.NewBuilder(params, sightmesh.WithSink(stream.NewSink(hub, sinkOpts...)))
	if err != nil {
		logger.Error("configure builder", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go run(ctx, builder, scene, params.Origin, *orbit, *tps, logger)

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(viewerHTML)
	})

	srv := &http.Server{Addr: *addr, Handler: mux}
	go func() {
		<-ctx.Done()
		hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("sightsrv listening", "addr", *addr, "tps", *tps, "snappy", *compress)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("serve", "error", err)
		os.Exit(1)
	}
}

// run orbits the fan origin around its configured position, facing along the
// direction of travel, rebuilding the mesh once per tick. Each committed mesh
// reaches the hub through the builder's sink.
func run(ctx context.Context, b *sightmesh.Builder, scene *world.Scene, center sightmesh.Vec2, orbit float64, tps int, logger *slog.Logger) {
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		angle := time.Since(start).Seconds() * 0.4
		origin := center.Add(sightmesh.V2(math.Cos(angle), math.Sin(angle)).Mul(orbit))
		forward := sightmesh.V2(-math.Sin(angle), math.Cos(angle)) // tangent to the orbit
		if err := b.SetPose(origin, forward); err != nil {
			logger.Error("set pose", "error", err)
			return
		}
		if _, err := b.Update(scene); err != nil {
			// A scene probe cannot fail; anything here is a sink problem
			// and the next tick retries with fresh geometry.
			logger.Warn("update", "error", err)
		}
	}
}

// builtinScene mirrors the demo map so the server runs out of the box.
func builtinScene() (*world.Scene, sightmesh.Params) {
	s := world.New()
	s.AddRect(8, 8, 944, 624)
	s.AddRect(140, 100, 160, 90)
	s.AddRect(520, 70, 120, 180)
	s.AddRect(240, 380, 220, 110)
	s.AddRect(680, 420, 150, 120)
	params := sightmesh.Params{
		Origin:      sightmesh.V2(480, 320),
		Forward:     sightmesh.V2(1, 0),
		ArcDegrees:  360,
		StepDegrees: 2,
		Radius:      380,
	}
	return s, params
}
