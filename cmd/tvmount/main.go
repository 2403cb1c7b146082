package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"github.com/banshee-data/tvmount/internal/api"
	"github.com/banshee-data/tvmount/internal/config"
	"github.com/banshee-data/tvmount/internal/controls"
	"github.com/banshee-data/tvmount/internal/export"
	"github.com/banshee-data/tvmount/internal/security"
	"github.com/banshee-data/tvmount/internal/version"
)

var (
	configPath  = flag.String("config", "", "Path to a JSON config file (built-in defaults when empty)")
	listen      = flag.String("listen", "", "Listen address (overrides config)")
	exportDir   = flag.String("export", "", "Write scene.html, elevation.png, triangle.png and scene.json to this directory under the config export_dir (\".\" for export_dir itself) and exit")
	showVersion = flag.Bool("version", false, "Print version and exit")

	// Parameters for -export. Empty values take the same defaults as the
	// web controls.
	scenarioFlag = flag.String("scenario", "", "Scenario: living_room or bedroom")
	distanceFlag = flag.String("distance-ft", "", "Viewing distance in feet")
	eyeFlag      = flag.String("eye-height-in", "", "Eye height in inches")
	fovFlag      = flag.String("fov", "", "Field of view in degrees: 30 or 40")
	sizeFlag     = flag.String("tv-size-in", "", "TV diagonal in inches")
)

const shutdownTimeout = 5 * time.Second

// paramQuery maps the parameter flags onto the control query parameters so
// exports resolve exactly like a page request.
func paramQuery() url.Values {
	q := url.Values{}
	for param, v := range map[string]string{
		controls.ParamScenario:  *scenarioFlag,
		controls.ParamDistance:  *distanceFlag,
		controls.ParamEyeHeight: *eyeFlag,
		controls.ParamFOV:       *fovFlag,
		controls.ParamTVSize:    *sizeFlag,
	} {
		if v != "" {
			q.Set(param, v)
		}
	}
	return q
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.EmptyConfig(), nil
	}
	return config.LoadConfig(path)
}

func runExport(cfg *config.Config, name string) error {
	dir, err := security.ResolveExportDir(cfg.GetExportDir(), name)
	if err != nil {
		return err
	}
	sel, err := controls.ParseQuery(paramQuery(), cfg)
	if err != nil {
		return err
	}
	rep, err := controls.NewReport(sel)
	if err != nil {
		return err
	}
	paths, err := export.Write(dir, rep, api.ChartOptions(cfg, rep.Result))
	if err != nil {
		return err
	}
	log.Printf("exported %d files to %s", len(paths), dir)
	return nil
}

func serve(ctx context.Context, cfg *config.Config, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           api.NewServer(cfg).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Println("shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	log.Print(version.String())

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if *exportDir != "" {
		if err := runExport(cfg, *exportDir); err != nil {
			log.Fatalf("export failed: %v", err)
		}
		return
	}

	addr := cfg.GetListen()
	if *listen != "" {
		addr = *listen
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg, addr); err != nil {
		log.Fatalf("%v", err)
	}
	log.Print("server stopped")
}
