// cmd/web/main.go
//
// Wasatch Built site engine – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (server-wide file → .env fallback).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Load and validate config (conf/global.yaml + WASATCH_ overrides).
//
//  4. Load the landing-page catalog CSV and build the in-memory index.
//
//  5. Load the curated content files and build the content store.
//
//  6. Connect the page database when a DSN is configured; a static-only
//     deployment simply leaves it unset.
//
//  7. Wire resolver, lead intake, and the chi router; serve.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/wasatchbuilt/siteengine/internal/catalog"
	"github.com/wasatchbuilt/siteengine/internal/config"
	"github.com/wasatchbuilt/siteengine/internal/content"
	"github.com/wasatchbuilt/siteengine/internal/database"
	"github.com/wasatchbuilt/siteengine/internal/lead"
	"github.com/wasatchbuilt/siteengine/internal/logger"
	"github.com/wasatchbuilt/siteengine/internal/match"
	"github.com/wasatchbuilt/siteengine/internal/page"
	"github.com/wasatchbuilt/siteengine/internal/requestinfo"
	"github.com/wasatchbuilt/siteengine/internal/resolve"
	"github.com/wasatchbuilt/siteengine/internal/server"
	"github.com/wasatchbuilt/siteengine/internal/web"
)

const serverEnvPath = "/usr/local/etc/siteengine/global.env"

// loadEnv prefers the server-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	rootDir, _ := os.Getwd()
	logOut, err := logger.New(rootDir, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer logOut.Sync()

	//
	// ── 1.  Config ──────────────────────────────────────────────────────
	//
	cfg, err := config.Load()
	if err != nil {
		logOut.Fatalw("load config", "err", err)
	}

	//
	// ── 2.  Landing-page catalog ────────────────────────────────────────
	//
	records, err := catalog.LoadCSVFile(cfg.Catalog.CSVPath)
	if err != nil {
		logOut.Fatalw("load catalog", "path", cfg.Catalog.CSVPath, "err", err)
	}
	idx := catalog.NewIndex(records)
	logOut.Infow("catalog loaded", "rows", idx.Len())

	//
	// ── 3.  Curated content store ───────────────────────────────────────
	//
	entries, err := content.LoadDir(cfg.Content.Dir)
	if err != nil {
		logOut.Fatalw("load content", "dir", cfg.Content.Dir, "err", err)
	}
	store := content.New(entries, content.Options{RegionToken: cfg.Content.RegionToken})
	logOut.Infow("content loaded", "entries", store.Len())

	//
	// ── 4.  Page database (optional tier) ───────────────────────────────
	//
	var lookup resolve.Lookup
	var leadSvc *lead.Service
	if cfg.Database.DSN != "" {
		db, err := database.Open(cfg.Database.DSN)
		if err != nil {
			logOut.Fatalw("connect page DB", "err", err)
		}
		defer db.Close()
		logOut.Infow("page DB online")

		lookup = page.NewService(db, time.Duration(cfg.Resolve.DBTimeoutMS)*time.Millisecond)

		var notifier lead.Notifier
		if cfg.Lead.WebhookURL != "" {
			notifier = lead.NewWebhookNotifier(cfg.Lead.WebhookURL)
		}
		leadSvc = lead.NewService(lead.NewRepository(db), notifier, logOut)
	} else {
		logOut.Infow("no page DB configured; static tiers only")
	}

	//
	// ── 5.  GeoIP hints (optional) ──────────────────────────────────────
	//
	if cfg.Geo.DBPath != "" {
		if err := requestinfo.InitGeo(cfg.Geo.DBPath); err != nil {
			logOut.Warnw("geo DB unavailable", "path", cfg.Geo.DBPath, "err", err)
		}
	}

	//
	// ── 6.  Resolver and router ─────────────────────────────────────────
	//
	resolver := resolve.New(idx, store, match.New(cfg.Resolve.FuzzyThreshold), lookup, logOut)

	srvHandlers := web.NewServer(idx, store, resolver, leadSvc, web.Options{
		BaseURL:    cfg.HTTP.BaseURL,
		ForceHTTPS: cfg.HTTP.ForceHTTPS,
	}, logOut)

	srv := server.New(cfg.HTTP.ListenAddr, srvHandlers.Router())
	logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
	if err := srv.ListenAndServe(); err != nil {
		logOut.Fatalw("http server", "err", err)
	}
}
