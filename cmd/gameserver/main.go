// Package main provides the relation backend binary: it loads faction and
// region content, builds the targeting and combat-legality pipeline, and
// serves the gRPC combat service for frontend connections.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/cory-johannsen/feud/internal/config"
	"github.com/cory-johannsen/feud/internal/game/actor"
	"github.com/cory-johannsen/feud/internal/game/combat"
	"github.com/cory-johannsen/feud/internal/game/condition"
	"github.com/cory-johannsen/feud/internal/game/faction"
	"github.com/cory-johannsen/feud/internal/game/perception"
	"github.com/cory-johannsen/feud/internal/game/scene"
	"github.com/cory-johannsen/feud/internal/game/session"
	"github.com/cory-johannsen/feud/internal/game/targeting"
	"github.com/cory-johannsen/feud/internal/gameserver"
	combatv1 "github.com/cory-johannsen/feud/internal/gameserver/combatv1"
	"github.com/cory-johannsen/feud/internal/observability"
	"github.com/cory-johannsen/feud/internal/scripting"
	"github.com/cory-johannsen/feud/internal/server"
	"github.com/cory-johannsen/feud/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	factionsDir := flag.String("factions-dir", "", "override for the faction YAML directory")
	regionsDir := flag.String("regions-dir", "", "override for the region YAML directory")
	conditionsDir := flag.String("conditions-dir", "", "override for the condition YAML directory")
	scriptsDir := flag.String("scripts-dir", "", "override for the Lua script root; empty keeps the configured value")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *factionsDir != "" {
		cfg.Content.FactionsDir = *factionsDir
	}
	if *regionsDir != "" {
		cfg.Content.RegionsDir = *regionsDir
	}
	if *conditionsDir != "" {
		cfg.Content.ConditionsDir = *conditionsDir
	}
	if *scriptsDir != "" {
		cfg.Content.ScriptsDir = *scriptsDir
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting relation backend",
		zap.String("grpc_addr", cfg.GameServer.Addr()),
		zap.String("content_source", cfg.Content.Source),
	)

	// Load authored content: faction definitions and region rule snapshots.
	var (
		factionDefs []*faction.Definition
		snapshots   []scene.Snapshot
		pool        *postgres.Pool
	)
	contentStart := time.Now()
	switch cfg.Content.Source {
	case config.ContentSourceDatabase:
		dbStart := time.Now()
		pool, err = postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		logger.Info("database connected",
			zap.String("host", cfg.Database.Host),
			zap.Duration("elapsed", time.Since(dbStart)),
		)
		factionDefs, err = postgres.NewFactionRepository(pool.DB()).ListDefinitions(ctx)
		if err != nil {
			logger.Fatal("loading factions from database", zap.Error(err))
		}
		snapshots, err = postgres.NewRegionRepository(pool.DB()).ListSnapshots(ctx)
		if err != nil {
			logger.Fatal("loading regions from database", zap.Error(err))
		}
	default:
		factionDefs, err = faction.LoadDefinitions(cfg.Content.FactionsDir)
		if err != nil {
			logger.Fatal("loading faction definitions", zap.Error(err))
		}
		snapshots, err = scene.LoadSnapshots(cfg.Content.RegionsDir)
		if err != nil {
			logger.Fatal("loading region snapshots", zap.Error(err))
		}
	}

	matrix, err := faction.BuildMatrix(factionDefs)
	if err != nil {
		logger.Fatal("building faction matrix", zap.Error(err))
	}
	gate := scene.NewGate()
	for _, snap := range snapshots {
		if err := gate.Register(snap); err != nil {
			logger.Fatal("registering region", zap.String("region", snap.RegionID), zap.Error(err))
		}
	}
	logger.Info("content loaded",
		zap.Int("factions", len(factionDefs)),
		zap.Int("regions", gate.RegionCount()),
		zap.Duration("elapsed", time.Since(contentStart)),
	)

	condRegistry, err := condition.LoadDirectory(cfg.Content.ConditionsDir)
	if err != nil {
		logger.Fatal("loading condition definitions", zap.Error(err))
	}
	logger.Info("loaded condition definitions", zap.Int("count", len(condRegistry.All())))

	// Core pipeline: registry -> relations -> targeting -> legality.
	actors := actor.NewRegistry()
	relations := faction.NewService(matrix, actors)
	resolver := targeting.NewResolver(relations)
	selector := targeting.NewSelector()
	condTracker := condition.NewTracker(time.Now)

	clock := gameserver.NewGameClock(cfg.Clock.StartHour, cfg.Clock.TickInterval)
	stopClock := clock.Start()
	defer stopClock()
	vision := perception.NewTracker(clock.IsDark)

	validator := combat.NewValidator(resolver, condTracker, vision)
	tracker := combat.NewTracker(combat.TrackerConfig{
		DisengageWindow:       cfg.GameServer.DisengageWindow(),
		ExtendOnBeingTargeted: cfg.GameServer.ExtendOnBeingTargeted,
	}, time.Now)
	swings := combat.NewAutoAttacker(cfg.GameServer.SwingInterval)

	// Initialise scripting engine for region social hooks.
	var scriptMgr *scripting.Manager
	if cfg.Content.ScriptsDir != "" {
		scriptStart := time.Now()
		scriptMgr = scripting.NewManager(logger)
		defer scriptMgr.Close()

		scriptMgr.GetActor = func(actorID string) *scripting.ActorInfo {
			a, ok := actors.Get(actorID)
			if !ok {
				return nil
			}
			return &scripting.ActorInfo{
				ID:       a.ID,
				Name:     a.Name,
				Kind:     a.Kind.String(),
				Faction:  a.FactionID,
				HP:       a.Vitals.CurrentHP,
				MaxHP:    a.Vitals.MaxHP,
				Flagged:  a.Flagged,
				RegionID: a.RegionID,
			}
		}
		scriptMgr.FlagActor = actors.SetFlagged

		globalDir := filepath.Join(cfg.Content.ScriptsDir, "global")
		if info, statErr := os.Stat(globalDir); statErr == nil && info.IsDir() {
			if err := scriptMgr.LoadGlobal(globalDir, cfg.Content.ScriptInstructionLimit); err != nil {
				logger.Fatal("loading global scripts", zap.String("dir", globalDir), zap.Error(err))
			}
		}

		// Per-region scripts live under <scripts>/regions/<region-id>/.
		for _, snap := range snapshots {
			regionDir := filepath.Join(cfg.Content.ScriptsDir, "regions", snap.RegionID)
			info, statErr := os.Stat(regionDir)
			if statErr != nil || !info.IsDir() {
				continue
			}
			if err := scriptMgr.LoadRegion(snap.RegionID, regionDir, cfg.Content.ScriptInstructionLimit); err != nil {
				logger.Fatal("loading region scripts",
					zap.String("region", snap.RegionID), zap.Error(err))
			}
			logger.Info("region scripts loaded",
				zap.String("region", snap.RegionID), zap.String("dir", regionDir))
		}
		logger.Info("scripting engine initialized",
			zap.Duration("elapsed", time.Since(scriptStart)))
	}

	sessMgr := session.NewManager()

	grpcService := gameserver.NewCombatServiceServer(
		actors, gate, resolver, selector,
		validator, tracker, swings, vision,
		sessMgr, scriptMgr, logger,
	)

	respawnMgr := actor.NewRespawnManager()
	respawnMgr.OnRevive = grpcService.HandleActorRevived

	// Periodic maintenance: scene overrides, engagement expiry, condition
	// expiry, respawns.
	ticks := gameserver.NewRegionTickManager(cfg.GameServer.SweepInterval)
	ticks.RegisterTick("scene_overrides", grpcService.SweepRegionOverrides)
	ticks.RegisterTick("engagements", tracker.Sweep)
	ticks.RegisterTick("conditions", condTracker.Sweep)
	ticks.RegisterTick("respawns", func() {
		respawnMgr.Tick(time.Now(), actors)
	})
	ticks.Start(ctx)

	grpcServer := grpc.NewServer()
	combatv1.RegisterCombatServiceServer(grpcServer, grpcService)

	lifecycle := server.NewLifecycle(logger)

	lifecycle.Add("grpc", &server.FuncService{
		StartFn: func() error {
			lis, err := net.Listen("tcp", cfg.GameServer.Addr())
			if err != nil {
				return fmt.Errorf("listening on %s: %w", cfg.GameServer.Addr(), err)
			}
			logger.Info("gRPC server listening",
				zap.String("addr", lis.Addr().String()),
			)
			return grpcServer.Serve(lis)
		},
		StopFn: func() {
			grpcServer.GracefulStop()
		},
	})

	if pool != nil {
		lifecycle.Add("postgres", &server.FuncService{
			StartFn: func() error {
				for {
					time.Sleep(30 * time.Second)
					if err := pool.Health(ctx, 5*time.Second); err != nil {
						logger.Warn("database health check failed", zap.Error(err))
					}
				}
			},
			StopFn: func() {
				pool.Close()
			},
		})
	}

	logger.Info("relation backend initialized",
		zap.Duration("startup", time.Since(start)),
		zap.String("grpc_addr", cfg.GameServer.Addr()),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
