package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vasanthkv/flowmate/internal/bus"
	"github.com/vasanthkv/flowmate/internal/celebrate"
	"github.com/vasanthkv/flowmate/internal/config"
	"github.com/vasanthkv/flowmate/internal/ledger"
	"github.com/vasanthkv/flowmate/internal/logging"
	"github.com/vasanthkv/flowmate/internal/pet"
	"github.com/vasanthkv/flowmate/internal/storage"
	"github.com/vasanthkv/flowmate/internal/tasks"
	"github.com/vasanthkv/flowmate/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "flowmate failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	closeLog, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	kv, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = kv.Close() }()

	clock := storage.Clock(time.Now)
	changes := bus.New()
	rewards := bus.NewRewardFeed(cfg.CelebrationBuffer)

	timer := celebrate.NewTimer(cfg.CelebrationBuffer)
	timer.Start()
	defer timer.Stop()

	var sounds celebrate.SoundPlayer = celebrate.NoopSoundPlayer{}
	if cfg.SoundDir != "" {
		sounds = celebrate.ExecSoundPlayer{Dir: cfg.SoundDir}
	}
	dispatch := celebrate.NewDispatcher(kv, clock, sounds, timer)

	lgr := ledger.New(kv, changes, rewards, clock)
	keeper := pet.NewKeeper(kv, changes)
	svc := tasks.NewService(kv, clock, changes, lgr, keeper, dispatch)

	rt := update.Runtime{
		KV:       kv,
		Changes:  changes,
		Rewards:  rewards,
		Tasks:    svc,
		Ledger:   lgr,
		Keeper:   keeper,
		Dispatch: dispatch,
		Timer:    timer,
		Clock:    clock,
	}

	program := tea.NewProgram(update.NewModel(rt, cfg))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func openStore(cfg config.RuntimeConfig) (storage.KV, error) {
	switch cfg.Backend {
	case config.BackendBolt:
		return storage.OpenBolt(cfg.StorePath())
	case config.BackendMemory:
		return storage.NewMemoryKV(), nil
	default:
		return storage.OpenSQLite(cfg.StorePath(), time.Now)
	}
}
