package main

import (
	"context"

	"heroedit/internal/catalog"
	"heroedit/internal/config"
	"heroedit/internal/entities/hero"
	"heroedit/internal/orchestrators/editor"
	"heroedit/internal/positions"
	"heroedit/internal/savefile"
)

// env holds everything a command needs after startup wiring.
type env struct {
	cfg     *config.Config
	service editor.Service
	version string
}

func setup(versionFlag string) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	version := cfg.GameVersion
	if versionFlag != "" {
		version = versionFlag
	}

	store, err := catalog.New()
	if err != nil {
		return nil, err
	}
	table, err := positions.New()
	if err != nil {
		return nil, err
	}
	service, err := editor.NewOrchestrator(&editor.Config{
		Catalog:   store,
		Positions: table,
		Logger:    cfg.Logger(),
	})
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, service: service, version: version}, nil
}

// loadHero opens a savegame and decodes the hero record at offset.
func (e *env) loadHero(ctx context.Context, path string, offset, size int) ([]byte, *hero.Hero, error) {
	payload, err := savefile.Open(path)
	if err != nil {
		return nil, nil, err
	}
	raw, err := savefile.Region(payload, offset, size)
	if err != nil {
		return nil, nil, err
	}
	out, err := e.service.LoadHero(ctx, &editor.LoadHeroInput{
		Version: e.version,
		Raw:     raw,
	})
	if err != nil {
		return nil, nil, err
	}
	return payload, out.Hero, nil
}

// saveHero serializes the hero and writes the savegame back, keeping a
// backup of the original file when configured.
func (e *env) saveHero(ctx context.Context, path string, payload []byte, offset int, h *hero.Hero) error {
	out, err := e.service.SerializeHero(ctx, &editor.SerializeHeroInput{Hero: h})
	if err != nil {
		return err
	}
	revised, err := savefile.Replace(payload, offset, out.Buffer)
	if err != nil {
		return err
	}
	if e.cfg.Backups {
		if err := savefile.Backup(path); err != nil {
			return err
		}
	}
	return savefile.Save(path, revised)
}

func regionSize(version string) (int, error) {
	table, err := positions.New()
	if err != nil {
		return 0, err
	}
	layout, err := table.Get(version)
	if err != nil {
		return 0, err
	}
	return layout.RegionSize, nil
}
