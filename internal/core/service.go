package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chris-tela/nuzlocke-tracker-sub000/internal/logging"
	"github.com/chris-tela/nuzlocke-tracker-sub000/internal/save"
)

// WriteTimeout is the maximum duration for a transactional write operation.
var WriteTimeout = 30 * time.Second

// ErrRunNotFound is returned when a run ID does not resolve to a tracked run.
var ErrRunNotFound = errors.New("run not found")

// Service provides the core business logic for save import and run tracking.
type Service struct {
	pool *pgxpool.Pool
}

// NewService creates a new Service instance.
func NewService(pool *pgxpool.Pool) *Service {
	return &Service{pool: pool}
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS runs (
	id           UUID PRIMARY KEY,
	game         TEXT NOT NULL,
	generation   INT NOT NULL,
	trainer_name TEXT NOT NULL,
	badges       TEXT[] NOT NULL DEFAULT '{}',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS pokemon (
	id        UUID PRIMARY KEY,
	run_id    UUID NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	poke_id   INT NOT NULL,
	name      TEXT NOT NULL,
	nickname  TEXT NOT NULL DEFAULT '',
	nature    TEXT NOT NULL DEFAULT '',
	ability   TEXT NOT NULL DEFAULT '',
	gender    TEXT NOT NULL DEFAULT '',
	level     INT NOT NULL,
	status    TEXT NOT NULL,
	caught_on TEXT NOT NULL DEFAULT '',
	position  INT NOT NULL,
	UNIQUE (run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_pokemon_run_id ON pokemon(run_id);
`

// EnsureSchema creates the runs and pokemon tables if they do not exist.
// Called once at startup.
func (s *Service) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// PreviewSave decodes a raw save buffer without touching persistence.
func (s *Service) PreviewSave(data []byte) (*save.Preview, error) {
	return save.Decode(data)
}

// CreateRunFromSave decodes a save and creates a run plus its full roster
// in one transaction. game picks the concrete version for the run; empty
// defaults to the first version the save is compatible with.
func (s *Service) CreateRunFromSave(ctx context.Context, data []byte, game string) (*Run, []TrackedPokemon, error) {
	preview, err := save.Decode(data)
	if err != nil {
		return nil, nil, err
	}

	if game == "" {
		game = preview.CompatibleVersions[0]
	} else if !versionCompatible(preview, game) {
		return nil, nil, &save.GameMismatchError{
			Target:     game,
			Game:       preview.Game,
			Compatible: preview.CompatibleVersions,
		}
	}

	run := &Run{
		ID:          uuid.New(),
		Game:        game,
		Generation:  preview.Generation,
		TrainerName: preview.TrainerName,
		Badges:      preview.Badges,
	}
	if run.Badges == nil {
		run.Badges = []string{}
	}
	mons := make([]TrackedPokemon, 0, len(preview.Pokemon))
	for i, c := range preview.Pokemon {
		mons = append(mons, trackedFromCreature(run.ID, i, c))
	}

	txCtx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()

	tx, err := s.pool.Begin(txCtx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(txCtx)

	err = tx.QueryRow(txCtx,
		`INSERT INTO runs (id, game, generation, trainer_name, badges)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		run.ID, run.Game, run.Generation, run.TrainerName, run.Badges,
	).Scan(&run.CreatedAt, &run.UpdatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("insert run: %w", err)
	}

	for _, m := range mons {
		if err := insertPokemon(txCtx, tx, m); err != nil {
			return nil, nil, err
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, nil, fmt.Errorf("commit: %w", err)
	}

	logging.FromContext(ctx).Info("run created",
		"run_id", run.ID,
		"game", run.Game,
		"generation", run.Generation,
		"pokemon", len(mons),
		"client_ip", ClientIPFromContext(ctx),
	)
	return run, mons, nil
}

// ReconcileSave decodes a save and diffs it against the run's tracked
// roster, returning a plan without applying it.
func (s *Service) ReconcileSave(ctx context.Context, runID uuid.UUID, data []byte) (*save.Plan, error) {
	preview, err := save.Decode(data)
	if err != nil {
		return nil, err
	}

	run, err := s.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	roster, err := s.rosterSnapshot(ctx, runID)
	if err != nil {
		return nil, err
	}

	return save.Reconcile(preview, roster, run.Game)
}

// ImportSave reconciles a save against a run and applies the CREATE subset
// in one transaction, appending new entries after the current maximum
// position. Re-importing the same save is a no-op: the plan comes back
// all-SKIP and Created is zero.
func (s *Service) ImportSave(ctx context.Context, runID uuid.UUID, data []byte) (*ImportResult, error) {
	plan, err := s.ReconcileSave(ctx, runID, data)
	if err != nil {
		return nil, err
	}
	result := &ImportResult{Plan: plan}
	if len(plan.Creates) == 0 {
		return result, nil
	}

	txCtx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()

	tx, err := s.pool.Begin(txCtx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(txCtx)

	var maxPos int
	err = tx.QueryRow(txCtx,
		`SELECT COALESCE(MAX(position), -1) FROM pokemon WHERE run_id = $1`,
		runID,
	).Scan(&maxPos)
	if err != nil {
		return nil, fmt.Errorf("max position: %w", err)
	}

	for i, c := range plan.Creates {
		m := trackedFromCreature(runID, maxPos+1+i, c)
		if err := insertPokemon(txCtx, tx, m); err != nil {
			return nil, err
		}
	}

	if _, err := tx.Exec(txCtx,
		`UPDATE runs SET updated_at = now() WHERE id = $1`, runID,
	); err != nil {
		return nil, fmt.Errorf("touch run: %w", err)
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	result.Created = len(plan.Creates)

	logging.FromContext(ctx).Info("save imported",
		"run_id", runID,
		"created", result.Created,
		"decisions", len(plan.Entries),
		"client_ip", ClientIPFromContext(ctx),
	)
	return result, nil
}

// ListRuns returns all tracked runs, most recently updated first.
func (s *Service) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, game, generation, trainer_name, badges, created_at, updated_at
		 FROM runs ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]Run, 0)
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Game, &r.Generation, &r.TrainerName, &r.Badges, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return runs, nil
}

// GetRun returns a single run by ID.
func (s *Service) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var r Run
	err := s.pool.QueryRow(ctx,
		`SELECT id, game, generation, trainer_name, badges, created_at, updated_at
		 FROM runs WHERE id = $1`, runID,
	).Scan(&r.ID, &r.Game, &r.Generation, &r.TrainerName, &r.Badges, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return &r, nil
}

// RunPokemon returns the run's tracked roster in position order.
func (s *Service) RunPokemon(ctx context.Context, runID uuid.UUID) ([]TrackedPokemon, error) {
	if _, err := s.GetRun(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, run_id, poke_id, name, nickname, nature, ability, gender,
		        level, status, caught_on, position
		 FROM pokemon WHERE run_id = $1 ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("run pokemon: %w", err)
	}
	defer rows.Close()

	mons := make([]TrackedPokemon, 0)
	for rows.Next() {
		var m TrackedPokemon
		err := rows.Scan(&m.ID, &m.RunID, &m.PokeID, &m.Name, &m.Nickname, &m.Nature,
			&m.Ability, &m.Gender, &m.Level, &m.Status, &m.CaughtOn, &m.Position)
		if err != nil {
			return nil, fmt.Errorf("scan pokemon: %w", err)
		}
		mons = append(mons, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return mons, nil
}

// DeleteRun removes a run and, via cascade, its roster.
func (s *Service) DeleteRun(ctx context.Context, runID uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM runs WHERE id = $1`, runID)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRunNotFound
	}
	return nil
}

// rosterSnapshot loads the tracked roster as reconciler input. The name
// column is the display name: nickname when set, species name otherwise.
func (s *Service) rosterSnapshot(ctx context.Context, runID uuid.UUID) ([]save.RosterEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT poke_id, COALESCE(NULLIF(nickname, ''), name), level, status
		 FROM pokemon WHERE run_id = $1 ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("roster snapshot: %w", err)
	}
	defer rows.Close()

	var roster []save.RosterEntry
	for rows.Next() {
		var e save.RosterEntry
		var status string
		if err := rows.Scan(&e.PokeID, &e.Name, &e.Level, &status); err != nil {
			return nil, fmt.Errorf("scan roster entry: %w", err)
		}
		e.Status = save.Status(status)
		roster = append(roster, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return roster, nil
}

func insertPokemon(ctx context.Context, db DBTX, m TrackedPokemon) error {
	_, err := db.Exec(ctx,
		`INSERT INTO pokemon (id, run_id, poke_id, name, nickname, nature, ability,
		                      gender, level, status, caught_on, position)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		m.ID, m.RunID, m.PokeID, m.Name, m.Nickname, m.Nature, m.Ability,
		m.Gender, m.Level, m.Status, m.CaughtOn, m.Position)
	if err != nil {
		return fmt.Errorf("insert pokemon %q: %w", m.DisplayName(), err)
	}
	return nil
}

func versionCompatible(p *save.Preview, game string) bool {
	for _, v := range p.CompatibleVersions {
		if strings.EqualFold(v, game) {
			return true
		}
	}
	return false
}
