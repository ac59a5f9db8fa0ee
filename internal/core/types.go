// Package core provides the business logic for run tracking: decoding
// uploaded save files through internal/save and persisting runs and their
// rosters. This package has no UI dependencies and can be used by any
// frontend.
package core

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/chris-tela/nuzlocke-tracker-sub000/internal/save"
	"github.com/google/uuid"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Run is one tracked playthrough. Game is the concrete version label
// ("Red", "Emerald", "Black 2"), not the save-layout family: reconciling
// a later upload checks the save's compatible versions against it.
type Run struct {
	ID          uuid.UUID `json:"id"`
	Game        string    `json:"game"`
	Generation  int       `json:"generation"`
	TrainerName string    `json:"trainer_name"`
	Badges      []string  `json:"badges"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TrackedPokemon is one persisted roster entry. Position preserves the
// in-game order creatures were first imported in; later imports append
// after the current maximum.
type TrackedPokemon struct {
	ID       uuid.UUID `json:"id"`
	RunID    uuid.UUID `json:"run_id"`
	PokeID   int       `json:"poke_id"`
	Name     string    `json:"name"`
	Nickname string    `json:"nickname,omitempty"`
	Nature   string    `json:"nature,omitempty"`
	Ability  string    `json:"ability,omitempty"`
	Gender   string    `json:"gender,omitempty"`
	Level    int       `json:"level"`
	Status   string    `json:"status"`
	CaughtOn string    `json:"caught_on,omitempty"`
	Position int       `json:"position"`
}

// DisplayName mirrors the decoder's display-name rule so persisted
// entries match on the same key the user sees.
func (p TrackedPokemon) DisplayName() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Name
}

// ImportResult reports one apply pass: the full plan plus how many CREATE
// decisions were actually persisted.
type ImportResult struct {
	Plan    *save.Plan `json:"plan"`
	Created int        `json:"created"`
}

func trackedFromCreature(runID uuid.UUID, position int, c save.Creature) TrackedPokemon {
	return TrackedPokemon{
		ID:       uuid.New(),
		RunID:    runID,
		PokeID:   c.PokeID,
		Name:     c.Name,
		Nickname: c.Nickname,
		Nature:   c.Nature,
		Ability:  c.Ability,
		Gender:   c.Gender,
		Level:    c.Level,
		Status:   string(c.Status),
		CaughtOn: c.CaughtOn,
		Position: position,
	}
}
