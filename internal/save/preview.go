package save

// preview.go defines the generation-agnostic decoded representation and
// assembles it from decoder output. A Preview is immutable once built:
// it is either returned to the caller for a new-run flow or fed to
// Reconcile for an update flow.

import (
	"github.com/chris-tela/nuzlocke-tracker-sub000/internal/save/dex"
)

// Status is the lifecycle state of a decoded creature.
type Status string

const (
	StatusParty   Status = "party"
	StatusStored  Status = "stored"
	StatusFainted Status = "fainted"
	StatusEgg     Status = "egg"
)

// Creature is one decoded roster entry. Name is always the canonical
// species name; Nickname is set only when the save carries a name that
// differs from it. Nature, Ability, Gender, and CaughtOn are empty when
// the source generation has no such concept or does not record it.
type Creature struct {
	PokeID   int    `json:"poke_id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname,omitempty"`
	Nature   string `json:"nature,omitempty"`
	Ability  string `json:"ability,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Level    int    `json:"level"`
	Status   Status `json:"status"`
	CaughtOn string `json:"caught_on,omitempty"`
}

// DisplayName is the name the creature is known by: the nickname when one
// exists, otherwise the species name. Reconciliation matches on it.
func (c Creature) DisplayName() string {
	if c.Nickname != "" {
		return c.Nickname
	}
	return c.Name
}

// Preview is the top-level decode output: everything the caller needs to
// show a human what the save contains before any record is created.
// Pokemon preserves in-game order: party slots first, stored creatures
// after, each in container order.
type Preview struct {
	Generation         int        `json:"generation"`
	Game               string     `json:"game"`
	CompatibleVersions []string   `json:"compatible_versions"`
	TrainerName        string     `json:"trainer_name"`
	Badges             []string   `json:"badges"`
	Pokemon            []Creature `json:"pokemon"`
}

// decodedTrainer is the per-variant decoder output for the trainer block.
type decodedTrainer struct {
	name   string
	badges byte
}

// buildPreview assembles the final Preview from decoder output. Pure
// assembly: the only failure mode is an unregistered game label, which
// indicates a decoder bug rather than a bad save.
func buildPreview(v Variant, game string, trainer decodedTrainer, mons []Creature) (*Preview, error) {
	g, ok := dex.GameByLabel(game)
	if !ok {
		return nil, ErrNotRecognized
	}
	return &Preview{
		Generation:         v.Generation(),
		Game:               game,
		CompatibleVersions: g.Versions,
		TrainerName:        trainer.name,
		Badges:             dex.BadgeNames(game, trainer.badges),
		Pokemon:            mons,
	}, nil
}
