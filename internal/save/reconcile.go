package save

// reconcile.go diffs a decoded preview against an already-tracked roster
// and proposes a per-creature plan. The reconciler never mutates either
// input; applying the plan is the caller's job.
//
// The matching key is (species id, case-insensitive display name, level).
// It is a conservative heuristic, not a guaranteed-unique identifier: two
// genuinely distinct creatures sharing all three fields will be treated
// as one. Tracked entries always win — a re-import never overwrites user
// edits like level-ups or renames.

import "strings"

// Decision is the per-creature outcome of reconciliation.
type Decision string

const (
	DecisionCreate   Decision = "create"
	DecisionSkip     Decision = "skip_already_owned"
	DecisionConflict Decision = "conflict"
)

// RosterEntry is one already-tracked creature, as supplied by the caller.
// Name is the tracked display name (nickname if the user set one). Status
// may be empty when the tracker has no lifecycle state for the entry.
type RosterEntry struct {
	PokeID int
	Name   string
	Level  int
	Status Status
}

// PlanEntry pairs a previewed creature with its decision. Reason is set
// for conflicts only.
type PlanEntry struct {
	Pokemon  Creature `json:"pokemon"`
	Decision Decision `json:"decision"`
	Reason   string   `json:"reason,omitempty"`
}

// Plan is the reconciliation output: one entry per previewed creature in
// preview order, plus the subset chosen for creation.
type Plan struct {
	Game    string      `json:"game"`
	Entries []PlanEntry `json:"entries"`
	Creates []Creature  `json:"creates"`
}

// Reconcile builds a plan for importing preview into a run tracking
// targetGame. It fails fast with GameMismatchError when the target is not
// among the preview's compatible versions.
func Reconcile(preview *Preview, roster []RosterEntry, targetGame string) (*Plan, error) {
	compatible := false
	for _, v := range preview.CompatibleVersions {
		if strings.EqualFold(v, targetGame) {
			compatible = true
			break
		}
	}
	if !compatible {
		return nil, &GameMismatchError{
			Target:     targetGame,
			Game:       preview.Game,
			Compatible: preview.CompatibleVersions,
		}
	}

	plan := &Plan{
		Game:    targetGame,
		Entries: make([]PlanEntry, 0, len(preview.Pokemon)),
	}
	for _, mon := range preview.Pokemon {
		match := findMatch(roster, mon)
		entry := PlanEntry{Pokemon: mon}
		switch {
		case match == nil:
			entry.Decision = DecisionCreate
			plan.Creates = append(plan.Creates, mon)
		case match.Status != "" && match.Status != mon.Status:
			// The save and the tracker disagree about lifecycle state
			// (typically: the save says fainted, the tracker says alive).
			// Flag it rather than silently picking a side.
			entry.Decision = DecisionConflict
			entry.Reason = "tracked status " + string(match.Status) + ", save says " + string(mon.Status)
		default:
			entry.Decision = DecisionSkip
		}
		plan.Entries = append(plan.Entries, entry)
	}
	return plan, nil
}

func findMatch(roster []RosterEntry, mon Creature) *RosterEntry {
	display := mon.DisplayName()
	for i := range roster {
		e := &roster[i]
		if e.PokeID == mon.PokeID && e.Level == mon.Level && strings.EqualFold(e.Name, display) {
			return e
		}
	}
	return nil
}
