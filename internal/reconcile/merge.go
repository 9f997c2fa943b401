// ABOUTME: Deterministic local/remote state merge, biased against data loss.
// ABOUTME: Pure function of the two inputs; no clocks, no I/O.
package reconcile

import (
	"github.com/harperreed/ironlog/internal/models"
	"github.com/harperreed/ironlog/internal/remote"
)

// Merge reconciles the local snapshot with a remote load. Rules, per
// session id:
//
//   - present on one side only: kept
//   - remote completed vs local draft: remote wins (completion dominates)
//   - local completed: never replaced by a remote copy
//   - both drafts: the one with more sets wins; on a tie, more filled
//     sets; on a full tie, local
//
// Steps are taken wholesale from remote when remote has any, and
// settings are taken from remote when present. Those records are
// single-writer enough in practice that field merging is not worth the
// complexity.
func Merge(local models.AppState, rem remote.Snapshot, remoteDrafts []models.WorkoutSession) models.AppState {
	out := local.Clone()

	index := make(map[string]int, len(out.Sessions))
	for i, s := range out.Sessions {
		index[s.ID] = i
	}

	consider := func(r models.WorkoutSession) {
		i, ok := index[r.ID]
		if !ok {
			index[r.ID] = len(out.Sessions)
			out.Sessions = append(out.Sessions, r)
			return
		}
		l := out.Sessions[i]
		if chooseRemote(l, r) {
			out.Sessions[i] = r
		}
	}

	for _, r := range rem.Sessions {
		consider(r)
	}
	for _, d := range remoteDrafts {
		consider(d)
	}

	if len(rem.Steps) > 0 {
		out.Steps = append([]models.StepsEntry(nil), rem.Steps...)
	}
	if rem.Settings != nil {
		out.Settings = *rem.Settings
	}
	return out
}

// chooseRemote decides whether the remote copy replaces the local one
// for the same session id.
func chooseRemote(local, rem models.WorkoutSession) bool {
	localDone := local.State() == models.StateCompleted
	remDone := rem.State() == models.StateCompleted

	switch {
	case localDone:
		return false
	case remDone:
		return true
	}

	// Both drafts: prefer the richer one.
	if len(rem.Sets) != len(local.Sets) {
		return len(rem.Sets) > len(local.Sets)
	}
	return rem.FilledSetCount() > local.FilledSetCount()
}
