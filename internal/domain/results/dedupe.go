package results

// Dedupe merges raw rows that describe the same logical assessment
// attempt into one canonical record per group.
//
// Grouping: a specialized row that references a generic parent groups
// under that parent's id, and the generic parent row joins the same
// group; everything else groups by (canonical kind, session key). Rows
// missing both session and parent linkage fall back to kind alone, which
// can over-merge distinct attempts — accepted product decision, mirrors
// how the legacy stores were written.
//
// Winner selection is a strict total order (specialization, then
// recency, then insertion order), so the function is deterministic and
// idempotent: feeding the canonical output back in reproduces itself.
func Dedupe(raw []RawResult) []CanonicalResult {
	// First pass: which generic ids are referenced as parents by
	// specialized rows. Those generic rows must land in the parent
	// group or the cross-table merge never happens.
	referenced := make(map[ResultID]bool)
	for _, r := range raw {
		if r.Source != SourceGeneric && r.ParentID != "" {
			referenced[r.ParentID] = true
		}
	}

	type candidate struct {
		row RawResult
		idx int
	}
	groups := make(map[string][]candidate, len(raw))
	var order []string // first-seen order keeps output deterministic
	for i, r := range raw {
		key := groupKey(r, referenced)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], candidate{row: r, idx: i})
	}

	out := make([]CanonicalResult, 0, len(order))
	for _, key := range order {
		cands := groups[key]
		win := cands[0]
		for _, c := range cands[1:] {
			if beats(c.row, win.row) {
				win = c
			}
		}
		out = append(out, CanonicalResult{
			RawResult: win.row,
			Kind:      NormalizeKind(win.row.TestKind),
			GroupKey:  key,
		})
	}
	return out
}

func groupKey(r RawResult, referenced map[ResultID]bool) string {
	if r.Source != SourceGeneric && r.ParentID != "" {
		return "parent:" + string(r.ParentID)
	}
	if r.Source == SourceGeneric && referenced[r.ID] {
		return "parent:" + string(r.ID)
	}
	sess := r.SessionKey
	if sess == "" {
		sess = "no-session"
	}
	return "kind:" + string(NormalizeKind(r.TestKind)) + ":" + sess
}

// beats reports whether a should replace b as group winner. Equal
// priority and timestamp keep the earlier row (insertion order).
func beats(a, b RawResult) bool {
	if pa, pb := a.Source.Priority(), b.Source.Priority(); pa != pb {
		return pa > pb
	}
	if !a.OccurredAt.Equal(b.OccurredAt) {
		return a.OccurredAt.After(b.OccurredAt)
	}
	return false
}
