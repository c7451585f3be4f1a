package listquery

// Selection is the set of record identifiers chosen for a bulk action.
// Operations return a new set; the receiver is never mutated, matching the
// engine's copy-on-derive contract.
type Selection map[string]struct{}

func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s Selection) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}

func (s Selection) clone() Selection {
	out := make(Selection, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Toggle adds id if absent, removes it if present.
func (s Selection) Toggle(id string) Selection {
	out := s.clone()
	if _, ok := out[id]; ok {
		delete(out, id)
	} else {
		out[id] = struct{}{}
	}
	return out
}

// ToggleAll clears the selection when it already covers every id, otherwise
// selects all of them.
func (s Selection) ToggleAll(allIDs []string) Selection {
	if len(s) == len(allIDs) {
		return Selection{}
	}
	out := make(Selection, len(allIDs))
	for _, id := range allIDs {
		out[id] = struct{}{}
	}
	return out
}

// Prune drops members no longer present in the source collection. Called
// whenever the collection is re-fetched, so stale ids never linger.
func (s Selection) Prune(allIDs []string) Selection {
	current := make(map[string]struct{}, len(allIDs))
	for _, id := range allIDs {
		current[id] = struct{}{}
	}
	out := make(Selection, len(s))
	for id := range s {
		if _, ok := current[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}
