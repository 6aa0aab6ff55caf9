package ingest

import (
	"strings"

	"github.com/datainclusion/search-backend/model"
)

// defaultSIAEBound caps how many insertion enterprises back the demo tenant
// scopes when the caller does not say otherwise.
const defaultSIAEBound = 5

// IsSIAE reports whether a structure is an insertion enterprise published by
// the employment platform. The source link is the only reliable marker; the
// typology field is too inconsistent upstream.
func IsSIAE(s model.Structure) bool {
	return s.Source == "emplois-de-linclusion" && strings.Contains(s.LienSource, "/siae/")
}

// SelectSIAE picks at most bound insertion enterprises from structures,
// preferring typology diversity: the first structure of each distinct
// non-empty type wins a slot, then remaining slots are backfilled in corpus
// order. A bound of zero or less falls back to the default.
func SelectSIAE(structures []model.Structure, bound int) []model.Structure {
	if bound <= 0 {
		bound = defaultSIAEBound
	}

	var siaes []model.Structure
	for _, s := range structures {
		if IsSIAE(s) {
			siaes = append(siaes, s)
		}
	}

	taken := make(map[int]bool)
	seenType := make(map[string]bool)
	out := make([]model.Structure, 0, bound)
	for i, s := range siaes {
		if len(out) >= bound {
			break
		}
		if s.Type == "" || seenType[s.Type] {
			continue
		}
		seenType[s.Type] = true
		taken[i] = true
		out = append(out, s)
	}
	for i, s := range siaes {
		if len(out) >= bound {
			break
		}
		if taken[i] {
			continue
		}
		out = append(out, s)
	}
	return out
}
