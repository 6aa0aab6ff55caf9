package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datainclusion/search-backend/model"
)

func siae(id, typ string) model.Structure {
	return model.Structure{
		ID:         id,
		Name:       "Structure " + id,
		Type:       typ,
		Source:     "emplois-de-linclusion",
		LienSource: "https://emplois.inclusion.beta.gouv.fr/siae/" + id,
	}
}

func TestIsSIAE(t *testing.T) {
	assert.True(t, IsSIAE(siae("a", "EI")))
	assert.False(t, IsSIAE(model.Structure{
		Source:     "other",
		LienSource: "https://example.org/siae/a",
	}))
	assert.False(t, IsSIAE(model.Structure{
		Source:     "emplois-de-linclusion",
		LienSource: "https://emplois.inclusion.beta.gouv.fr/company/a",
	}))
}

func TestSelectSIAETypeDiversityFirst(t *testing.T) {
	input := []model.Structure{siae("a", "EI"), siae("b", "EI"), siae("c", "ACI")}

	got := SelectSIAE(input, 2)
	assert.Equal(t, []string{"a", "c"}, ids(got))
}

func TestSelectSIAEBackfillInOrder(t *testing.T) {
	input := []model.Structure{siae("a", "EI"), siae("b", "EI"), siae("c", "ACI"), siae("d", "EI")}

	got := SelectSIAE(input, 3)
	assert.Equal(t, []string{"a", "c", "b"}, ids(got))
}

func TestSelectSIAEIgnoresNonSIAE(t *testing.T) {
	other := model.Structure{ID: "x", Source: "other", LienSource: "https://example.org/siae/x"}
	input := []model.Structure{other, siae("a", "EI")}

	got := SelectSIAE(input, 0)
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestSelectSIAEUntypedCandidateBackfills(t *testing.T) {
	// An empty type code never claims a diversity slot; the untyped candidate
	// only enters through the ordered backfill.
	input := []model.Structure{siae("u", ""), siae("a", "EI")}

	got := SelectSIAE(input, 1)
	assert.Equal(t, []string{"a"}, ids(got))

	got = SelectSIAE(input, 2)
	assert.Equal(t, []string{"a", "u"}, ids(got))
}

func TestSelectSIAEDefaultBound(t *testing.T) {
	var input []model.Structure
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		input = append(input, siae(id, "EI"))
	}

	got := SelectSIAE(input, 0)
	assert.Len(t, got, defaultSIAEBound)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(got))
}

func ids(structures []model.Structure) []string {
	out := make([]string, len(structures))
	for i, s := range structures {
		out[i] = s.ID
	}
	return out
}
