package ingest

import "github.com/datainclusion/search-backend/model"

// TransformStructure maps one raw upstream structure record onto the indexed
// shape. The description prefers the detailed presentation and falls back to
// the summary; both absent yields an empty description.
func TransformStructure(raw model.RawStructure) model.Structure {
	s := model.Structure{
		ID:          raw.ID,
		Name:        raw.Nom,
		Type:        raw.Typologie,
		Address:     raw.Adresse,
		Commune:     raw.Commune,
		CodePostal:  raw.CodePostal,
		Description: description(raw.PresentationDetail, raw.PresentationResume),
		Source:      raw.Source,
		LienSource:  raw.LienSource,
		Telephone:   raw.Telephone,
		Courriel:    raw.Courriel,
		SiteWeb:     raw.SiteWeb,
	}
	if raw.Geo != nil {
		s.Latitude = raw.Geo.Lat
		s.Longitude = raw.Geo.Lng
	}
	return s
}

// TransformService maps one raw upstream service record onto the indexed
// shape. Nil list fields become empty slices so the indexed documents never
// carry nulls.
func TransformService(raw model.RawService) model.Service {
	return model.Service{
		ID:           raw.ID,
		Name:         raw.Nom,
		Type:         orEmpty(raw.Types),
		Theme:        orEmpty(raw.Thematiques),
		StructureID:  raw.StructureID,
		Description:  description(raw.PresentationDetail, raw.PresentationResume),
		Frais:        orEmpty(raw.Frais),
		ModesAccueil: orEmpty(raw.ModesAccueil),
	}
}

func description(detail, resume string) string {
	if detail != "" {
		return detail
	}
	return resume
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
