package model

// Service represents a normalized service offering as stored in the services
// index. StructureID is a relational reference to the owning Structure; the
// corpus tolerates orphaned references and so do we.
type Service struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         []string `json:"type"`
	Theme        []string `json:"theme"`
	StructureID  string   `json:"structure_id"`
	Description  string   `json:"description"`
	Frais        []string `json:"frais"`
	ModesAccueil []string `json:"modes_accueil"`
}

// RawService is one record of the upstream data-inclusion services resource.
type RawService struct {
	ID                 string   `json:"id"`
	Nom                string   `json:"nom"`
	Types              []string `json:"types"`
	Thematiques        []string `json:"thematiques"`
	StructureID        string   `json:"structure_id"`
	PresentationDetail string   `json:"presentation_detail"`
	PresentationResume string   `json:"presentation_resume"`
	Frais              []string `json:"frais"`
	ModesAccueil       []string `json:"modes_accueil"`
}
