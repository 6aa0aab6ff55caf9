package model

// User represents a generated end-user affiliated with one Structure. Users
// are produced by the generator, not ingested from the corpus; the Indexer
// treats the collection as opaque pre-existing data.
type User struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	IsProfessional bool   `json:"is_professional"`
	StructureID    string `json:"structure_id"`
	StructureName  string `json:"structure_name"`
	StartDate      string `json:"start_date"`
	CreationDate   string `json:"creation_date"`
}
