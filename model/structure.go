package model

// Structure represents a normalized inclusion organization record as stored in
// the structures index. Records are rebuilt wholesale on every ingestion run;
// there is no incremental update path.
type Structure struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Address     string   `json:"address"`
	Commune     string   `json:"commune"`
	CodePostal  string   `json:"code_postal"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Description string   `json:"description"`
	Source      string   `json:"source"`
	LienSource  string   `json:"lien_source"`
	Telephone   string   `json:"telephone"`
	Courriel    string   `json:"courriel"`
	SiteWeb     string   `json:"site_web"`
}

// RawStructure is one record of the upstream data-inclusion structures
// resource. Absent fields decode to zero values; _geo may be null.
type RawStructure struct {
	ID                 string  `json:"id"`
	Nom                string  `json:"nom"`
	Typologie          string  `json:"typologie"`
	Adresse            string  `json:"adresse"`
	Commune            string  `json:"commune"`
	CodePostal         string  `json:"code_postal"`
	Geo                *RawGeo `json:"_geo"`
	PresentationDetail string  `json:"presentation_detail"`
	PresentationResume string  `json:"presentation_resume"`
	Source             string  `json:"source"`
	LienSource         string  `json:"lien_source"`
	Telephone          string  `json:"telephone"`
	Courriel           string  `json:"courriel"`
	SiteWeb            string  `json:"site_web"`
}

// RawGeo holds the optional coordinates of a raw structure record.
type RawGeo struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}
