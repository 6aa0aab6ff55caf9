// Package model provides the data models for the inclusion-search system.
package model

// Kind identifies one of the three searchable entity kinds. Its value doubles
// as the index name in the search engine.
type Kind string

// The three entity kinds served by the search indexes.
const (
	KindUsers      Kind = "users"
	KindStructures Kind = "structures"
	KindServices   Kind = "services"
)

// ParseKind validates a caller-supplied kind selector. The second return value
// is false when the input is not one of the three recognized kinds.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindUsers, KindStructures, KindServices:
		return Kind(s), true
	}
	return "", false
}
