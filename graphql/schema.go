// Package graphql assembles the root schema from the per-module query fields.
package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/datainclusion/search-backend/graphql/modules/lookup"
	"github.com/datainclusion/search-backend/search"
)

// CreateSchema builds the executable schema over the given aggregator.
func CreateSchema(agg *search.Aggregator) (gql.Schema, error) {
	fields := gql.Fields{}
	for name, field := range lookup.GetQueryFields(agg) {
		fields[name] = field
	}

	rootQuery := gql.NewObject(gql.ObjectConfig{
		Name:   "Query",
		Fields: fields,
	})

	return gql.NewSchema(gql.SchemaConfig{Query: rootQuery})
}
