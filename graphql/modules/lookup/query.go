package lookup

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/datainclusion/search-backend/search"
)

// GetQueryFields returns the lookup queries to be mounted in the root schema.
// An absent entity resolves to null rather than an error.
func GetQueryFields(agg *search.Aggregator) graphql.Fields {
	return graphql.Fields{
		"structure": &graphql.Field{
			Type: StructureType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				s, err := agg.GetStructure(p.Context, p.Args["id"].(string))
				if errors.Is(err, search.ErrEntityNotFound) {
					return nil, nil
				}
				if err != nil {
					return nil, err
				}
				return s, nil
			},
		},
		"service": &graphql.Field{
			Type: ServiceType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				s, err := agg.GetService(p.Context, p.Args["id"].(string))
				if errors.Is(err, search.ErrEntityNotFound) {
					return nil, nil
				}
				if err != nil {
					return nil, err
				}
				return s, nil
			},
		},
		"user": &graphql.Field{
			Type: UserType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				u, err := agg.GetUser(p.Context, p.Args["id"].(string))
				if errors.Is(err, search.ErrEntityNotFound) {
					return nil, nil
				}
				if err != nil {
					return nil, err
				}
				return u, nil
			},
		},
		"siaes": &graphql.Field{
			Type: graphql.NewList(StructureType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return agg.ListContextStructures(p.Context)
			},
		},
	}
}
