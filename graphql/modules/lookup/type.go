// Package lookup defines the GraphQL types and queries for entity lookup.
package lookup

import (
	"github.com/graphql-go/graphql"
)

// StructureType is the GraphQL shape of an indexed structure. Field names
// mirror the JSON document attributes so the default resolver applies.
var StructureType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Structure",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.String},
		"name":        &graphql.Field{Type: graphql.String},
		"type":        &graphql.Field{Type: graphql.String},
		"address":     &graphql.Field{Type: graphql.String},
		"commune":     &graphql.Field{Type: graphql.String},
		"code_postal": &graphql.Field{Type: graphql.String},
		"latitude":    &graphql.Field{Type: graphql.Float},
		"longitude":   &graphql.Field{Type: graphql.Float},
		"description": &graphql.Field{Type: graphql.String},
		"source":      &graphql.Field{Type: graphql.String},
		"lien_source": &graphql.Field{Type: graphql.String},
		"telephone":   &graphql.Field{Type: graphql.String},
		"courriel":    &graphql.Field{Type: graphql.String},
		"site_web":    &graphql.Field{Type: graphql.String},
	},
})

// ServiceType is the GraphQL shape of an indexed service.
var ServiceType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Service",
	Fields: graphql.Fields{
		"id":            &graphql.Field{Type: graphql.String},
		"name":          &graphql.Field{Type: graphql.String},
		"type":          &graphql.Field{Type: graphql.NewList(graphql.String)},
		"theme":         &graphql.Field{Type: graphql.NewList(graphql.String)},
		"structure_id":  &graphql.Field{Type: graphql.String},
		"description":   &graphql.Field{Type: graphql.String},
		"frais":         &graphql.Field{Type: graphql.NewList(graphql.String)},
		"modes_accueil": &graphql.Field{Type: graphql.NewList(graphql.String)},
	},
})

// UserType is the GraphQL shape of a generated user.
var UserType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.String},
		"first_name":      &graphql.Field{Type: graphql.String},
		"last_name":       &graphql.Field{Type: graphql.String},
		"is_professional": &graphql.Field{Type: graphql.Boolean},
		"structure_id":    &graphql.Field{Type: graphql.String},
		"structure_name":  &graphql.Field{Type: graphql.String},
		"start_date":      &graphql.Field{Type: graphql.String},
		"creation_date":   &graphql.Field{Type: graphql.String},
	},
})
