package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Features: []gen.Feature{gen.FeatureUpsert},
			Target:   "gen/ent",
			Package:  "mediafetch/gen/ent",
			Schema:   "mediafetch/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
