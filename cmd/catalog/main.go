package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fruit-order/api/internal/catalog"
)

// Writes the built-in catalog as YAML, or checks an existing catalog file.
//
//	catalog -out fruits.yaml     # bootstrap a CATALOG_FILE
//	catalog -check fruits.yaml   # validate before deploying
func main() {
	out := flag.String("out", "", "Write the built-in catalog to this file (default stdout)")
	check := flag.String("check", "", "Validate a catalog YAML file and list its items")
	flag.Parse()

	if *check == "" && *out == "" {
		*check = os.Getenv("CATALOG_FILE")
	}

	if *check != "" {
		cat, err := catalog.LoadFile(*check)
		if err != nil {
			log.Fatalf("Invalid catalog: %v", err)
		}
		for _, it := range cat.Items() {
			fmt.Printf("%3d  %s %-16s %s/%s\n", it.ID, it.Glyph, it.Name, it.UnitPrice.StringFixed(2), it.UnitLabel())
		}
		log.Printf("%s: %d items OK", *check, cat.Len())
		return
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("Unable to create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	if err := catalog.Encode(w, catalog.Default()); err != nil {
		log.Fatalf("Unable to write catalog: %v", err)
	}
	if *out != "" {
		log.Printf("Wrote %d items to %s", catalog.Default().Len(), *out)
	}
}
