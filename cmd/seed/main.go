// Command seed provisions the section rows the admin surface edits. Every
// section except seo assumes its row pre-exists, so a fresh database needs
// this run once before the editor is usable.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"portfolio-go-server/bootstrap"
	"portfolio-go-server/domain/entity"
	"portfolio-go-server/internal/schema"
	"portfolio-go-server/repository"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

func main() {
	overwrite := flag.Bool("overwrite", false, "reset existing sections to their schema defaults")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("[Seed] no .env file found, using process environment")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("[Seed] DATABASE_URL not set")
	}

	db := bootstrap.NewDatabase(dsn)
	sectionRepo := repository.NewSectionRepository(db)
	registry := schema.NewRegistry()

	fmt.Println("[Seed] seeding sections...")

	for _, sectionID := range schema.SectionIDs {
		sch, err := registry.SchemaFor(sectionID)
		if err != nil {
			log.Fatalf("[Seed] no schema for %s: %v", sectionID, err)
		}

		defaultContent, err := marshalDefault(sch)
		if err != nil {
			log.Fatalf("[Seed] default for %s: %v", sectionID, err)
		}

		existing, err := sectionRepo.GetBySectionID(sectionID)
		if err != nil {
			log.Fatalf("[Seed] lookup %s failed: %v", sectionID, err)
		}

		switch {
		case existing == nil:
			err = sectionRepo.Insert(&entity.Section{
				SectionID: sectionID,
				Content:   datatypes.JSON(defaultContent),
			})
			if err != nil {
				log.Printf("[Seed] insert %s failed: %v", sectionID, err)
			} else {
				log.Printf("[Seed] created section: %s", sectionID)
			}
		case *overwrite:
			if err := sectionRepo.UpdateContent(sectionID, defaultContent); err != nil {
				log.Printf("[Seed] reset %s failed: %v", sectionID, err)
			} else {
				log.Printf("[Seed] reset section: %s", sectionID)
			}
		default:
			log.Printf("[Seed] section exists, skipping: %s", sectionID)
		}
	}

	fmt.Println("[Seed] done")
}

func marshalDefault(sch *schema.Schema) ([]byte, error) {
	return json.Marshal(sch.Default())
}
