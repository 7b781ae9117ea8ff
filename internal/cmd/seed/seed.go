// Package seed loads the sample clinic data into the web database.
package seed

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	entrypoint "github.com/louisbranch/petclinic/internal/platform/cmd"
	"github.com/louisbranch/petclinic/internal/services/web/storage"
	"github.com/louisbranch/petclinic/internal/services/web/storage/sqlite"
)

// Config holds seed command configuration.
type Config struct {
	DBPath string `env:"PETCLINIC_WEB_DB_PATH" envDefault:"petclinic.db"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens the web database and loads the sample data.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSeed, func(runCtx context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close storage: %v", err)
			}
		}()
		return Seed(runCtx, store)
	})
}

// Seed inserts the sample owners and their pets. Stores that already hold
// owners are left untouched so reruns stay idempotent.
func Seed(ctx context.Context, store storage.Store) error {
	_, total, err := store.FindOwnersByLastName(ctx, "", 1, 1)
	if err != nil {
		return fmt.Errorf("inspect owners: %w", err)
	}
	if total > 0 {
		log.Printf("seed skipped, %d owners already present", total)
		return nil
	}

	samples := sampleOwners()
	for _, sample := range samples {
		owner := sample.owner
		if err := store.SaveOwner(ctx, &owner); err != nil {
			return fmt.Errorf("save owner %s %s: %w", owner.FirstName, owner.LastName, err)
		}
		for _, samplePet := range sample.pets {
			pet := samplePet
			pet.OwnerID = owner.ID
			if err := store.AddPet(ctx, &pet); err != nil {
				return fmt.Errorf("add pet %s: %w", pet.Name, err)
			}
		}
	}
	log.Printf("seeded %d owners", len(samples))
	return nil
}

type sampleOwner struct {
	owner storage.Owner
	pets  []storage.Pet
}

func birthDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func sampleOwners() []sampleOwner {
	return []sampleOwner{
		{
			owner: storage.Owner{FirstName: "George", LastName: "Franklin", Address: "110 W. Liberty St.", City: "Madison", Telephone: "6085551023"},
			pets:  []storage.Pet{{Name: "Leo", BirthDate: birthDate(2010, time.September, 7), Type: storage.PetTypeCat}},
		},
		{
			owner: storage.Owner{FirstName: "Betty", LastName: "Davis", Address: "638 Cardinal Ave.", City: "Sun Prairie", Telephone: "6085551749"},
			pets:  []storage.Pet{{Name: "Basil", BirthDate: birthDate(2012, time.August, 6), Type: storage.PetTypeHamster}},
		},
		{
			owner: storage.Owner{FirstName: "Eduardo", LastName: "Rodriquez", Address: "2693 Commerce St.", City: "McFarland", Telephone: "6085558763"},
			pets: []storage.Pet{
				{Name: "Rosy", BirthDate: birthDate(2011, time.April, 17), Type: storage.PetTypeDog},
				{Name: "Jewel", BirthDate: birthDate(2010, time.March, 7), Type: storage.PetTypeDog},
			},
		},
		{
			owner: storage.Owner{FirstName: "Harold", LastName: "Davis", Address: "563 Friendly St.", City: "Windsor", Telephone: "6085553198"},
			pets:  []storage.Pet{{Name: "Iggy", BirthDate: birthDate(2010, time.November, 30), Type: storage.PetTypeLizard}},
		},
		{
			owner: storage.Owner{FirstName: "Peter", LastName: "McTavish", Address: "2387 S. Fair Way", City: "Madison", Telephone: "6085552765"},
			pets:  []storage.Pet{{Name: "George", BirthDate: birthDate(2010, time.January, 20), Type: storage.PetTypeSnake}},
		},
		{
			owner: storage.Owner{FirstName: "Jean", LastName: "Coleman", Address: "105 N. Lake St.", City: "Monona", Telephone: "6085552654"},
			pets: []storage.Pet{
				{Name: "Samantha", BirthDate: birthDate(2012, time.September, 4), Type: storage.PetTypeCat},
				{Name: "Max", BirthDate: birthDate(2012, time.September, 4), Type: storage.PetTypeCat},
			},
		},
		{
			owner: storage.Owner{FirstName: "Jeff", LastName: "Black", Address: "1450 Oak Blvd.", City: "Monona", Telephone: "6085555387"},
			pets:  []storage.Pet{{Name: "Lucky", BirthDate: birthDate(2011, time.August, 6), Type: storage.PetTypeBird}},
		},
		{
			owner: storage.Owner{FirstName: "Maria", LastName: "Escobito", Address: "345 Maple St.", City: "Madison", Telephone: "6085557683"},
			pets:  []storage.Pet{{Name: "Mulligan", BirthDate: birthDate(2007, time.February, 24), Type: storage.PetTypeDog}},
		},
		{
			owner: storage.Owner{FirstName: "David", LastName: "Schroeder", Address: "2749 Blackhawk Trail", City: "Madison", Telephone: "6085559435"},
			pets:  []storage.Pet{{Name: "Freddy", BirthDate: birthDate(2010, time.March, 9), Type: storage.PetTypeBird}},
		},
		{
			owner: storage.Owner{FirstName: "Carlos", LastName: "Estaban", Address: "2335 Independence La.", City: "Waunakee", Telephone: "6085555487"},
			pets: []storage.Pet{
				{Name: "Lucky", BirthDate: birthDate(2010, time.June, 24), Type: storage.PetTypeDog},
				{Name: "Sly", BirthDate: birthDate(2012, time.June, 8), Type: storage.PetTypeCat},
			},
		},
	}
}
