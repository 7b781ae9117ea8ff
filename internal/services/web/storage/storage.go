package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested owner record is missing.
	ErrNotFound = errors.New("record not found")
)

// Owner stores one clinic customer record and their registered pets.
type Owner struct {
	ID        int64
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string
	Pets      []Pet
}

// Pet stores one animal registered under an owner.
type Pet struct {
	ID        int64
	OwnerID   int64
	Name      string
	BirthDate time.Time
	Type      string
}

// Pet types accepted by the clinic.
const (
	PetTypeBird    = "bird"
	PetTypeCat     = "cat"
	PetTypeDog     = "dog"
	PetTypeHamster = "hamster"
	PetTypeLizard  = "lizard"
	PetTypeSnake   = "snake"
)

// OwnerStore persists owner records and resolves their pets.
type OwnerStore interface {
	// FindOwnerByID returns one owner with pets populated.
	FindOwnerByID(ctx context.Context, id int64) (Owner, error)
	// FindOwnersByLastName returns one 1-based page of owners whose last
	// name starts with lastName, plus the total match count. An empty
	// filter matches every owner.
	FindOwnersByLastName(ctx context.Context, lastName string, page, pageSize int) ([]Owner, int, error)
	// SaveOwner inserts when the owner has no id yet and updates otherwise.
	SaveOwner(ctx context.Context, owner *Owner) error
}

// PetStore registers pets under existing owners.
type PetStore interface {
	AddPet(ctx context.Context, pet *Pet) error
}

// Store is a composite interface for web storage concerns.
type Store interface {
	OwnerStore
	PetStore
	Close() error
}
