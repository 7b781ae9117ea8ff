package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/petclinic/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/petclinic/internal/services/web/storage"
	"github.com/louisbranch/petclinic/internal/services/web/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists owner records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.Store = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite owner store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL&_pragma=foreign_keys(ON)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// FindOwnerByID returns one owner with pets populated.
func (s *Store) FindOwnerByID(ctx context.Context, id int64) (storage.Owner, error) {
	if err := ctx.Err(); err != nil {
		return storage.Owner{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Owner{}, fmt.Errorf("storage is not configured")
	}
	if id <= 0 {
		return storage.Owner{}, fmt.Errorf("owner id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, first_name, last_name, address, city, telephone
		   FROM owners
		  WHERE id = ?`,
		id,
	)

	var owner storage.Owner
	err := row.Scan(
		&owner.ID,
		&owner.FirstName,
		&owner.LastName,
		&owner.Address,
		&owner.City,
		&owner.Telephone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Owner{}, storage.ErrNotFound
		}
		return storage.Owner{}, fmt.Errorf("find owner: %w", err)
	}

	petsByOwner, err := s.petsForOwners(ctx, []int64{owner.ID})
	if err != nil {
		return storage.Owner{}, err
	}
	owner.Pets = petsByOwner[owner.ID]
	return owner, nil
}

// FindOwnersByLastName returns one 1-based page of owners whose last name
// starts with lastName, plus the total match count.
func (s *Store) FindOwnersByLastName(ctx context.Context, lastName string, page, pageSize int) ([]storage.Owner, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, 0, fmt.Errorf("storage is not configured")
	}
	if page <= 0 {
		return nil, 0, fmt.Errorf("page must be greater than zero")
	}
	if pageSize <= 0 {
		return nil, 0, fmt.Errorf("page size must be greater than zero")
	}

	pattern := escapeLikePrefix(strings.TrimSpace(lastName)) + "%"

	var total int
	countRow := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM owners WHERE last_name LIKE ? ESCAPE '\'`,
		pattern,
	)
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count owners: %w", err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	offset := (page - 1) * pageSize
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, first_name, last_name, address, city, telephone
		   FROM owners
		  WHERE last_name LIKE ? ESCAPE '\'
		  ORDER BY id ASC
		  LIMIT ? OFFSET ?`,
		pattern,
		pageSize,
		offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list owners: %w", err)
	}
	defer rows.Close()

	owners := make([]storage.Owner, 0, pageSize)
	ownerIDs := make([]int64, 0, pageSize)
	for rows.Next() {
		var owner storage.Owner
		if err := rows.Scan(
			&owner.ID,
			&owner.FirstName,
			&owner.LastName,
			&owner.Address,
			&owner.City,
			&owner.Telephone,
		); err != nil {
			return nil, 0, fmt.Errorf("list owners: %w", err)
		}
		owners = append(owners, owner)
		ownerIDs = append(ownerIDs, owner.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list owners: %w", err)
	}

	petsByOwner, err := s.petsForOwners(ctx, ownerIDs)
	if err != nil {
		return nil, 0, err
	}
	for i := range owners {
		owners[i].Pets = petsByOwner[owners[i].ID]
	}
	return owners, total, nil
}

// SaveOwner inserts a new owner or updates an existing one.
func (s *Store) SaveOwner(ctx context.Context, owner *storage.Owner) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if owner == nil {
		return fmt.Errorf("owner is required")
	}
	firstName := strings.TrimSpace(owner.FirstName)
	lastName := strings.TrimSpace(owner.LastName)
	if firstName == "" {
		return fmt.Errorf("first name is required")
	}
	if lastName == "" {
		return fmt.Errorf("last name is required")
	}

	if owner.ID == 0 {
		result, err := s.sqlDB.ExecContext(
			ctx,
			`INSERT INTO owners (first_name, last_name, address, city, telephone)
			 VALUES (?, ?, ?, ?, ?)`,
			firstName,
			lastName,
			strings.TrimSpace(owner.Address),
			strings.TrimSpace(owner.City),
			strings.TrimSpace(owner.Telephone),
		)
		if err != nil {
			return fmt.Errorf("insert owner: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("read inserted owner id: %w", err)
		}
		owner.ID = id
		return nil
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE owners
		    SET first_name = ?, last_name = ?, address = ?, city = ?, telephone = ?
		  WHERE id = ?`,
		firstName,
		lastName,
		strings.TrimSpace(owner.Address),
		strings.TrimSpace(owner.City),
		strings.TrimSpace(owner.Telephone),
		owner.ID,
	)
	if err != nil {
		return fmt.Errorf("update owner: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read updated owner rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// AddPet registers one pet under an existing owner.
func (s *Store) AddPet(ctx context.Context, pet *storage.Pet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if pet == nil {
		return fmt.Errorf("pet is required")
	}
	name := strings.TrimSpace(pet.Name)
	if name == "" {
		return fmt.Errorf("pet name is required")
	}
	if pet.OwnerID <= 0 {
		return fmt.Errorf("owner id is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO pets (owner_id, name, birth_date, type)
		 VALUES (?, ?, ?, ?)`,
		pet.OwnerID,
		name,
		toMillis(pet.BirthDate),
		strings.TrimSpace(pet.Type),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("insert pet: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("read inserted pet id: %w", err)
	}
	pet.ID = id
	return nil
}

// petsForOwners loads pets for the supplied owner ids grouped by owner.
func (s *Store) petsForOwners(ctx context.Context, ownerIDs []int64) (map[int64][]storage.Pet, error) {
	petsByOwner := make(map[int64][]storage.Pet, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return petsByOwner, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ownerIDs)), ",")
	args := make([]any, 0, len(ownerIDs))
	for _, id := range ownerIDs {
		args = append(args, id)
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, owner_id, name, birth_date, type
		   FROM pets
		  WHERE owner_id IN (`+placeholders+`)
		  ORDER BY owner_id ASC, id ASC`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pet storage.Pet
		var birthDate int64
		if err := rows.Scan(&pet.ID, &pet.OwnerID, &pet.Name, &birthDate, &pet.Type); err != nil {
			return nil, fmt.Errorf("list pets: %w", err)
		}
		pet.BirthDate = fromMillis(birthDate)
		petsByOwner[pet.OwnerID] = append(petsByOwner[pet.OwnerID], pet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	return petsByOwner, nil
}

// escapeLikePrefix neutralizes LIKE wildcards in a user-supplied prefix.
func escapeLikePrefix(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}

func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY
	}
	return false
}
