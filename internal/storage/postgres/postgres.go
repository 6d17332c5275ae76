package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"venueBooker/internal/config"
	"venueBooker/internal/models"
	"venueBooker/internal/storage"
)

type Storage struct {
	db *bun.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	const op = "storage.postgres.InitDB"

	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	sqlDB, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	sqlDB.SetMaxOpenConns(dbCfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(dbCfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)

	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	if dbCfg.Migrate {
		// the migrator closes its handle, so it gets a dedicated one
		migrateDB, err := sql.Open("postgres", connStr)
		if err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if err = Migrate(migrateDB); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return New(bun.NewDB(sqlDB, pgdialect.New())), nil
}

// New wraps an already configured bun handle. Any dialect works; tests
// use SQLite.
func New(db *bun.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// Venues

func (s *Storage) ListVenues(ctx context.Context) ([]models.Venue, error) {
	const op = "storage.postgres.ListVenues"

	var venues []models.Venue
	err := s.db.NewSelect().
		Model(&venues).
		Relation("Shows").
		OrderExpr("v.city ASC, v.state ASC, v.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return venues, nil
}

func (s *Storage) SearchVenues(ctx context.Context, term string) ([]models.Venue, error) {
	const op = "storage.postgres.SearchVenues"

	var venues []models.Venue
	err := s.db.NewSelect().
		Model(&venues).
		Relation("Shows").
		Where(`LOWER(v.name) LIKE ? ESCAPE '\'`, containsPattern(term)).
		OrderExpr("v.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return venues, nil
}

// GetVenue returns the venue with its shows ordered by start time, each
// carrying the performing artist.
func (s *Storage) GetVenue(ctx context.Context, id int64) (*models.Venue, error) {
	const op = "storage.postgres.GetVenue"

	venue := new(models.Venue)
	err := s.db.NewSelect().
		Model(venue).
		Where("v.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = s.db.NewSelect().
		Model(&venue.Shows).
		Relation("Artist").
		Where("s.venue_id = ?", id).
		OrderExpr("s.start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get shows: %w", op, err)
	}

	return venue, nil
}

func (s *Storage) CreateVenue(ctx context.Context, venue *models.Venue) (int64, error) {
	const op = "storage.postgres.CreateVenue"

	venue.Genres = normalizeGenres(venue.Genres)

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*models.Venue)(nil)).
			Where("v.name = ?", venue.Name).
			Where("v.city = ?", venue.City).
			Exists(ctx)
		if err != nil {
			return fmt.Errorf("failed to check existing venue: %w", err)
		}

		if exists {
			return storage.ErrVenueExists
		}

		if _, err = tx.NewInsert().Model(venue).Exec(ctx); err != nil {
			if isUniqueViolation(err) {
				return storage.ErrVenueExists
			}
			return fmt.Errorf("failed to insert venue: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return venue.ID, nil
}

// UpdateVenue overwrites every column of the stored venue with the
// values in venue.
func (s *Storage) UpdateVenue(ctx context.Context, venue *models.Venue) error {
	const op = "storage.postgres.UpdateVenue"

	venue.Genres = normalizeGenres(venue.Genres)

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().Model(venue).WherePK().Exec(ctx)
		if err != nil {
			if isUniqueViolation(err) {
				return storage.ErrVenueExists
			}
			return fmt.Errorf("failed to update venue: %w", err)
		}

		return requireAffected(res)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteVenue removes the venue and every show booked at it.
func (s *Storage) DeleteVenue(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteVenue"

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.Show)(nil)).
			Where("venue_id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete shows: %w", err)
		}

		res, err := tx.NewDelete().
			Model((*models.Venue)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete venue: %w", err)
		}

		return requireAffected(res)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Artists

func (s *Storage) ListArtists(ctx context.Context) ([]models.Artist, error) {
	const op = "storage.postgres.ListArtists"

	var artists []models.Artist
	err := s.db.NewSelect().
		Model(&artists).
		Column("id", "name").
		OrderExpr("a.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return artists, nil
}

func (s *Storage) SearchArtists(ctx context.Context, term string) ([]models.Artist, error) {
	const op = "storage.postgres.SearchArtists"

	var artists []models.Artist
	err := s.db.NewSelect().
		Model(&artists).
		Relation("Shows").
		Where(`LOWER(a.name) LIKE ? ESCAPE '\'`, containsPattern(term)).
		OrderExpr("a.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return artists, nil
}

// GetArtist returns the artist with its shows ordered by start time, each
// carrying the hosting venue.
func (s *Storage) GetArtist(ctx context.Context, id int64) (*models.Artist, error) {
	const op = "storage.postgres.GetArtist"

	artist := new(models.Artist)
	err := s.db.NewSelect().
		Model(artist).
		Where("a.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = s.db.NewSelect().
		Model(&artist.Shows).
		Relation("Venue").
		Where("s.artist_id = ?", id).
		OrderExpr("s.start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get shows: %w", op, err)
	}

	return artist, nil
}

func (s *Storage) CreateArtist(ctx context.Context, artist *models.Artist) (int64, error) {
	const op = "storage.postgres.CreateArtist"

	artist.Genres = normalizeGenres(artist.Genres)

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(artist).Exec(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return artist.ID, nil
}

// UpdateArtist overwrites every column of the stored artist with the
// values in artist.
func (s *Storage) UpdateArtist(ctx context.Context, artist *models.Artist) error {
	const op = "storage.postgres.UpdateArtist"

	artist.Genres = normalizeGenres(artist.Genres)

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().Model(artist).WherePK().Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update artist: %w", err)
		}

		return requireAffected(res)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Shows

func (s *Storage) ListShows(ctx context.Context) ([]models.Show, error) {
	const op = "storage.postgres.ListShows"

	var shows []models.Show
	err := s.db.NewSelect().
		Model(&shows).
		Relation("Venue").
		Relation("Artist").
		OrderExpr("s.start_time ASC, s.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return shows, nil
}

// CreateShow inserts show and returns the stored row with its venue and
// artist loaded, for the confirmation message.
func (s *Storage) CreateShow(ctx context.Context, show *models.Show) (*models.Show, error) {
	const op = "storage.postgres.CreateShow"

	created := new(models.Show)

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(show).Exec(ctx); err != nil {
			if isForeignKeyViolation(err) {
				return storage.ErrNotFound
			}
			return fmt.Errorf("failed to insert show: %w", err)
		}

		err := tx.NewSelect().
			Model(created).
			Relation("Venue").
			Relation("Artist").
			Where("s.id = ?", show.ID).
			Scan(ctx)
		if err != nil {
			return fmt.Errorf("failed to load show: %w", err)
		}

		// drivers without enforced foreign keys let dangling ids through
		if created.Venue == nil || created.Venue.ID == 0 || created.Artist == nil || created.Artist.ID == 0 {
			return storage.ErrNotFound
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if n == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == "unique_violation"
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == "foreign_key_violation"
	}

	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

func normalizeGenres(genres []string) []string {
	if genres == nil {
		return []string{}
	}

	return genres
}
