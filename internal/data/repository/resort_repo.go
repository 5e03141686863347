package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"resort-booking/internal/data/entity"
	"resort-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ResortRepository interface {
	Create(ctx context.Context, resort *entity.Resort) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Resort, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Resort, error)
	CountAll(ctx context.Context) (int64, error)
	Search(ctx context.Context, destination, title string) ([]*entity.Resort, error)
	FindPopular(ctx context.Context, limit int) ([]*entity.Resort, error)
	AverageRating(ctx context.Context) (float64, error)
	Update(ctx context.Context, resort *entity.Resort) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type resortRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewResortRepository(db database.PgxIface, log *zap.Logger) ResortRepository {
	return &resortRepository{
		db:  db,
		log: log,
	}
}

const resortColumns = `id, title, location, price, rating, img_src, photos,
	       amenities, short_description, description, map_link, vlog_link,
	       packages, nearby_attractions, created_at, updated_at`

func (rr *resortRepository) scanResort(row pgx.Row) (*entity.Resort, error) {
	var resort entity.Resort
	var packagesJSON []byte

	err := row.Scan(
		&resort.ID,
		&resort.Title,
		&resort.Location,
		&resort.Price,
		&resort.Rating,
		&resort.ImgSrc,
		&resort.Photos,
		&resort.Amenities,
		&resort.ShortDescription,
		&resort.Description,
		&resort.MapLink,
		&resort.VlogLink,
		&packagesJSON,
		&resort.NearbyAttractions,
		&resort.CreatedAt,
		&resort.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if len(packagesJSON) > 0 {
		if err := json.Unmarshal(packagesJSON, &resort.Packages); err != nil {
			return nil, fmt.Errorf("decode packages: %w", err)
		}
	}

	return &resort, nil
}

func (rr *resortRepository) Create(ctx context.Context, resort *entity.Resort) error {
	packagesJSON, err := json.Marshal(resort.Packages)
	if err != nil {
		return fmt.Errorf("encode packages: %w", err)
	}

	query := `
		INSERT INTO resorts (id, title, location, price, rating, img_src, photos,
		                    amenities, short_description, description, map_link,
		                    vlog_link, packages, nearby_attractions,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err = rr.db.Exec(ctx, query,
		resort.ID,
		resort.Title,
		resort.Location,
		resort.Price,
		resort.Rating,
		resort.ImgSrc,
		resort.Photos,
		resort.Amenities,
		resort.ShortDescription,
		resort.Description,
		resort.MapLink,
		resort.VlogLink,
		packagesJSON,
		resort.NearbyAttractions,
		resort.CreatedAt,
		resort.UpdatedAt,
	)

	if err != nil {
		rr.log.Error("Failed to create resort",
			zap.Error(err),
			zap.String("title", resort.Title),
		)
		return fmt.Errorf("create resort %s: %w", resort.Title, err)
	}

	return nil
}

func (rr *resortRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resort, error) {
	query := `SELECT ` + resortColumns + ` FROM resorts WHERE id = $1`

	resort, err := rr.scanResort(rr.db.QueryRow(ctx, query, id))
	if err != nil {
		rr.log.Error("Failed to find resort by ID",
			zap.Error(err),
			zap.String("resort_id", id.String()),
		)
		return nil, fmt.Errorf("find resort by ID %s: %w", id.String(), err)
	}

	return resort, nil
}

// FindAll retrieves paginated resorts, newest first
func (rr *resortRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Resort, error) {
	query := `SELECT ` + resortColumns + ` FROM resorts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := rr.db.Query(ctx, query, limit, offset)
	if err != nil {
		rr.log.Error("Failed to get all resorts",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all resorts limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	return rr.collectResorts(rows)
}

func (rr *resortRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM resorts`

	var count int64
	err := rr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		rr.log.Error("Database error counting resorts", zap.Error(err))
		return 0, fmt.Errorf("count all resorts: %w", err)
	}

	return count, nil
}

// Search matches destination against title or location, case-insensitive.
// A bare title query narrows to title only.
func (rr *resortRepository) Search(ctx context.Context, destination, title string) ([]*entity.Resort, error) {
	var (
		query string
		args  []any
	)

	switch {
	case destination != "":
		query = `SELECT ` + resortColumns + ` FROM resorts
			WHERE title ILIKE '%' || $1 || '%' OR location ILIKE '%' || $1 || '%'
			ORDER BY created_at DESC`
		args = []any{destination}
	case title != "":
		query = `SELECT ` + resortColumns + ` FROM resorts
			WHERE title ILIKE '%' || $1 || '%'
			ORDER BY created_at DESC`
		args = []any{title}
	default:
		query = `SELECT ` + resortColumns + ` FROM resorts ORDER BY created_at DESC`
	}

	rows, err := rr.db.Query(ctx, query, args...)
	if err != nil {
		rr.log.Error("Failed to search resorts",
			zap.Error(err),
			zap.String("destination", destination),
			zap.String("title", title),
		)
		return nil, fmt.Errorf("search resorts: %w", err)
	}
	defer rows.Close()

	return rr.collectResorts(rows)
}

// FindPopular returns the top rated resorts for the admin dashboard
func (rr *resortRepository) FindPopular(ctx context.Context, limit int) ([]*entity.Resort, error) {
	query := `SELECT ` + resortColumns + ` FROM resorts
		ORDER BY rating DESC
		LIMIT $1`

	rows, err := rr.db.Query(ctx, query, limit)
	if err != nil {
		rr.log.Error("Failed to get popular resorts", zap.Error(err))
		return nil, fmt.Errorf("find popular resorts: %w", err)
	}
	defer rows.Close()

	return rr.collectResorts(rows)
}

func (rr *resortRepository) AverageRating(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM resorts`

	var avg float64
	err := rr.db.QueryRow(ctx, query).Scan(&avg)
	if err != nil {
		rr.log.Error("Database error averaging ratings", zap.Error(err))
		return 0, fmt.Errorf("average resort rating: %w", err)
	}

	return avg, nil
}

func (rr *resortRepository) Update(ctx context.Context, resort *entity.Resort) error {
	packagesJSON, err := json.Marshal(resort.Packages)
	if err != nil {
		return fmt.Errorf("encode packages: %w", err)
	}

	query := `
		UPDATE resorts
		SET title = $2, location = $3, price = $4, rating = $5, img_src = $6,
		    photos = $7, amenities = $8, short_description = $9, description = $10,
		    map_link = $11, vlog_link = $12, packages = $13,
		    nearby_attractions = $14, updated_at = $15
		WHERE id = $1
	`

	result, err := rr.db.Exec(ctx, query,
		resort.ID,
		resort.Title,
		resort.Location,
		resort.Price,
		resort.Rating,
		resort.ImgSrc,
		resort.Photos,
		resort.Amenities,
		resort.ShortDescription,
		resort.Description,
		resort.MapLink,
		resort.VlogLink,
		packagesJSON,
		resort.NearbyAttractions,
		resort.UpdatedAt,
	)

	if err != nil {
		rr.log.Error("Failed to update resort",
			zap.Error(err),
			zap.String("resort_id", resort.ID.String()),
		)
		return fmt.Errorf("update resort %s: %w", resort.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("resort %s not found", resort.ID.String())
	}

	return nil
}

func (rr *resortRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM resorts WHERE id = $1`

	result, err := rr.db.Exec(ctx, query, id)
	if err != nil {
		rr.log.Error("Failed to delete resort",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete resort %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("resort %s not found", id.String())
	}

	rr.log.Info("Resort deleted", zap.String("id", id.String()))
	return nil
}

func (rr *resortRepository) collectResorts(rows pgx.Rows) ([]*entity.Resort, error) {
	var resorts []*entity.Resort
	for rows.Next() {
		resort, err := rr.scanResort(rows)
		if err != nil {
			rr.log.Error("Failed to scan resort row", zap.Error(err))
			return nil, fmt.Errorf("scan resort row: %w", err)
		}
		resorts = append(resorts, resort)
	}

	if err := rows.Err(); err != nil {
		rr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate resorts rows: %w", err)
	}

	return resorts, nil
}
