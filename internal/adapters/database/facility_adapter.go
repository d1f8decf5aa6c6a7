package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/sporkart/facility-discovery/internal/domain/entities"
	"github.com/sporkart/facility-discovery/internal/domain/repositories"
	"github.com/sporkart/facility-discovery/internal/infrastructure/clients/postgres"
	apperrors "github.com/sporkart/facility-discovery/pkg/errors"
)

// FacilityAdapter implements CatalogRepository on PostgreSQL, for deployments
// that keep the facility catalog in a database instead of a static file.
type FacilityAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewFacilityAdapter creates a new facility adapter
func NewFacilityAdapter(client *postgres.Client) repositories.CatalogRepository {
	return &FacilityAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var facilityColumns = []interface{}{
	"id", "name", "city", "district", "facility_type",
	"card_types", "latitude", "longitude", "address", "thumbnail",
}

// List returns every facility in the catalog.
func (a *FacilityAdapter) List(ctx context.Context) ([]*entities.Facility, error) {
	query, args, err := a.db.From("facilities").
		Select(facilityColumns...).
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list facilities", err)
	}
	defer rows.Close()

	var facilities []*entities.Facility
	for rows.Next() {
		f, err := scanFacility(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan facility", err)
		}
		facilities = append(facilities, f)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read facilities", err)
	}

	return facilities, nil
}

// GetByID retrieves a facility by ID
func (a *FacilityAdapter) GetByID(ctx context.Context, id string) (*entities.Facility, error) {
	query, args, err := a.db.From("facilities").
		Select(facilityColumns...).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build get query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	f, err := scanFacility(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("facility with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get facility", err)
	}

	return f, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFacility(row rowScanner) (*entities.Facility, error) {
	facility := &entities.Facility{}
	var cardTypes pq.StringArray
	var facilityType, thumbnail sql.NullString

	err := row.Scan(
		&facility.ID,
		&facility.Name,
		&facility.City,
		&facility.District,
		&facilityType,
		&cardTypes,
		&facility.Location.Latitude,
		&facility.Location.Longitude,
		&facility.Address,
		&thumbnail,
	)
	if err != nil {
		return nil, err
	}

	// Missing optional columns degrade to the documented defaults.
	facility.Type = entities.DefaultFacilityType
	if facilityType.Valid && facilityType.String != "" {
		facility.Type = facilityType.String
	}
	facility.CardTypes = []string(cardTypes)
	if facility.CardTypes == nil {
		facility.CardTypes = []string{}
	}
	if thumbnail.Valid {
		facility.Thumbnail = thumbnail.String
	}

	return facility, nil
}
