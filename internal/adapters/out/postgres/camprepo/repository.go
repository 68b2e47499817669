package camprepo

import (
	"context"
	"errors"

	"foodbridge/internal/core/domain/model/camp"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCampRepository implements CampRepository using GORM.
type GormCampRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCampRepository creates a new GORM camp repository.
func NewGormCampRepository(db *gorm.DB, tracker aggregateTracker) *GormCampRepository {
	return &GormCampRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new camp to the database.
func (r *GormCampRepository) Add(ctx context.Context, aggregate *camp.Camp) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing camp to the database. Uses Select("*") so
// completing a camp writes is_active back as false instead of skipping the
// zero value.
func (r *GormCampRepository) Update(ctx context.Context, aggregate *camp.Camp) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CampDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a camp by ID.
func (r *GormCampRepository) Get(ctx context.Context, id kernel.UUID) (*camp.Camp, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CampDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("camp", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByOrganizations retrieves all active camps run by any of the given
// organizations.
func (r *GormCampRepository) GetActiveByOrganizations(
	ctx context.Context,
	organizationIDs []kernel.UUID,
) ([]*camp.Camp, error) {
	if len(organizationIDs) == 0 {
		return nil, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(organizationIDs))
	for _, orgID := range organizationIDs {
		if err := orgID.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, orgID.Bytes())
	}

	var dtos []CampDTO
	err := r.db.WithContext(ctx).
		Where("organization_id IN ? AND is_active = ?", rawIDs, true).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	camps := make([]*camp.Camp, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		camps = append(camps, c)
	}

	return camps, nil
}
