package donationrepo

import (
	"context"
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDonationRepository implements DonationRepository using GORM.
type GormDonationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDonationRepository creates a new GORM donation repository.
func NewGormDonationRepository(db *gorm.DB, tracker aggregateTracker) *GormDonationRepository {
	return &GormDonationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new donation to the database.
func (r *GormDonationRepository) Add(ctx context.Context, aggregate *donation.Donation) error {
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

// Update saves an existing donation to the database. Uses Select("*") so
// columns cleared by a lifecycle transition (courier_id, accepted_at on
// release) are written back as NULL rather than skipped as zero values.
func (r *GormDonationRepository) Update(ctx context.Context, aggregate *donation.Donation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DonationDTO{}).
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

// Get retrieves a donation by ID.
func (r *GormDonationRepository) Get(ctx context.Context, id kernel.UUID) (*donation.Donation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DonationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("donation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a donation by ID holding a FOR UPDATE row lock.
// Racing pickup attempts serialize here: the transaction that wins the lock
// sees the donation unclaimed, the loser blocks and then sees it taken.
func (r *GormDonationRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*donation.Donation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DonationDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("donation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByCourierForUpdate retrieves the courier's Accepted and Collected
// donations with FOR UPDATE row locks, ordered by acceptance time.
func (r *GormDonationRepository) GetActiveByCourierForUpdate(
	ctx context.Context,
	courierID kernel.UUID,
) ([]*donation.Donation, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DonationDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("courier_id = ? AND status IN ?", courierID.Bytes(), activePickupStatuses()).
		Order("accepted_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	donations := make([]*donation.Donation, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		donations = append(donations, d)
	}

	return donations, nil
}

// CountActiveByCourier returns how many donations the courier holds in
// Accepted or Collected status.
func (r *GormDonationRepository) CountActiveByCourier(ctx context.Context, courierID kernel.UUID) (int, error) {
	if err := courierID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&DonationDTO{}).
		Where("courier_id = ? AND status IN ?", courierID.Bytes(), activePickupStatuses()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// ReleaseExpiredPickups returns stale Accepted donations to the unclaimed
// pool in one conditional update. Collected donations never match: once the
// food is physically picked up the pickup cannot expire.
func (r *GormDonationRepository) ReleaseExpiredPickups(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&DonationDTO{}).
		Where("status = ? AND accepted_at <= ?", int(donation.Accepted), cutoff).
		Updates(map[string]any{
			"status":      int(donation.Pending),
			"courier_id":  nil,
			"accepted_at": nil,
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func activePickupStatuses() []int {
	return []int{int(donation.Accepted), int(donation.Collected)}
}
