package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	customErrors "github.com/yatradesk/yatradesk-backend/internal/domain/errors"
	"github.com/yatradesk/yatradesk-backend/internal/domain/guide"
)

// PostgresGuideRepo implements guide.Repo on top of GORM. Listing pages in
// creation order, matching the memory implementation.
type PostgresGuideRepo struct {
	db *gorm.DB
}

func NewPostgresGuideRepo(db *gorm.DB) *PostgresGuideRepo {
	return &PostgresGuideRepo{db: db}
}

func (p *PostgresGuideRepo) Create(ctx context.Context, g guide.Guide) (uuid.UUID, error) {
	res := p.db.WithContext(ctx).Create(&g)
	if err := res.Error; err != nil {
		return uuid.Nil, customErrors.WrapInternal(err, "CreateGuide")
	}
	return g.ID, nil
}

func (p *PostgresGuideRepo) GetByID(ctx context.Context, id uuid.UUID) (guide.Guide, error) {
	var g guide.Guide
	res := p.db.WithContext(ctx).Where("id = ?", id).First(&g)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return guide.Guide{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return guide.Guide{}, customErrors.WrapInternal(err, "GetGuideByID")
	}

	return g, nil
}

func (p *PostgresGuideRepo) Update(ctx context.Context, g guide.Guide) error {
	res := p.db.WithContext(ctx).Save(&g)
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "UpdateGuide")
	}

	return nil
}

func (p *PostgresGuideRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := p.db.WithContext(ctx).Delete(&guide.Guide{}, "id = ?", id)
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "DeleteGuide")
	}
	if res.RowsAffected == 0 {
		return customErrors.ErrNotFound
	}

	return nil
}

func (p *PostgresGuideRepo) List(ctx context.Context, f guide.Filter, offset, limit int) ([]guide.Guide, int64, error) {
	var total int64
	if err := p.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, customErrors.WrapInternal(err, "CountGuides")
	}

	var guides []guide.Guide
	res := p.filtered(ctx, f).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&guides)
	if err := res.Error; err != nil {
		return nil, 0, customErrors.WrapInternal(err, "ListGuides")
	}

	return guides, total, nil
}

// filtered builds a fresh query with the filter conditions applied, so Count
// and Find never share a mutated statement.
func (p *PostgresGuideRepo) filtered(ctx context.Context, f guide.Filter) *gorm.DB {
	q := p.db.WithContext(ctx).Model(&guide.Guide{})
	if f.Specialization != "" {
		q = q.Where("? = ANY(specializations)", f.Specialization)
	}
	if f.Language != "" {
		q = q.Where("? = ANY(languages)", f.Language)
	}
	if f.District != "" {
		q = q.Where("district = ?", f.District)
	}
	if f.State != "" {
		q = q.Where("state = ?", f.State)
	}
	if f.Availability != "" {
		q = q.Where("availability = ?", string(f.Availability))
	}
	if f.MinExperience > 0 {
		q = q.Where("experience_years >= ?", f.MinExperience)
	}
	if f.MaxFullDayRate > 0 {
		q = q.Where("price_full_day <= ?", f.MaxFullDayRate)
	}
	return q
}
