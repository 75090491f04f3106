package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/lib/pq"

	customErrors "github.com/yatradesk/yatradesk-backend/internal/domain/errors"
	"github.com/yatradesk/yatradesk-backend/internal/domain/guide"
)

// GuideRepo keeps guides in an insertion-ordered slice behind a mutex. It
// backs tests and GUIDE_STORE=memory deployments and must page through the
// same sequence as the SQL implementation (creation order).
type GuideRepo struct {
	mu     sync.RWMutex
	guides []guide.Guide
}

func NewGuideRepo() *GuideRepo {
	return &GuideRepo{}
}

func (r *GuideRepo) Create(_ context.Context, g guide.Guide) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.guides = append(r.guides, cloneGuide(g))
	return g.ID, nil
}

func (r *GuideRepo) GetByID(_ context.Context, id uuid.UUID) (guide.Guide, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.guides {
		if g.ID == id {
			return cloneGuide(g), nil
		}
	}
	return guide.Guide{}, customErrors.ErrNotFound
}

func (r *GuideRepo) Update(_ context.Context, g guide.Guide) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.guides {
		if r.guides[i].ID == g.ID {
			r.guides[i] = cloneGuide(g)
			return nil
		}
	}
	return customErrors.ErrNotFound
}

func (r *GuideRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.guides {
		if r.guides[i].ID == id {
			r.guides = append(r.guides[:i], r.guides[i+1:]...)
			return nil
		}
	}
	return customErrors.ErrNotFound
}

func (r *GuideRepo) List(_ context.Context, f guide.Filter, offset, limit int) ([]guide.Guide, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []guide.Guide
	for _, g := range r.guides {
		if matches(g, f) {
			matched = append(matched, g)
		}
	}

	total := int64(len(matched))
	if offset >= len(matched) {
		return []guide.Guide{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]guide.Guide, 0, end-offset)
	for _, g := range matched[offset:end] {
		page = append(page, cloneGuide(g))
	}
	return page, total, nil
}

func matches(g guide.Guide, f guide.Filter) bool {
	if f.Specialization != "" && !containsString(g.Specializations, f.Specialization) {
		return false
	}
	if f.Language != "" && !containsString(g.Languages, f.Language) {
		return false
	}
	if f.District != "" && g.Location.District != f.District {
		return false
	}
	if f.State != "" && g.Location.State != f.State {
		return false
	}
	if f.Availability != "" && g.Availability != f.Availability {
		return false
	}
	if f.MinExperience > 0 && g.ExperienceYears < f.MinExperience {
		return false
	}
	if f.MaxFullDayRate > 0 && g.Pricing.FullDay > f.MaxFullDayRate {
		return false
	}
	return true
}

func containsString(arr pq.StringArray, want string) bool {
	for _, s := range arr {
		if s == want {
			return true
		}
	}
	return false
}

// cloneGuide detaches slice and pointer fields so callers cannot alias the
// stored record.
func cloneGuide(g guide.Guide) guide.Guide {
	g.Specializations = append(pq.StringArray(nil), g.Specializations...)
	g.Languages = append(pq.StringArray(nil), g.Languages...)
	g.Certifications = append(pq.StringArray(nil), g.Certifications...)
	if g.Pricing.MultiDay != nil {
		v := *g.Pricing.MultiDay
		g.Pricing.MultiDay = &v
	}
	if g.Pricing.Workshop != nil {
		v := *g.Pricing.Workshop
		g.Pricing.Workshop = &v
	}
	return g
}
