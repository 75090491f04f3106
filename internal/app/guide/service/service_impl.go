package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/yatradesk/yatradesk-backend/internal/adapters/transport/http/dto"
	customErrors "github.com/yatradesk/yatradesk-backend/internal/domain/errors"
	"github.com/yatradesk/yatradesk-backend/internal/domain/guide"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Page is one listing page plus the bookkeeping the catalog UI paginates by.
type Page struct {
	Guides     []guide.Guide
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type Service interface {
	Create(context.Context, dto.CreateGuideRequest) (guide.Guide, error)
	Get(context.Context, uuid.UUID) (guide.Guide, error)
	List(context.Context, dto.ListGuidesQuery) (Page, error)
	Update(context.Context, uuid.UUID, dto.UpdateGuideRequest) (guide.Guide, error)
	Delete(context.Context, uuid.UUID) error
}

type guideService struct {
	guideRepo guide.Repo
}

func New(gr guide.Repo) Service {
	return &guideService{guideRepo: gr}
}

func (s *guideService) Create(ctx context.Context, in dto.CreateGuideRequest) (guide.Guide, error) {
	availability := guide.Availability(in.Availability)
	if availability == "" {
		availability = guide.Available
	}
	if !availability.Valid() {
		return guide.Guide{}, customErrors.NewInvalidArgument("unknown availability state")
	}

	now := time.Now()
	g := guide.Guide{
		ID:              uuid.New(),
		Name:            strings.TrimSpace(in.Name),
		Bio:             in.Bio,
		Specializations: pq.StringArray(in.Specializations),
		Languages:       pq.StringArray(in.Languages),
		ExperienceYears: in.Experience,
		Location: guide.Location{
			District: in.Location.District,
			State:    in.Location.State,
		},
		Pricing: guide.Pricing{
			HalfDay:  in.Pricing.HalfDay,
			FullDay:  in.Pricing.FullDay,
			MultiDay: in.Pricing.MultiDay,
			Workshop: in.Pricing.Workshop,
		},
		Certifications: pq.StringArray(in.Certifications),
		Availability:   availability,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := s.guideRepo.Create(ctx, g); err != nil {
		return guide.Guide{}, customErrors.WrapInternal(err, "CreateGuide")
	}
	return g, nil
}

func (s *guideService) Get(ctx context.Context, id uuid.UUID) (guide.Guide, error) {
	g, err := s.guideRepo.GetByID(ctx, id)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return guide.Guide{}, customErrors.ErrNotFound
	case err != nil:
		return guide.Guide{}, customErrors.WrapInternal(err, "GetGuide")
	}
	return g, nil
}

func (s *guideService) List(ctx context.Context, q dto.ListGuidesQuery) (Page, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	switch {
	case limit < 1:
		limit = defaultPageSize
	case limit > maxPageSize:
		limit = maxPageSize
	}

	f := guide.Filter{
		Specialization: strings.TrimSpace(q.Specialization),
		Language:       strings.TrimSpace(q.Language),
		District:       strings.TrimSpace(q.District),
		State:          strings.TrimSpace(q.State),
		Availability:   guide.Availability(q.Availability),
		MinExperience:  q.MinExperience,
		MaxFullDayRate: q.MaxRate,
	}

	guides, total, err := s.guideRepo.List(ctx, f, (page-1)*limit, limit)
	if err != nil {
		return Page{}, customErrors.WrapInternal(err, "ListGuides")
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Page{
		Guides:     guides,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *guideService) Update(ctx context.Context, id uuid.UUID, in dto.UpdateGuideRequest) (guide.Guide, error) {
	g, err := s.guideRepo.GetByID(ctx, id)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return guide.Guide{}, customErrors.ErrNotFound
	case err != nil:
		return guide.Guide{}, customErrors.WrapInternal(err, "UpdateGuide")
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		g.Name = strings.TrimSpace(*in.Name)
	}
	if in.Bio != nil {
		g.Bio = *in.Bio
	}
	if in.Specializations != nil {
		g.Specializations = pq.StringArray(in.Specializations)
	}
	if in.Languages != nil {
		g.Languages = pq.StringArray(in.Languages)
	}
	if in.Experience != nil {
		g.ExperienceYears = *in.Experience
	}
	if in.Location != nil {
		g.Location = guide.Location{District: in.Location.District, State: in.Location.State}
	}
	if in.Pricing != nil {
		g.Pricing = guide.Pricing{
			HalfDay:  in.Pricing.HalfDay,
			FullDay:  in.Pricing.FullDay,
			MultiDay: in.Pricing.MultiDay,
			Workshop: in.Pricing.Workshop,
		}
	}
	if in.Certifications != nil {
		g.Certifications = pq.StringArray(in.Certifications)
	}
	if in.Availability != nil {
		availability := guide.Availability(*in.Availability)
		if !availability.Valid() {
			return guide.Guide{}, customErrors.NewInvalidArgument("unknown availability state")
		}
		g.Availability = availability
	}

	g.UpdatedAt = time.Now()
	if err = s.guideRepo.Update(ctx, g); err != nil {
		if errors.Is(err, customErrors.ErrNotFound) {
			return guide.Guide{}, customErrors.ErrNotFound
		}
		return guide.Guide{}, customErrors.WrapInternal(err, "UpdateGuide")
	}
	return g, nil
}

func (s *guideService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.guideRepo.Delete(ctx, id)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return customErrors.ErrNotFound
	case err != nil:
		return customErrors.WrapInternal(err, "DeleteGuide")
	}
	return nil
}
