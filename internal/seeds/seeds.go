package seeds

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/yatradesk/yatradesk-backend/internal/domain/guide"
)

const listPageSize = 100

// guideFixture mirrors the YAML fixture schema. Location is flattened to
// keep the fixtures easy to hand-edit.
type guideFixture struct {
	Name            string   `yaml:"name"`
	Bio             string   `yaml:"bio"`
	Specializations []string `yaml:"specializations"`
	Languages       []string `yaml:"languages"`
	Experience      int      `yaml:"experience"`
	District        string   `yaml:"district"`
	State           string   `yaml:"state"`
	Pricing         struct {
		HalfDay  float64  `yaml:"halfDay"`
		FullDay  float64  `yaml:"fullDay"`
		MultiDay *float64 `yaml:"multiDay"`
		Workshop *float64 `yaml:"workshop"`
	} `yaml:"pricing"`
	Certifications []string `yaml:"certifications"`
	Availability   string   `yaml:"availability"`
}

// SeedGuides loads guide fixtures from path and inserts the ones whose name
// is not present yet, so reruns are idempotent. Returns the number inserted.
func SeedGuides(ctx context.Context, path string, repo guide.Repo, log *zap.Logger) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read guide fixtures: %w", err)
	}

	var fixtures []guideFixture
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		return 0, fmt.Errorf("parse guide fixtures: %w", err)
	}

	existing, err := existingNames(ctx, repo)
	if err != nil {
		return 0, err
	}

	seeded := 0
	for _, f := range fixtures {
		if _, ok := existing[f.Name]; ok {
			log.Debug("guide exists, skipping", zap.String("name", f.Name))
			continue
		}

		g, err := fixtureToGuide(f)
		if err != nil {
			return seeded, fmt.Errorf("fixture %q: %w", f.Name, err)
		}
		if _, err := repo.Create(ctx, g); err != nil {
			return seeded, fmt.Errorf("seed guide %q: %w", f.Name, err)
		}
		seeded++
	}

	log.Info("seeded guides", zap.Int("inserted", seeded), zap.Int("fixtures", len(fixtures)))
	return seeded, nil
}

func existingNames(ctx context.Context, repo guide.Repo) (map[string]struct{}, error) {
	names := make(map[string]struct{})
	for offset := 0; ; offset += listPageSize {
		page, _, err := repo.List(ctx, guide.Filter{}, offset, listPageSize)
		if err != nil {
			return nil, fmt.Errorf("list existing guides: %w", err)
		}
		for _, g := range page {
			names[g.Name] = struct{}{}
		}
		if len(page) < listPageSize {
			return names, nil
		}
	}
}

func fixtureToGuide(f guideFixture) (guide.Guide, error) {
	availability := guide.Availability(f.Availability)
	if availability == "" {
		availability = guide.Available
	}
	if !availability.Valid() {
		return guide.Guide{}, fmt.Errorf("unknown availability %q", f.Availability)
	}
	if f.Name == "" {
		return guide.Guide{}, fmt.Errorf("name is required")
	}
	if f.Pricing.HalfDay <= 0 || f.Pricing.FullDay <= 0 {
		return guide.Guide{}, fmt.Errorf("half-day and full-day rates are required")
	}

	now := time.Now()
	return guide.Guide{
		ID:              uuid.New(),
		Name:            f.Name,
		Bio:             f.Bio,
		Specializations: pq.StringArray(f.Specializations),
		Languages:       pq.StringArray(f.Languages),
		ExperienceYears: f.Experience,
		Location: guide.Location{
			District: f.District,
			State:    f.State,
		},
		Pricing: guide.Pricing{
			HalfDay:  f.Pricing.HalfDay,
			FullDay:  f.Pricing.FullDay,
			MultiDay: f.Pricing.MultiDay,
			Workshop: f.Pricing.Workshop,
		},
		Certifications: pq.StringArray(f.Certifications),
		Availability:   availability,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}
