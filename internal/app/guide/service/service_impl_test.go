package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yatradesk/yatradesk-backend/internal/adapters/db/memory"
	"github.com/yatradesk/yatradesk-backend/internal/adapters/transport/http/dto"
	guidesvc "github.com/yatradesk/yatradesk-backend/internal/app/guide/service"
	customErrors "github.com/yatradesk/yatradesk-backend/internal/domain/errors"
	"github.com/yatradesk/yatradesk-backend/internal/domain/guide"
)

func newSvc() guidesvc.Service {
	return guidesvc.New(memory.NewGuideRepo())
}

func createReq(name string) dto.CreateGuideRequest {
	return dto.CreateGuideRequest{
		Name:            name,
		Bio:             "Guides heritage walks through the old city.",
		Specializations: []string{"heritage"},
		Languages:       []string{"hindi", "english"},
		Experience:      8,
		Location:        dto.GuideLocation{District: "Jaipur", State: "Rajasthan"},
		Pricing:         dto.GuidePricing{HalfDay: 2000, FullDay: 4500},
	}
}

func TestGuideService_CreateDefaults(t *testing.T) {
	svc := newSvc()

	g, err := svc.Create(context.Background(), createReq("Arjun Singh"))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, g.ID)
	require.Equal(t, guide.Available, g.Availability)
	require.False(t, g.CreatedAt.IsZero())
	require.Equal(t, g.CreatedAt, g.UpdatedAt)

	got, err := svc.Get(context.Background(), g.ID)
	require.NoError(t, err)
	require.Equal(t, "Arjun Singh", got.Name)
	require.EqualValues(t, 4500, got.Pricing.FullDay)
}

func TestGuideService_CreateRejectsUnknownAvailability(t *testing.T) {
	svc := newSvc()

	req := createReq("Bad")
	req.Availability = "sabbatical"
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	require.True(t, customErrors.IsInvalidArgument(err))
}

func TestGuideService_GetNotFound(t *testing.T) {
	svc := newSvc()

	_, err := svc.Get(context.Background(), uuid.New())
	require.True(t, customErrors.IsNotFound(err))
}

func TestGuideService_ListPagination(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := svc.Create(ctx, createReq(fmt.Sprintf("guide-%02d", i)))
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, dto.ListGuidesQuery{})
	require.NoError(t, err)
	require.Len(t, page.Guides, 10) // default page size
	require.EqualValues(t, 12, page.Total)
	require.Equal(t, 1, page.Page)
	require.Equal(t, 2, page.TotalPages)
	require.Equal(t, "guide-00", page.Guides[0].Name)

	page, err = svc.List(ctx, dto.ListGuidesQuery{Page: 2})
	require.NoError(t, err)
	require.Len(t, page.Guides, 2)
	require.Equal(t, "guide-10", page.Guides[0].Name)

	// Out-of-range inputs are normalized, not rejected.
	page, err = svc.List(ctx, dto.ListGuidesQuery{Page: -3, Limit: 500})
	require.NoError(t, err)
	require.Equal(t, 1, page.Page)
	require.Equal(t, 100, page.Limit)
	require.Equal(t, 1, page.TotalPages)
}

func TestGuideService_ListFilters(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()

	trek := createReq("Tashi")
	trek.Specializations = []string{"trekking"}
	trek.Languages = []string{"ladakhi"}
	trek.Location = dto.GuideLocation{District: "Leh", State: "Ladakh"}
	trek.Experience = 15
	trek.Pricing = dto.GuidePricing{HalfDay: 4000, FullDay: 8000}
	_, err := svc.Create(ctx, trek)
	require.NoError(t, err)

	_, err = svc.Create(ctx, createReq("Arjun"))
	require.NoError(t, err)

	page, err := svc.List(ctx, dto.ListGuidesQuery{Specialization: "trekking", MinExperience: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, page.Total)
	require.Equal(t, "Tashi", page.Guides[0].Name)

	page, err = svc.List(ctx, dto.ListGuidesQuery{MaxRate: 5000})
	require.NoError(t, err)
	require.EqualValues(t, 1, page.Total)
	require.Equal(t, "Arjun", page.Guides[0].Name)
}

func TestGuideService_UpdatePatch(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()

	g, err := svc.Create(ctx, createReq("Meera"))
	require.NoError(t, err)

	bio := "Tea estate and spice garden walks."
	busy := "busy"
	updated, err := svc.Update(ctx, g.ID, dto.UpdateGuideRequest{
		Bio:          &bio,
		Availability: &busy,
	})
	require.NoError(t, err)
	require.Equal(t, "Meera", updated.Name) // untouched
	require.Equal(t, bio, updated.Bio)
	require.Equal(t, guide.Busy, updated.Availability)
	require.EqualValues(t, 4500, updated.Pricing.FullDay)
	require.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))

	multiDay := 12000.0
	updated, err = svc.Update(ctx, g.ID, dto.UpdateGuideRequest{
		Pricing: &dto.GuidePricing{HalfDay: 2500, FullDay: 5000, MultiDay: &multiDay},
	})
	require.NoError(t, err)
	require.EqualValues(t, 5000, updated.Pricing.FullDay)
	require.NotNil(t, updated.Pricing.MultiDay)
	require.EqualValues(t, 12000, *updated.Pricing.MultiDay)
}

func TestGuideService_UpdateNotFound(t *testing.T) {
	svc := newSvc()

	name := "Ghost"
	_, err := svc.Update(context.Background(), uuid.New(), dto.UpdateGuideRequest{Name: &name})
	require.True(t, customErrors.IsNotFound(err))
}

func TestGuideService_DeleteThenGone(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()

	g, err := svc.Create(ctx, createReq("Temp"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, g.ID))
	require.True(t, customErrors.IsNotFound(svc.Delete(ctx, g.ID)))

	_, err = svc.Get(ctx, g.ID)
	require.True(t, customErrors.IsNotFound(err))
}
