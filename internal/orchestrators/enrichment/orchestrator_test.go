package enrichment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/ahgbank/gbank-api/internal/clients/wowhead"
	wowheadmock "github.com/ahgbank/gbank-api/internal/clients/wowhead/mock"
	"github.com/ahgbank/gbank-api/internal/entities/wow"
	"github.com/ahgbank/gbank-api/internal/errors"
	"github.com/ahgbank/gbank-api/internal/orchestrators/enrichment"
	"github.com/ahgbank/gbank-api/internal/repositories/scrapeditems"
	"github.com/ahgbank/gbank-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockWowhead *wowheadmock.MockClient
	itemRepo    scrapeditems.Repository
	service     enrichment.Service
	cleanup     func()
	ctx         context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockWowhead = wowheadmock.NewMockClient(s.ctrl)

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := scrapeditems.NewRedis(&scrapeditems.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.itemRepo = repo

	service, err := enrichment.NewOrchestrator(&enrichment.Config{
		ItemRepo:      repo,
		WowheadClient: s.mockWowhead,
		Concurrency:   2,
	})
	s.Require().NoError(err)
	s.service = service
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectFetch(itemID, name, quality string) {
	s.mockWowhead.EXPECT().
		GetItem(gomock.Any(), itemID).
		Return(&wowhead.ItemData{
			ItemID:  itemID,
			Name:    name,
			Quality: quality,
			Icon:    "inv_misc_" + itemID,
			URL:     "https://www.wowhead.com/classic/item=" + itemID,
		}, nil)
	s.mockWowhead.EXPECT().
		GetIconData(gomock.Any(), "inv_misc_"+itemID).
		Return("data:image/jpeg;base64,aWNvbg==", nil)
}

func (s *OrchestratorTestSuite) TestResolveFetchesAndCaches() {
	s.expectFetch("19019", "Thunderfury, Blessed Blade of the Windseeker", "Legendary")

	out, err := s.service.Resolve(s.ctx, &enrichment.ResolveInput{ItemID: "19019"})
	s.Require().NoError(err)
	s.False(out.FromCache)
	s.Equal("Thunderfury, Blessed Blade of the Windseeker", out.Item.Name)
	s.Equal(wow.QualityLegendary, out.Item.Quality)
	s.Equal("data:image/jpeg;base64,aWNvbg==", out.Item.Icon)

	// Second resolve is served from the cache; the mock would fail the
	// test if another upstream call happened.
	again, err := s.service.Resolve(s.ctx, &enrichment.ResolveInput{ItemID: "19019"})
	s.Require().NoError(err)
	s.True(again.FromCache)
	s.Equal(out.Item, again.Item)
}

func (s *OrchestratorTestSuite) TestResolveFetchFailureYieldsPlaceholder() {
	s.mockWowhead.EXPECT().
		GetItem(gomock.Any(), "404404").
		Return(nil, errors.NotFound("item 404404 not found"))

	out, err := s.service.Resolve(s.ctx, &enrichment.ResolveInput{ItemID: "404404"})
	s.Require().NoError(err)
	s.Equal("Unknown Item (404404)", out.Item.Name)
	s.Equal(wow.QualityCommon, out.Item.Quality)
	s.Equal("#", out.Item.URL)
}

func (s *OrchestratorTestSuite) TestResolveIconFailureYieldsPlaceholder() {
	s.mockWowhead.EXPECT().
		GetItem(gomock.Any(), "12345").
		Return(&wowhead.ItemData{ItemID: "12345", Name: "Cured Ham Steak", Quality: "Common", Icon: "inv_misc_food_14"}, nil)
	s.mockWowhead.EXPECT().
		GetIconData(gomock.Any(), "inv_misc_food_14").
		Return("", errors.Unavailable("icon host down"))

	out, err := s.service.Resolve(s.ctx, &enrichment.ResolveInput{ItemID: "12345"})
	s.Require().NoError(err)
	s.Equal("Unknown Item (12345)", out.Item.Name)
}

func (s *OrchestratorTestSuite) TestResolvePlaceholderIsNotCached() {
	s.mockWowhead.EXPECT().
		GetItem(gomock.Any(), "404404").
		Return(nil, errors.Unavailable("wowhead down")).
		Times(2)

	_, err := s.service.Resolve(s.ctx, &enrichment.ResolveInput{ItemID: "404404"})
	s.Require().NoError(err)

	// A later attempt retries the fetch instead of serving the placeholder.
	_, err = s.service.Resolve(s.ctx, &enrichment.ResolveInput{ItemID: "404404"})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestResolveEmptyID() {
	_, err := s.service.Resolve(s.ctx, &enrichment.ResolveInput{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestResolveAll() {
	s.expectFetch("19019", "Thunderfury, Blessed Blade of the Windseeker", "Legendary")
	s.expectFetch("12345", "Cured Ham Steak", "Common")

	out, err := s.service.ResolveAll(s.ctx, &enrichment.ResolveAllInput{
		ItemIDs: []string{"19019", "12345"},
	})
	s.Require().NoError(err)
	s.Len(out.Items, 2)
	s.Equal(0, out.CacheHits)
	s.Equal("Thunderfury, Blessed Blade of the Windseeker", out.Items["19019"].Name)
	s.Equal("Cured Ham Steak", out.Items["12345"].Name)
}

func (s *OrchestratorTestSuite) TestResolveAllCountsCacheHits() {
	s.expectFetch("19019", "Thunderfury, Blessed Blade of the Windseeker", "Legendary")

	_, err := s.service.Resolve(s.ctx, &enrichment.ResolveInput{ItemID: "19019"})
	s.Require().NoError(err)

	s.expectFetch("12345", "Cured Ham Steak", "Common")
	out, err := s.service.ResolveAll(s.ctx, &enrichment.ResolveAllInput{
		ItemIDs: []string{"19019", "12345"},
	})
	s.Require().NoError(err)
	s.Len(out.Items, 2)
	s.Equal(1, out.CacheHits)
}

func (s *OrchestratorTestSuite) TestResolveAllEmpty() {
	out, err := s.service.ResolveAll(s.ctx, &enrichment.ResolveAllInput{})
	s.Require().NoError(err)
	s.Empty(out.Items)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
