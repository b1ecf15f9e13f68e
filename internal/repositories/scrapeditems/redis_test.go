package scrapeditems_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ahgbank/gbank-api/internal/entities/wow"
	"github.com/ahgbank/gbank-api/internal/errors"
	"github.com/ahgbank/gbank-api/internal/repositories/scrapeditems"
	"github.com/ahgbank/gbank-api/internal/testutils"
)

type RedisScrapedItemsTestSuite struct {
	suite.Suite
	repo    scrapeditems.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisScrapedItemsTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := scrapeditems.NewRedis(&scrapeditems.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisScrapedItemsTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisScrapedItemsTestSuite) testItem(id string) *wow.ScrapedItem {
	return &wow.ScrapedItem{
		ItemID:  id,
		Name:    "Thunderfury, Blessed Blade of the Windseeker",
		Quality: wow.QualityLegendary,
		Icon:    "data:image/jpeg;base64,Zm9v",
		URL:     "https://www.wowhead.com/classic/item=" + id,
	}
}

func (s *RedisScrapedItemsTestSuite) TestUpsertAndGet() {
	item := s.testItem("19019")

	_, err := s.repo.Upsert(s.ctx, scrapeditems.UpsertInput{Item: item})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, scrapeditems.GetInput{ItemID: "19019"})
	s.Require().NoError(err)
	s.Equal(item, out.Item)
}

func (s *RedisScrapedItemsTestSuite) TestUpsertIsIdempotent() {
	item := s.testItem("19019")

	_, err := s.repo.Upsert(s.ctx, scrapeditems.UpsertInput{Item: item})
	s.Require().NoError(err)
	_, err = s.repo.Upsert(s.ctx, scrapeditems.UpsertInput{Item: item})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, scrapeditems.GetInput{ItemID: "19019"})
	s.Require().NoError(err)
	s.Equal(item, out.Item)
}

func (s *RedisScrapedItemsTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, scrapeditems.GetInput{ItemID: "404404"})
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisScrapedItemsTestSuite) TestGetEmptyID() {
	_, err := s.repo.Get(s.ctx, scrapeditems.GetInput{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisScrapedItemsTestSuite) TestUpsertValidation() {
	_, err := s.repo.Upsert(s.ctx, scrapeditems.UpsertInput{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Upsert(s.ctx, scrapeditems.UpsertInput{Item: &wow.ScrapedItem{}})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisScrapedItemsTestSuite) TestListByIDsSkipsMissing() {
	_, err := s.repo.Upsert(s.ctx, scrapeditems.UpsertInput{Item: s.testItem("19019")})
	s.Require().NoError(err)
	_, err = s.repo.Upsert(s.ctx, scrapeditems.UpsertInput{Item: s.testItem("12345")})
	s.Require().NoError(err)

	out, err := s.repo.ListByIDs(s.ctx, scrapeditems.ListByIDsInput{
		ItemIDs: []string{"19019", "404404", "12345"},
	})
	s.Require().NoError(err)
	s.Len(out.Items, 2)

	ids := []string{out.Items[0].ItemID, out.Items[1].ItemID}
	s.ElementsMatch([]string{"19019", "12345"}, ids)
}

func (s *RedisScrapedItemsTestSuite) TestListByIDsEmptyInput() {
	out, err := s.repo.ListByIDs(s.ctx, scrapeditems.ListByIDsInput{})
	s.Require().NoError(err)
	s.Empty(out.Items)
}

func TestRedisScrapedItemsTestSuite(t *testing.T) {
	suite.Run(t, new(RedisScrapedItemsTestSuite))
}
