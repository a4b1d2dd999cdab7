//go:build !integration
// +build !integration

package usecase_recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	api_client "github.com/benhagg/cineniche/internal/infra/api"
	"github.com/benhagg/cineniche/internal/model"
	"github.com/benhagg/cineniche/internal/usecase/recommend/mocks"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseRecommendSuite struct {
	suite.Suite
}

type resources struct {
	usecase    *Usecase
	gateway    *mocks.Gateway
	aggregator *mocks.Aggregator
	ctx        context.Context
}

func initResources(t provider.T) *resources {
	gateway := mocks.NewGateway(t)
	aggregator := mocks.NewAggregator(t)

	return &resources{
		usecase:    New(gateway, aggregator),
		gateway:    gateway,
		aggregator: aggregator,
		ctx:        context.Background(),
	}
}

func (suite *UsecaseRecommendSuite) TestForUser(t provider.T) {
	t.Parallel()

	t.Run("Should normalize all three collections", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		raw := api_client.RawRecommendationSet{
			Location:  []model.CatalogRecord{{ShowID: "s100", Title: "Midnight Heist", Action: true}},
			Basic:     []model.CatalogRecord{{ShowID: "s101", Title: "The Quiet Orchard", Drama: true}},
			Streaming: []model.CatalogRecord{{ShowID: "s104", Title: "Sunday Pancakes", Comedy: true}},
		}

		r.gateway.On("RecommendationsForUser", r.ctx, "7", false).Return(raw, nil).Once()
		r.aggregator.On("AggregateForTitle", r.ctx, mock.AnythingOfType("string")).Return(model.Aggregate{AverageRating: 4, Ratings: []model.Rating{}}).Times(3)

		set := r.usecase.ForUser(r.ctx, "7", false)
		assert.Len(t, set.Location, 1)
		assert.Len(t, set.Basic, 1)
		assert.Len(t, set.Streaming, 1)
		assert.Equal(t, "Action", set.Location[0].Genre)
		assert.Equal(t, float64(4), set.Basic[0].AverageRating)
	})

	t.Run("Should treat an absent collection as empty", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		raw := api_client.RawRecommendationSet{
			Basic: []model.CatalogRecord{{ShowID: "s101", Drama: true}},
		}

		r.gateway.On("RecommendationsForUser", r.ctx, "7", false).Return(raw, nil).Once()
		r.aggregator.On("AggregateForTitle", r.ctx, "s101").Return(model.Aggregate{Ratings: []model.Rating{}}).Once()

		set := r.usecase.ForUser(r.ctx, "7", false)
		assert.NotNil(t, set.Location)
		assert.Empty(t, set.Location)
		assert.Len(t, set.Basic, 1)
		assert.NotNil(t, set.Streaming)
		assert.Empty(t, set.Streaming)
	})

	t.Run("Should degrade to an all-empty set on failure", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.gateway.On("RecommendationsForUser", r.ctx, "7", true).Return(api_client.RawRecommendationSet{}, errors.New("model offline")).Once()

		set := r.usecase.ForUser(r.ctx, "7", true)
		assert.Equal(t, model.EmptyRecommendationSet(), set)
	})
}

func (suite *UsecaseRecommendSuite) TestForTitle(t provider.T) {
	t.Parallel()

	t.Run("Should normalize the related titles", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		records := []model.CatalogRecord{
			{ShowID: "s103", Title: "Last Train North", Drama: true},
			{ShowID: "s106", Title: "Paper Lanterns", Drama: true},
		}

		r.gateway.On("RecommendationsForTitle", r.ctx, "s101", false).Return(records, nil).Once()
		r.aggregator.On("AggregateForTitle", r.ctx, mock.AnythingOfType("string")).Return(model.Aggregate{Ratings: []model.Rating{}}).Times(2)

		movies := r.usecase.ForTitle(r.ctx, "s101", false)
		assert.Len(t, movies, 2)
		assert.Equal(t, "s103", movies[0].ShowID)
		assert.Equal(t, "Drama", movies[1].Genre)
	})

	t.Run("Should degrade to an empty list on failure", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.gateway.On("RecommendationsForTitle", r.ctx, "s101", false).Return(nil, errors.New("model offline")).Once()

		movies := r.usecase.ForTitle(r.ctx, "s101", false)
		assert.NotNil(t, movies)
		assert.Empty(t, movies)
	})
}

func TestUsecaseRecommendSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseRecommendSuite))
}
