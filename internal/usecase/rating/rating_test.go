//go:build !integration
// +build !integration

package usecase_rating

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/benhagg/cineniche/internal/model"
	"github.com/benhagg/cineniche/internal/usecase/rating/mocks"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseRatingSuite struct {
	suite.Suite
}

type resources struct {
	usecase *Usecase
	gateway *mocks.Gateway
	cache   *mocks.Cache
	ctx     context.Context
}

func initResources(t provider.T) *resources {
	gateway := mocks.NewGateway(t)
	cache := mocks.NewCache(t)

	return &resources{
		usecase: New(gateway, cache),
		gateway: gateway,
		cache:   cache,
		ctx:     context.Background(),
	}
}

func (suite *UsecaseRatingSuite) TestAverage(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		ratings  []model.Rating
		expected float64
	}{
		{
			name:     "Should average a plain list",
			ratings:  []model.Rating{{Rating: 4}, {Rating: 5}},
			expected: 4.5,
		},
		{
			name:     "Should count duplicate submissions as-is",
			ratings:  []model.Rating{{UserID: 7, Rating: 5}, {UserID: 7, Rating: 5}, {UserID: 8, Rating: 2}},
			expected: 4,
		},
		{
			name:     "Should return zero for an empty list",
			ratings:  []model.Rating{},
			expected: 0,
		},
		{
			name:     "Should return zero for nil",
			ratings:  nil,
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, Average(tc.ratings))
		})
	}
}

func (suite *UsecaseRatingSuite) TestAggregateForTitle(t provider.T) {
	t.Parallel()

	t.Run("Should publish the fetched list and return the mean", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		ratings := []model.Rating{
			{RatingID: 1, UserID: 7, ShowID: "s100", Rating: 4},
			{RatingID: 2, UserID: 8, ShowID: "s100", Rating: 5},
		}

		r.gateway.On("RatingsByMovie", r.ctx, "s100").Return(ratings, nil).Once()
		r.cache.On("Set", "s100", ratings).Return(nil).Once()

		agg := r.usecase.AggregateForTitle(r.ctx, "s100")
		assert.Equal(t, 4.5, agg.AverageRating)
		assert.Equal(t, ratings, agg.Ratings)
	})

	t.Run("Should cache an unrated title as an empty list", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.gateway.On("RatingsByMovie", r.ctx, "s999").Return(nil, nil).Once()
		r.cache.On("Set", "s999", []model.Rating{}).Return(nil).Once()

		agg := r.usecase.AggregateForTitle(r.ctx, "s999")
		assert.Equal(t, float64(0), agg.AverageRating)
		assert.NotNil(t, agg.Ratings)
		assert.Empty(t, agg.Ratings)
	})

	t.Run("Should degrade to a zero aggregate on fetch failure", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.gateway.On("RatingsByMovie", r.ctx, "s100").Return(nil, errors.New("ratings outage")).Once()

		agg := r.usecase.AggregateForTitle(r.ctx, "s100")
		assert.Equal(t, float64(0), agg.AverageRating)
		assert.Empty(t, agg.Ratings)
		r.cache.AssertNotCalled(t, "Set")
	})

	t.Run("Should ignore cache write failures", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		ratings := []model.Rating{{RatingID: 1, ShowID: "s100", Rating: 3}}

		r.gateway.On("RatingsByMovie", r.ctx, "s100").Return(ratings, nil).Once()
		r.cache.On("Set", "s100", ratings).Return(errors.New("cache down")).Once()

		agg := r.usecase.AggregateForTitle(r.ctx, "s100")
		assert.Equal(t, float64(3), agg.AverageRating)
	})
}

func (suite *UsecaseRatingSuite) TestCached(t provider.T) {
	t.Parallel()

	t.Run("Should serve a hit without touching the collaborator", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		ratings := []model.Rating{{RatingID: 1, ShowID: "s100", Rating: 4}, {RatingID: 2, ShowID: "s100", Rating: 2}}

		r.cache.On("Get", "s100").Return(ratings, true, nil).Once()

		agg := r.usecase.Cached(r.ctx, "s100")
		assert.Equal(t, float64(3), agg.AverageRating)
		assert.Equal(t, ratings, agg.Ratings)
		r.gateway.AssertNotCalled(t, "RatingsByMovie")
	})

	t.Run("Should fall back to a fresh aggregation on a miss", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		ratings := []model.Rating{{RatingID: 1, ShowID: "s100", Rating: 5}}

		r.cache.On("Get", "s100").Return(nil, false, nil).Once()
		r.gateway.On("RatingsByMovie", r.ctx, "s100").Return(ratings, nil).Once()
		r.cache.On("Set", "s100", ratings).Return(nil).Once()

		agg := r.usecase.Cached(r.ctx, "s100")
		assert.Equal(t, float64(5), agg.AverageRating)
	})

	t.Run("Should treat a cache read failure as a miss", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		ratings := []model.Rating{{RatingID: 1, ShowID: "s100", Rating: 4}}

		r.cache.On("Get", "s100").Return(nil, false, errors.New("cache down")).Once()
		r.gateway.On("RatingsByMovie", r.ctx, "s100").Return(ratings, nil).Once()
		r.cache.On("Set", "s100", ratings).Return(nil).Once()

		agg := r.usecase.Cached(r.ctx, "s100")
		assert.Equal(t, float64(4), agg.AverageRating)
	})
}

func (suite *UsecaseRatingSuite) TestRate(t provider.T) {
	t.Parallel()

	t.Run("Should return the created rating", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		created := model.Rating{RatingID: 42, UserID: 7, ShowID: "s100", Rating: 5, Review: "great"}

		r.gateway.On("Rate", r.ctx, "s100", 5, "great").Return(created, nil).Once()

		got, err := r.usecase.Rate(r.ctx, "s100", 5, "great")
		assert.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("Should propagate submission failures", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.gateway.On("Rate", r.ctx, "s100", 5, "").Return(model.Rating{}, errors.New("unauthorized")).Once()

		_, err := r.usecase.Rate(r.ctx, "s100", 5, "")
		assert.ErrorIs(t, err, ErrFailedToSubmitRating)
		assert.Contains(t, err.Error(), "unauthorized")
	})
}

func (suite *UsecaseRatingSuite) TestRatingsByUser(t provider.T) {
	t.Parallel()

	t.Run("Should return the user's rating history", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		ratings := []model.Rating{{RatingID: 1, UserID: 7, ShowID: "s100", Rating: 4}}

		r.gateway.On("RatingsByUser", r.ctx, 7).Return(ratings, nil).Once()

		got, err := r.usecase.RatingsByUser(r.ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, ratings, got)
	})

	t.Run("Should wrap fetch failures", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.gateway.On("RatingsByUser", r.ctx, 7).Return(nil, errors.New("boom")).Once()

		_, err := r.usecase.RatingsByUser(r.ctx, 7)
		assert.ErrorIs(t, err, ErrFailedToFetchRatings)
	})
}

func (suite *UsecaseRatingSuite) TestDelete(t provider.T) {
	t.Parallel()

	t.Run("Should delete by user and title", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.gateway.On("DeleteRating", r.ctx, 7, "s100").Return(nil).Once()
		assert.NoError(t, r.usecase.DeleteForUser(r.ctx, 7, "s100"))
	})

	t.Run("Should delete a single rating by id", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.gateway.On("DeleteSingleRating", r.ctx, 42).Return(nil).Once()
		assert.NoError(t, r.usecase.DeleteSingle(r.ctx, 42))
	})

	t.Run("Should wrap delete failures", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.gateway.On("DeleteRating", r.ctx, 7, "s100").Return(errors.New("forbidden")).Once()
		assert.ErrorIs(t, r.usecase.DeleteForUser(r.ctx, 7, "s100"), ErrFailedToDeleteRating)
	})
}

func TestUsecaseRatingSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseRatingSuite))
}
