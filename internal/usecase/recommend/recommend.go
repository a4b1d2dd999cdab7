package usecase_recommend

import (
	"context"
	"log/slog"

	api_client "github.com/benhagg/cineniche/internal/infra/api"
	"github.com/benhagg/cineniche/internal/model"
	usecase_movie "github.com/benhagg/cineniche/internal/usecase/movie"
)

type Gateway interface {
	RecommendationsForUser(ctx context.Context, userID string, kidsMode bool) (api_client.RawRecommendationSet, error)
	RecommendationsForTitle(ctx context.Context, showID string, kidsMode bool) ([]model.CatalogRecord, error)
}

type Aggregator interface {
	AggregateForTitle(ctx context.Context, showID string) model.Aggregate
}

// Usecase assembles the collaborator's recommendation collections into
// normalized movie lists. Recommendations are a non-critical enhancement:
// every failure path degrades to empty collections, never an error.
type Usecase struct {
	gateway    Gateway
	aggregator Aggregator
	logger     *slog.Logger
}

func New(gateway Gateway, aggregator Aggregator) *Usecase {
	return &Usecase{
		gateway:    gateway,
		aggregator: aggregator,
		logger:     slog.Default().With("component", "recommend"),
	}
}

// ForUser fetches the three named collections. A collection absent from
// the raw response is an empty list, not an error; a failed top-level
// request yields an all-empty set.
func (u *Usecase) ForUser(ctx context.Context, userID string, kidsMode bool) model.RecommendationSet {
	raw, err := u.gateway.RecommendationsForUser(ctx, userID, kidsMode)
	if err != nil {
		u.logger.Warn("user recommendations fetch failed", "userId", userID, "error", err)
		return model.EmptyRecommendationSet()
	}

	return model.RecommendationSet{
		Location:  u.normalizeAll(ctx, raw.Location),
		Basic:     u.normalizeAll(ctx, raw.Basic),
		Streaming: u.normalizeAll(ctx, raw.Streaming),
	}
}

// ForTitle fetches titles related to the given one as a flat list.
func (u *Usecase) ForTitle(ctx context.Context, showID string, kidsMode bool) []model.Movie {
	records, err := u.gateway.RecommendationsForTitle(ctx, showID, kidsMode)
	if err != nil {
		u.logger.Warn("title recommendations fetch failed", "showId", showID, "error", err)
		return []model.Movie{}
	}
	return u.normalizeAll(ctx, records)
}

func (u *Usecase) normalizeAll(ctx context.Context, records []model.CatalogRecord) []model.Movie {
	movies := make([]model.Movie, len(records))
	for i := range records {
		agg := u.aggregator.AggregateForTitle(ctx, records[i].ShowID)
		movies[i] = usecase_movie.Normalize(&records[i], agg.AverageRating)
	}
	return movies
}
