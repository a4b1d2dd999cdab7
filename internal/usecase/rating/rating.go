package usecase_rating

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/benhagg/cineniche/internal/model"
)

var (
	ErrFailedToSubmitRating = errors.New("failed to submit rating")
	ErrFailedToDeleteRating = errors.New("failed to delete rating")
	ErrFailedToFetchRatings = errors.New("failed to fetch ratings")
)

type Gateway interface {
	RatingsByMovie(ctx context.Context, showID string) ([]model.Rating, error)
	RatingsByUser(ctx context.Context, userID int) ([]model.Rating, error)
	Rate(ctx context.Context, showID string, rating int, review string) (model.Rating, error)
	DeleteRating(ctx context.Context, userID int, showID string) error
	DeleteSingleRating(ctx context.Context, ratingID int) error
}

// Cache is the process-wide keyed store of raw rating lists. Last write
// wins; no merge.
type Cache interface {
	Set(showID string, ratings []model.Rating) error
	Get(showID string) ([]model.Rating, bool, error)
}

type Usecase struct {
	gateway Gateway
	cache   Cache
	logger  *slog.Logger
}

func New(gateway Gateway, cache Cache) *Usecase {
	return &Usecase{
		gateway: gateway,
		cache:   cache,
		logger:  slog.Default().With("component", "rating"),
	}
}

// AggregateForTitle fetches the title's full rating list, publishes it to
// the cache, and returns the arithmetic mean. Duplicates are averaged
// as-is; the collaborator owns uniqueness. A fetch failure degrades to a
// zero-rating display and never propagates: a ratings outage must not
// block catalog browsing.
func (u *Usecase) AggregateForTitle(ctx context.Context, showID string) model.Aggregate {
	ratings, err := u.gateway.RatingsByMovie(ctx, showID)
	if err != nil {
		u.logger.Warn("ratings fetch failed", "showId", showID, "error", err)
		return model.Aggregate{AverageRating: 0, Ratings: []model.Rating{}}
	}
	if ratings == nil {
		ratings = []model.Rating{}
	}

	if err := u.cache.Set(showID, ratings); err != nil {
		u.logger.Warn("ratings cache write failed", "showId", showID, "error", err)
	}

	return model.Aggregate{
		AverageRating: Average(ratings),
		Ratings:       ratings,
	}
}

// Cached serves views re-deriving aggregates for a title already fetched
// this session, falling back to a fresh aggregation on a miss.
func (u *Usecase) Cached(ctx context.Context, showID string) model.Aggregate {
	ratings, ok, err := u.cache.Get(showID)
	if err != nil {
		u.logger.Warn("ratings cache read failed", "showId", showID, "error", err)
	}
	if !ok {
		return u.AggregateForTitle(ctx, showID)
	}
	return model.Aggregate{
		AverageRating: Average(ratings),
		Ratings:       ratings,
	}
}

func (u *Usecase) RatingsByUser(ctx context.Context, userID int) ([]model.Rating, error) {
	ratings, err := u.gateway.RatingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToFetchRatings, err)
	}
	return ratings, nil
}

// Rate submits a score. User-initiated writes propagate failures unchanged.
func (u *Usecase) Rate(ctx context.Context, showID string, rating int, review string) (model.Rating, error) {
	created, err := u.gateway.Rate(ctx, showID, rating, review)
	if err != nil {
		return model.Rating{}, fmt.Errorf("%w: %w", ErrFailedToSubmitRating, err)
	}
	return created, nil
}

func (u *Usecase) DeleteForUser(ctx context.Context, userID int, showID string) error {
	if err := u.gateway.DeleteRating(ctx, userID, showID); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToDeleteRating, err)
	}
	return nil
}

func (u *Usecase) DeleteSingle(ctx context.Context, ratingID int) error {
	if err := u.gateway.DeleteSingleRating(ctx, ratingID); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToDeleteRating, err)
	}
	return nil
}

// Average is the arithmetic mean of the scores, 0 for an empty list so
// unrated titles render as "0.0 stars" rather than an error state.
func Average(ratings []model.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	return float64(sum) / float64(len(ratings))
}
