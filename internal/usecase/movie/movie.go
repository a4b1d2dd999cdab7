package usecase_movie

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	api_client "github.com/benhagg/cineniche/internal/infra/api"
	"github.com/benhagg/cineniche/internal/model"
	genre_resolver "github.com/benhagg/cineniche/internal/service/genre"
)

var (
	ErrFailedToFetchMovies = errors.New("failed to fetch movies")
	ErrFailedToFetchMovie  = errors.New("failed to fetch movie")
	ErrFailedToFetchGenres = errors.New("failed to fetch genres")
	ErrFailedToCreateMovie = errors.New("failed to create movie")
	ErrFailedToUpdateMovie = errors.New("failed to update movie")
	ErrFailedToDeleteMovie = errors.New("failed to delete movie")
)

type Gateway interface {
	Movies(ctx context.Context, page, pageSize int, genre, search string, kidsMode bool) (api_client.RawPage, error)
	Movie(ctx context.Context, showID string, kidsMode bool) (model.CatalogRecord, error)
	Genres(ctx context.Context) ([]string, error)
	CreateMovie(ctx context.Context, record model.CatalogRecord) (model.CatalogRecord, error)
	UpdateMovie(ctx context.Context, showID string, record model.CatalogRecord) (model.CatalogRecord, error)
	DeleteMovie(ctx context.Context, showID string) error
}

// Aggregator supplies the per-title average; it is designed to degrade to a
// zero aggregate instead of failing.
type Aggregator interface {
	AggregateForTitle(ctx context.Context, showID string) model.Aggregate
}

// Draft carries the fields an editor submits when creating or updating a
// title. Zero values mean "not provided" on update.
type Draft struct {
	ShowID      string
	Title       string
	Genre       string
	Description string
	Director    string
	Year        int
}

type Usecase struct {
	gateway    Gateway
	aggregator Aggregator
	logger     *slog.Logger
}

func New(gateway Gateway, aggregator Aggregator) *Usecase {
	return &Usecase{
		gateway:    gateway,
		aggregator: aggregator,
		logger:     slog.Default().With("component", "movie"),
	}
}

// Browse returns one page of normalized movies. Per-title rating
// aggregation fans out concurrently, one fetch per record; completions may
// interleave arbitrarily and the ratings cache keeps whichever write lands
// last.
func (u *Usecase) Browse(ctx context.Context, page, pageSize int, genre, search string, kidsMode bool) (model.MoviePage, error) {
	raw, err := u.gateway.Movies(ctx, page, pageSize, genre, search, kidsMode)
	if err != nil {
		return model.MoviePage{}, fmt.Errorf("%w: %w", ErrFailedToFetchMovies, err)
	}

	movies := make([]model.Movie, len(raw.Movies))
	var wg sync.WaitGroup
	for i := range raw.Movies {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			record := raw.Movies[i]
			agg := u.aggregator.AggregateForTitle(ctx, record.ShowID)
			movies[i] = Normalize(&record, agg.AverageRating)
		}(i)
	}
	wg.Wait()

	return model.MoviePage{
		Movies:      movies,
		TotalCount:  raw.TotalCount,
		TotalPages:  raw.TotalPages,
		CurrentPage: raw.CurrentPage,
		PageSize:    raw.PageSize,
	}, nil
}

func (u *Usecase) Get(ctx context.Context, showID string, kidsMode bool) (model.Movie, error) {
	record, err := u.gateway.Movie(ctx, showID, kidsMode)
	if err != nil {
		return model.Movie{}, fmt.Errorf("%w: %w", ErrFailedToFetchMovie, err)
	}

	agg := u.aggregator.AggregateForTitle(ctx, record.ShowID)
	return Normalize(&record, agg.AverageRating), nil
}

func (u *Usecase) Genres(ctx context.Context) ([]string, error) {
	genres, err := u.gateway.Genres(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToFetchGenres, err)
	}
	return genres, nil
}

// Create builds a catalog record from an editor draft. The showId defaults
// to a millisecond-stamped identifier when the draft has none.
func (u *Usecase) Create(ctx context.Context, draft Draft) (model.CatalogRecord, error) {
	showID := draft.ShowID
	if showID == "" {
		showID = "m" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	record := model.CatalogRecord{
		ShowID:      showID,
		Type:        "Movie",
		Title:       draft.Title,
		Director:    draft.Director,
		ReleaseYear: draft.Year,
		Description: draft.Description,
	}
	if draft.Genre != "" {
		if ok := genre_resolver.Apply(&record, draft.Genre); !ok {
			u.logger.Warn("unknown genre label on create", "genre", draft.Genre)
		}
	}

	created, err := u.gateway.CreateMovie(ctx, record)
	if err != nil {
		return model.CatalogRecord{}, fmt.Errorf("%w: %w", ErrFailedToCreateMovie, err)
	}
	return created, nil
}

// Update merges the provided draft fields over the existing record so
// unspecified fields and category flags survive the round trip.
func (u *Usecase) Update(ctx context.Context, showID string, draft Draft) (model.CatalogRecord, error) {
	existing, err := u.gateway.Movie(ctx, showID, false)
	if err != nil {
		return model.CatalogRecord{}, fmt.Errorf("%w: %w", ErrFailedToUpdateMovie, err)
	}

	if draft.Title != "" {
		existing.Title = draft.Title
	}
	if draft.Director != "" {
		existing.Director = draft.Director
	}
	if draft.Year != 0 {
		existing.ReleaseYear = draft.Year
	}
	if draft.Description != "" {
		existing.Description = draft.Description
	}
	if draft.Genre != "" {
		if ok := genre_resolver.Apply(&existing, draft.Genre); !ok {
			u.logger.Warn("unknown genre label on update", "genre", draft.Genre)
		}
	}

	updated, err := u.gateway.UpdateMovie(ctx, showID, existing)
	if err != nil {
		return model.CatalogRecord{}, fmt.Errorf("%w: %w", ErrFailedToUpdateMovie, err)
	}
	return updated, nil
}

func (u *Usecase) Delete(ctx context.Context, showID string) error {
	if err := u.gateway.DeleteMovie(ctx, showID); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToDeleteMovie, err)
	}
	return nil
}
