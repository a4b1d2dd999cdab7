package usecase_movie

import (
	"net/url"

	"github.com/benhagg/cineniche/internal/model"
	genre_resolver "github.com/benhagg/cineniche/internal/service/genre"
)

const unknownField = "Unknown"

// Normalize projects one raw catalog record into the canonical movie view.
// Pure given its inputs: genre resolution cannot fail and every optional
// field gets an explicit placeholder, so consumers render unconditionally.
func Normalize(record *model.CatalogRecord, averageRating float64) model.Movie {
	return model.Movie{
		ShowID:        record.ShowID,
		Type:          defaultString(record.Type, "Movie"),
		Title:         record.Title,
		Genre:         genre_resolver.Resolve(record),
		Description:   record.Description,
		ImageURL:      imageURL(record),
		ReleaseYear:   record.ReleaseYear,
		Director:      defaultString(record.Director, unknownField),
		Cast:          defaultString(record.Cast, unknownField),
		Duration:      defaultString(record.Duration, unknownField),
		Country:       record.Country,
		ContentRating: record.Rating,
		AverageRating: averageRating,
	}
}

// imageURL percent-encodes the raw reference for safe embedding, or falls
// back to the deterministic per-identifier placeholder path.
func imageURL(record *model.CatalogRecord) string {
	if record.ImageURL == "" {
		return "/images/" + record.ShowID + ".jpg"
	}
	u, err := url.Parse(record.ImageURL)
	if err != nil {
		return "/images/" + record.ShowID + ".jpg"
	}
	return u.String()
}

func defaultString(val, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}
