package genre_resolver

import "github.com/benhagg/cineniche/internal/model"

// Other is the sentinel label for records with no category flag set.
const Other = "Other"

type flagEntry struct {
	label string
	get   func(*model.CatalogRecord) *model.Flag
}

func entry(label string, field func(*model.CatalogRecord) *model.Flag) flagEntry {
	return flagEntry{label: label, get: field}
}

// flagOrder is static configuration mirroring the collaborator's category
// columns: a fixed total order so cross-genre titles resolve the same way
// on every run. Names and order must match the backend schema exactly;
// "Dcoumentaries" is spelled as the backend column is.
var flagOrder = []flagEntry{
	entry("Action", func(r *model.CatalogRecord) *model.Flag { return &r.Action }),
	entry("Adventure", func(r *model.CatalogRecord) *model.Flag { return &r.Adventure }),
	entry("Anime Series International TV Shows", func(r *model.CatalogRecord) *model.Flag { return &r.AnimeSeriesInternationalTVShows }),
	entry("British TV Shows Docuseries International TV Shows", func(r *model.CatalogRecord) *model.Flag { return &r.BritishTVShowsDocuseriesInternationalTVShows }),
	entry("Children", func(r *model.CatalogRecord) *model.Flag { return &r.Children }),
	entry("Comedy", func(r *model.CatalogRecord) *model.Flag { return &r.Comedy }),
	entry("Comedy Dramas International Movies", func(r *model.CatalogRecord) *model.Flag { return &r.ComedyDramasInternationalMovies }),
	entry("Comedy Romantic Movies", func(r *model.CatalogRecord) *model.Flag { return &r.ComedyRomanticMovies }),
	entry("Crime TV Shows Docuseries", func(r *model.CatalogRecord) *model.Flag { return &r.CrimeTVShowsDocuseries }),
	entry("Dcoumentaries", func(r *model.CatalogRecord) *model.Flag { return &r.Dcoumentaries }),
	entry("Documentaries International Moves", func(r *model.CatalogRecord) *model.Flag { return &r.DocumentariesInternationalMoves }),
	entry("Docuseries", func(r *model.CatalogRecord) *model.Flag { return &r.Docuseries }),
	entry("Drama", func(r *model.CatalogRecord) *model.Flag { return &r.Drama }),
	entry("Drama International Movies", func(r *model.CatalogRecord) *model.Flag { return &r.DramaInternationalMovies }),
	entry("Drama Romantic Movies", func(r *model.CatalogRecord) *model.Flag { return &r.DramaRomanticMovies }),
	entry("Family Movies", func(r *model.CatalogRecord) *model.Flag { return &r.FamilyMovies }),
	entry("Fantasy", func(r *model.CatalogRecord) *model.Flag { return &r.Fantasy }),
	entry("Horror", func(r *model.CatalogRecord) *model.Flag { return &r.Horror }),
	entry("International Movies Thrillers", func(r *model.CatalogRecord) *model.Flag { return &r.InternationalMoviesThrillers }),
	entry("International TV Shows Romantic TV Shows TV Dramas", func(r *model.CatalogRecord) *model.Flag { return &r.InternationalTVShowsRomanticTVShowsTVDramas }),
	entry("Kids' TV", func(r *model.CatalogRecord) *model.Flag { return &r.KidsTV }),
	entry("Language TV Shows", func(r *model.CatalogRecord) *model.Flag { return &r.LanguageTVShows }),
	entry("Musicals", func(r *model.CatalogRecord) *model.Flag { return &r.Musicals }),
	entry("Nature TV", func(r *model.CatalogRecord) *model.Flag { return &r.NatureTV }),
	entry("Reality TV", func(r *model.CatalogRecord) *model.Flag { return &r.RealityTV }),
	entry("Spirituality", func(r *model.CatalogRecord) *model.Flag { return &r.Spirituality }),
	entry("TV Action", func(r *model.CatalogRecord) *model.Flag { return &r.TVAction }),
	entry("TV Comedies", func(r *model.CatalogRecord) *model.Flag { return &r.TVComedies }),
	entry("TV Dramas", func(r *model.CatalogRecord) *model.Flag { return &r.TVDramas }),
	entry("Talk Shows TV Comedies", func(r *model.CatalogRecord) *model.Flag { return &r.TalkShowsTVComedies }),
	entry("Thriller", func(r *model.CatalogRecord) *model.Flag { return &r.Thriller }),
}

// Resolve collapses a record's category flags into exactly one label,
// first truthy flag wins. Never fails.
func Resolve(r *model.CatalogRecord) string {
	for _, e := range flagOrder {
		if *e.get(r) {
			return e.label
		}
	}
	return Other
}

// Apply clears every category flag on the record, then sets the one
// matching the label. Reports whether the label named a known category.
func Apply(r *model.CatalogRecord, label string) bool {
	applied := false
	for _, e := range flagOrder {
		flag := e.get(r)
		*flag = false
		if e.label == label {
			*flag = true
			applied = true
		}
	}
	return applied
}

// Labels returns the display labels in priority order.
func Labels() []string {
	labels := make([]string, len(flagOrder))
	for i, e := range flagOrder {
		labels[i] = e.label
	}
	return labels
}
