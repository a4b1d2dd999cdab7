package model

import (
	"bytes"
	"encoding/json"
)

// Flag is a one-hot category marker. The collaborator serializes these
// columns as 0/1 in some revisions and true/false in others, so both
// decode to the same value.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "1":
		*f = true
		return nil
	case "0", "null":
		*f = false
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	*f = Flag(b)
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// CatalogRecord is a raw title entry exactly as the collaborator returns it.
// Field names mirror the backend schema verbatim, including the
// "Dcoumentaries" column spelling.
type CatalogRecord struct {
	ShowID      string `json:"showId"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Director    string `json:"director"`
	Cast        string `json:"cast"`
	Country     string `json:"country"`
	ReleaseYear int    `json:"releaseYear"`
	Rating      string `json:"rating"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`

	Action                                       Flag `json:"Action"`
	Adventure                                    Flag `json:"Adventure"`
	AnimeSeriesInternationalTVShows              Flag `json:"AnimeSeriesInternationalTVShows"`
	BritishTVShowsDocuseriesInternationalTVShows Flag `json:"BritishTVShowsDocuseriesInternationalTVShows"`
	Children                                     Flag `json:"Children"`
	Comedy                                       Flag `json:"Comedy"`
	ComedyDramasInternationalMovies              Flag `json:"ComedyDramasInternationalMovies"`
	ComedyRomanticMovies                         Flag `json:"ComedyRomanticMovies"`
	CrimeTVShowsDocuseries                       Flag `json:"CrimeTVShowsDocuseries"`
	Dcoumentaries                                Flag `json:"Dcoumentaries"`
	DocumentariesInternationalMoves              Flag `json:"DocumentariesInternationalMoves"`
	Docuseries                                   Flag `json:"Docuseries"`
	Drama                                        Flag `json:"Drama"`
	DramaInternationalMovies                     Flag `json:"DramaInternationalMovies"`
	DramaRomanticMovies                          Flag `json:"DramaRomanticMovies"`
	FamilyMovies                                 Flag `json:"FamilyMovies"`
	Fantasy                                      Flag `json:"Fantasy"`
	Horror                                       Flag `json:"Horror"`
	InternationalMoviesThrillers                 Flag `json:"InternationalMoviesThrillers"`
	InternationalTVShowsRomanticTVShowsTVDramas  Flag `json:"InternationalTVShowsRomanticTVShowsTVDramas"`
	KidsTV                                       Flag `json:"KidsTV"`
	LanguageTVShows                              Flag `json:"LanguageTVShows"`
	Musicals                                     Flag `json:"Musicals"`
	NatureTV                                     Flag `json:"NatureTV"`
	RealityTV                                    Flag `json:"RealityTV"`
	Spirituality                                 Flag `json:"Spirituality"`
	TVAction                                     Flag `json:"TVAction"`
	TVComedies                                   Flag `json:"TVComedies"`
	TVDramas                                     Flag `json:"TVDramas"`
	TalkShowsTVComedies                          Flag `json:"TalkShowsTVComedies"`
	Thriller                                     Flag `json:"Thriller"`
}

// Movie is the normalized, display-ready projection of a CatalogRecord.
// Every field carries a value; consumers render them unconditionally.
type Movie struct {
	ShowID        string  `json:"showId"`
	Type          string  `json:"type"`
	Title         string  `json:"title"`
	Genre         string  `json:"genre"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"imageUrl"`
	ReleaseYear   int     `json:"releaseYear"`
	Director      string  `json:"director"`
	Cast          string  `json:"cast"`
	Duration      string  `json:"duration"`
	Country       string  `json:"country"`
	ContentRating string  `json:"contentRating"`
	AverageRating float64 `json:"averageRating"`
}

// MoviePage is the paginated catalog envelope.
type MoviePage struct {
	Movies      []Movie `json:"movies"`
	TotalCount  int     `json:"totalCount"`
	TotalPages  int     `json:"totalPages"`
	CurrentPage int     `json:"currentPage"`
	PageSize    int     `json:"pageSize"`
}
