package backendmock

import (
	"time"

	"github.com/benhagg/cineniche/internal/model"
)

// seed loads a small catalog, two accounts (admin/viewer) and a handful of
// ratings so every endpoint has data to serve out of the box.
func (s *Server) seed() {
	admin := &account{
		ID:           s.nextUserID,
		Email:        "admin@cineniche.dev",
		PasswordHash: hashPassword("admin123"),
		Roles:        []string{model.AdminRole, "User"},
		Info:         model.UserInfo{Email: "admin@cineniche.dev", Name: "Site Admin"},
	}
	s.nextUserID++
	viewer := &account{
		ID:           s.nextUserID,
		Email:        "viewer@cineniche.dev",
		PasswordHash: hashPassword("viewer123"),
		Roles:        []string{"User"},
		Info:         model.UserInfo{Email: "viewer@cineniche.dev", Name: "Vera Viewer", Age: "34"},
	}
	s.nextUserID++
	s.users[admin.Email] = admin
	s.users[viewer.Email] = viewer

	s.movies = []model.CatalogRecord{
		{ShowID: "s100", Type: "Movie", Title: "Midnight Heist", Director: "R. Calloway", Cast: "J. Barnes, L. Osei", Country: "United States", ReleaseYear: 2019, Rating: "PG-13", Duration: "112 min", Description: "A retired safecracker takes one last job.", Action: true, Thriller: true},
		{ShowID: "s101", Type: "Movie", Title: "The Quiet Orchard", Director: "M. Iversen", Cast: "A. Lindqvist", Country: "Sweden", ReleaseYear: 2021, Rating: "PG", Duration: "98 min", Description: "Two siblings inherit a failing farm.", Drama: true},
		{ShowID: "s102", Type: "TV Show", Title: "Galaxy Scouts", Cast: "voice cast", Country: "United States", ReleaseYear: 2020, Rating: "TV-Y", Duration: "2 Seasons", Description: "Junior explorers map the outer planets.", Children: true, KidsTV: true},
		{ShowID: "s103", Type: "Movie", Title: "Last Train North", Director: "P. Duval", Cast: "C. Mbeki, H. Tanaka", Country: "France", ReleaseYear: 2018, Rating: "R", Duration: "124 min", Description: "A war correspondent retraces a lost dispatch.", Drama: true, InternationalMoviesThrillers: true},
		{ShowID: "s104", Type: "Movie", Title: "Sunday Pancakes", Director: "E. Okafor", Cast: "T. Reyes", Country: "Canada", ReleaseYear: 2022, Rating: "G", Duration: "89 min", Description: "A family diner outlives its neighborhood.", Comedy: true, FamilyMovies: true},
		{ShowID: "s105", Type: "Movie", Title: "Hollow Signal", Director: "K. Brandt", Cast: "S. Varga", Country: "Germany", ReleaseYear: 2017, Rating: "TV-MA", Duration: "101 min", Description: "A radio engineer hears tomorrow's broadcast.", Horror: true, Thriller: true},
		{ShowID: "s106", Type: "Movie", Title: "Paper Lanterns", Director: "Y. Chen", Cast: "M. Wong, K. Ito", Country: "Taiwan", ReleaseYear: 2023, Rating: "PG", Duration: "107 min", Description: "A lantern maker mentors a runaway apprentice.", Drama: true, DramaInternationalMovies: true},
		{ShowID: "s107", Type: "TV Show", Title: "Desert Kitchens", Country: "Australia", ReleaseYear: 2019, Rating: "TV-G", Duration: "3 Seasons", Description: "Outback cooks compete with pantry staples.", RealityTV: true},
		{ShowID: "s108", Type: "Movie", Title: "The Second Act", Director: "B. Santos", Cast: "R. Flores, D. Kim", Country: "United States", ReleaseYear: 2020, Rating: "PG-13", Duration: "116 min", Description: "An understudy inherits the lead on opening night.", Comedy: true, ComedyRomanticMovies: true},
		{ShowID: "s109", Type: "Movie", Title: "Iron Meridian", Director: "V. Petrov", Cast: "N. Novak", Country: "United Kingdom", ReleaseYear: 2016, Rating: "PG-13", Duration: "130 min", Description: "A cartographer races to close a colonial-era map fraud.", Action: true, Adventure: true},
	}

	created := time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC)
	s.ratings = []model.Rating{
		{RatingID: s.nextRateID, UserID: viewer.ID, ShowID: "s100", Rating: 4, Review: "Tight pacing.", UserName: viewer.Info.Name, CreatedAt: &created},
		{RatingID: s.nextRateID + 1, UserID: admin.ID, ShowID: "s100", Rating: 5, UserName: admin.Info.Name, CreatedAt: &created},
		{RatingID: s.nextRateID + 2, UserID: viewer.ID, ShowID: "s101", Rating: 3, Review: "Slow but warm.", UserName: viewer.Info.Name, CreatedAt: &created},
		{RatingID: s.nextRateID + 3, UserID: admin.ID, ShowID: "s104", Rating: 4, UserName: admin.Info.Name, CreatedAt: &created},
	}
	s.nextRateID += len(s.ratings)
}
