package model

import "time"

// Rating is one user's score for one title. The collaborator is the
// authority on (user, title) uniqueness; nothing here assumes it.
type Rating struct {
	RatingID  int        `json:"ratingId,omitempty"`
	UserID    int        `json:"userId"`
	ShowID    string     `json:"showId"`
	Rating    int        `json:"rating"`
	Review    string     `json:"review,omitempty"`
	UserName  string     `json:"userName,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Aggregate is the display-ready view of a title's ratings.
type Aggregate struct {
	AverageRating float64  `json:"averageRating"`
	Ratings       []Rating `json:"ratings"`
}
