package api_client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/benhagg/cineniche/internal/model"
)

// Typed wrappers over the collaborator's REST surface. The wire shapes are
// the backend's contract; this layer only fronts them.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is optional on both fields: the collaborator may or may
// not auto-login on registration.
type RegisterResponse struct {
	Token string      `json:"token,omitempty"`
	User  *model.User `json:"user,omitempty"`
}

// RawPage is the paginated catalog envelope before normalization.
type RawPage struct {
	Movies      []model.CatalogRecord `json:"movies"`
	TotalCount  int                   `json:"totalCount"`
	TotalPages  int                   `json:"totalPages"`
	CurrentPage int                   `json:"currentPage"`
	PageSize    int                   `json:"pageSize"`
}

// RawRecommendationSet is the user-recommendation envelope before
// normalization. Absent collections decode to nil and are treated as empty.
type RawRecommendationSet struct {
	Location  []model.CatalogRecord `json:"locationRecommendations"`
	Basic     []model.CatalogRecord `json:"basicRecommendations"`
	Streaming []model.CatalogRecord `json:"streamingRecommendations"`
}

type rateRequest struct {
	ShowID string `json:"showId"`
	Rating int    `json:"rating"`
	Review string `json:"review,omitempty"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (c *Client) Login(ctx context.Context, email, password string) (model.Session, error) {
	var session model.Session
	err := c.Post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &session)
	return session, err
}

func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (RegisterResponse, error) {
	var resp RegisterResponse
	err := c.Post(ctx, "/auth/register", req, &resp)
	return resp, err
}

func (c *Client) UserInfo(ctx context.Context) (model.UserInfo, error) {
	var info model.UserInfo
	err := c.Get(ctx, "/auth/user-info", nil, &info)
	return info, err
}

func (c *Client) UpdateProfile(ctx context.Context, info model.UserInfo) (model.UserInfo, error) {
	var updated model.UserInfo
	err := c.Put(ctx, "/auth/update", info, &updated)
	return updated, err
}

func (c *Client) ChangePassword(ctx context.Context, current, next, confirm string) error {
	return c.Post(ctx, "/auth/change-password", changePasswordRequest{
		CurrentPassword: current,
		NewPassword:     next,
		ConfirmPassword: confirm,
	}, nil)
}

func (c *Client) Movies(ctx context.Context, page, pageSize int, genre, search string, kidsMode bool) (RawPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))
	if genre != "" {
		query.Set("genre", genre)
	}
	if search != "" {
		query.Set("search", search)
	}
	query.Set("kidsMode", strconv.FormatBool(kidsMode))

	var resp RawPage
	err := c.Get(ctx, "/movietitle", query, &resp)
	return resp, err
}

func (c *Client) Movie(ctx context.Context, showID string, kidsMode bool) (model.CatalogRecord, error) {
	query := url.Values{}
	query.Set("kidsMode", strconv.FormatBool(kidsMode))

	var record model.CatalogRecord
	err := c.Get(ctx, "/movietitle/"+url.PathEscape(showID), query, &record)
	return record, err
}

func (c *Client) Genres(ctx context.Context) ([]string, error) {
	var genres []string
	err := c.Get(ctx, "/movietitle/genres", nil, &genres)
	return genres, err
}

func (c *Client) CreateMovie(ctx context.Context, record model.CatalogRecord) (model.CatalogRecord, error) {
	var created model.CatalogRecord
	err := c.Post(ctx, "/movietitle", record, &created)
	return created, err
}

func (c *Client) UpdateMovie(ctx context.Context, showID string, record model.CatalogRecord) (model.CatalogRecord, error) {
	var updated model.CatalogRecord
	err := c.Put(ctx, "/movietitle/"+url.PathEscape(showID), record, &updated)
	return updated, err
}

func (c *Client) DeleteMovie(ctx context.Context, showID string) error {
	return c.Delete(ctx, "/movietitle/"+url.PathEscape(showID), nil)
}

func (c *Client) RatingsByMovie(ctx context.Context, showID string) ([]model.Rating, error) {
	var ratings []model.Rating
	err := c.Get(ctx, "/movierating/movie/"+url.PathEscape(showID), nil, &ratings)
	return ratings, err
}

func (c *Client) RatingsByUser(ctx context.Context, userID int) ([]model.Rating, error) {
	var ratings []model.Rating
	err := c.Get(ctx, "/movierating/user/"+strconv.Itoa(userID), nil, &ratings)
	return ratings, err
}

func (c *Client) Rate(ctx context.Context, showID string, rating int, review string) (model.Rating, error) {
	var created model.Rating
	err := c.Post(ctx, "/movierating", rateRequest{ShowID: showID, Rating: rating, Review: review}, &created)
	return created, err
}

func (c *Client) DeleteRating(ctx context.Context, userID int, showID string) error {
	return c.Delete(ctx, "/movierating/"+strconv.Itoa(userID)+"/"+url.PathEscape(showID), nil)
}

func (c *Client) DeleteSingleRating(ctx context.Context, ratingID int) error {
	return c.Delete(ctx, "/movierating/single/"+strconv.Itoa(ratingID), nil)
}

func (c *Client) RecommendationsForTitle(ctx context.Context, showID string, kidsMode bool) ([]model.CatalogRecord, error) {
	query := url.Values{}
	query.Set("kidsMode", strconv.FormatBool(kidsMode))

	var records []model.CatalogRecord
	err := c.Get(ctx, "/movies/"+url.PathEscape(showID)+"/recommendations", query, &records)
	return records, err
}

func (c *Client) RecommendationsForUser(ctx context.Context, userID string, kidsMode bool) (RawRecommendationSet, error) {
	query := url.Values{}
	query.Set("kidsMode", strconv.FormatBool(kidsMode))

	var set RawRecommendationSet
	err := c.Get(ctx, "/movies/user-recommendations/"+url.PathEscape(userID), query, &set)
	return set, err
}

func (c *Client) PrivacyPolicy(ctx context.Context) (model.PrivacyPolicy, error) {
	var policy model.PrivacyPolicy
	err := c.Get(ctx, "/privacy", nil, &policy)
	return policy, err
}
