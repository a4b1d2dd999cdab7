package backendmock

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/benhagg/cineniche/internal/model"
	genre_resolver "github.com/benhagg/cineniche/internal/service/genre"
)

func intToString(v int) string {
	return strconv.Itoa(v)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	s.mu.RLock()
	acc, ok := s.users[strings.ToLower(req.Email)]
	s.mu.RUnlock()
	if !ok || bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}

	token, err := s.issueToken(acc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": acc.toUser()})
}

func (s *Server) register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email and password are required"})
		return
	}
	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"message": "passwords do not match"})
		return
	}

	key := strings.ToLower(req.Email)
	s.mu.Lock()
	if _, exists := s.users[key]; exists {
		s.mu.Unlock()
		c.JSON(http.StatusConflict, gin.H{"message": "user already exists"})
		return
	}
	acc := &account{
		ID:           s.nextUserID,
		Email:        req.Email,
		PasswordHash: hashPassword(req.Password),
		Roles:        []string{"User"},
		Info: model.UserInfo{
			Email:    req.Email,
			Name:     req.FullName,
			Phone:    req.Phone,
			Username: req.Username,
			Age:      req.Age,
			Gender:   req.Gender,
			City:     req.City,
			State:    req.State,
			Zip:      req.Zip,
			Services: req.Services,
		},
	}
	s.nextUserID++
	s.users[key] = acc
	s.mu.Unlock()

	// Auto-login behavior: registration returns a live session.
	token, err := s.issueToken(acc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to issue token"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": acc.toUser()})
}

func (s *Server) userInfo(c *gin.Context) {
	acc := currentAccount(c)
	c.JSON(http.StatusOK, acc.Info)
}

func (s *Server) updateProfile(c *gin.Context) {
	var info model.UserInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	acc := currentAccount(c)
	s.mu.Lock()
	if info.Name != "" {
		acc.Info.Name = info.Name
	}
	if info.Phone != "" {
		acc.Info.Phone = info.Phone
	}
	if info.Age != "" {
		acc.Info.Age = info.Age
	}
	if info.City != "" {
		acc.Info.City = info.City
	}
	if info.State != "" {
		acc.Info.State = info.State
	}
	if info.Zip != "" {
		acc.Info.Zip = info.Zip
	}
	if info.Services != nil {
		acc.Info.Services = info.Services
	}
	updated := acc.Info
	s.mu.Unlock()

	c.JSON(http.StatusOK, updated)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

func (s *Server) changePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"message": "passwords do not match"})
		return
	}

	acc := currentAccount(c)
	if bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(req.CurrentPassword)) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "current password is incorrect"})
		return
	}

	s.mu.Lock()
	acc.PasswordHash = hashPassword(req.NewPassword)
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

func (s *Server) listMovies(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	genre := c.Query("genre")
	search := strings.ToLower(c.Query("search"))
	kidsMode := c.Query("kidsMode") == "true"
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	s.mu.RLock()
	filtered := make([]model.CatalogRecord, 0, len(s.movies))
	for i := range s.movies {
		record := s.movies[i]
		if kidsMode && !kidFriendly(&record) {
			continue
		}
		if genre != "" && genre_resolver.Resolve(&record) != genre {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(record.Title), search) {
			continue
		}
		filtered = append(filtered, record)
	}
	s.mu.RUnlock()

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"movies":      filtered[start:end],
		"totalCount":  total,
		"totalPages":  totalPages,
		"currentPage": page,
		"pageSize":    pageSize,
	})
}

func (s *Server) getMovie(c *gin.Context) {
	kidsMode := c.Query("kidsMode") == "true"

	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.movies {
		if s.movies[i].ShowID == c.Param("id") {
			if kidsMode && !kidFriendly(&s.movies[i]) {
				c.JSON(http.StatusNotFound, gin.H{"message": "title not available"})
				return
			}
			c.JSON(http.StatusOK, s.movies[i])
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "title not found"})
}

func (s *Server) genres(c *gin.Context) {
	c.JSON(http.StatusOK, genre_resolver.Labels())
}

func (s *Server) createMovie(c *gin.Context) {
	var record model.CatalogRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if record.ShowID == "" {
		record.ShowID = "m" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	s.mu.Lock()
	s.movies = append(s.movies, record)
	s.mu.Unlock()
	c.JSON(http.StatusCreated, record)
}

func (s *Server) updateMovie(c *gin.Context) {
	var record model.CatalogRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.movies {
		if s.movies[i].ShowID == c.Param("id") {
			record.ShowID = c.Param("id")
			s.movies[i] = record
			c.JSON(http.StatusOK, record)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "title not found"})
}

func (s *Server) deleteMovie(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.movies {
		if s.movies[i].ShowID == c.Param("id") {
			s.movies = append(s.movies[:i], s.movies[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "deleted"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "title not found"})
}

func (s *Server) ratingsByMovie(c *gin.Context) {
	showID := c.Param("id")
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Rating, 0)
	for _, r := range s.ratings {
		if r.ShowID == showID {
			out = append(out, r)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) ratingsByUser(c *gin.Context) {
	userID, _ := strconv.Atoi(c.Param("id"))
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Rating, 0)
	for _, r := range s.ratings {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	c.JSON(http.StatusOK, out)
}

type rateRequest struct {
	ShowID string `json:"showId" binding:"required"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review"`
}

func (s *Server) rate(c *gin.Context) {
	var req rateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	acc := currentAccount(c)
	now := time.Now()
	s.mu.Lock()
	rating := model.Rating{
		RatingID:  s.nextRateID,
		UserID:    acc.ID,
		ShowID:    req.ShowID,
		Rating:    req.Rating,
		Review:    req.Review,
		UserName:  acc.Info.Name,
		CreatedAt: &now,
	}
	s.nextRateID++
	s.ratings = append(s.ratings, rating)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, rating)
}

func (s *Server) deleteRating(c *gin.Context) {
	userID, _ := strconv.Atoi(c.Param("userId"))
	showID := c.Param("showId")

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.ratings[:0]
	removed := false
	for _, r := range s.ratings {
		if r.UserID == userID && r.ShowID == showID {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	s.ratings = kept
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"message": "rating not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (s *Server) deleteSingleRating(c *gin.Context) {
	ratingID, _ := strconv.Atoi(c.Param("ratingId"))

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.ratings {
		if r.RatingID == ratingID {
			s.ratings = append(s.ratings[:i], s.ratings[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "deleted"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "rating not found"})
}

func (s *Server) titleRecommendations(c *gin.Context) {
	showID := c.Param("id")
	kidsMode := c.Query("kidsMode") == "true"

	s.mu.RLock()
	defer s.mu.RUnlock()
	var source *model.CatalogRecord
	for i := range s.movies {
		if s.movies[i].ShowID == showID {
			source = &s.movies[i]
			break
		}
	}
	if source == nil {
		c.JSON(http.StatusOK, []model.CatalogRecord{})
		return
	}

	genre := genre_resolver.Resolve(source)
	out := make([]model.CatalogRecord, 0, 10)
	for i := range s.movies {
		record := s.movies[i]
		if record.ShowID == showID {
			continue
		}
		if kidsMode && !kidFriendly(&record) {
			continue
		}
		if genre_resolver.Resolve(&record) == genre {
			out = append(out, record)
		}
		if len(out) == 10 {
			break
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) userRecommendations(c *gin.Context) {
	kidsMode := c.Query("kidsMode") == "true"

	s.mu.RLock()
	defer s.mu.RUnlock()
	pool := make([]model.CatalogRecord, 0, len(s.movies))
	for i := range s.movies {
		if kidsMode && !kidFriendly(&s.movies[i]) {
			continue
		}
		pool = append(pool, s.movies[i])
	}

	// Deterministic slices stand in for the real recommendation models.
	c.JSON(http.StatusOK, gin.H{
		"locationRecommendations":  sliceOf(pool, 0, 5),
		"basicRecommendations":     sliceOf(pool, 5, 10),
		"streamingRecommendations": sliceOf(pool, 10, 15),
	})
}

func sliceOf(pool []model.CatalogRecord, start, end int) []model.CatalogRecord {
	if start > len(pool) {
		start = len(pool)
	}
	if end > len(pool) {
		end = len(pool)
	}
	return pool[start:end]
}

func kidFriendly(record *model.CatalogRecord) bool {
	if record.Horror || record.Thriller || record.InternationalMoviesThrillers {
		return false
	}
	switch record.Rating {
	case "R", "TV-MA", "NC-17":
		return false
	}
	return true
}

func (s *Server) privacy(c *gin.Context) {
	c.JSON(http.StatusOK, model.PrivacyPolicy{
		Title:       "Privacy Policy",
		LastUpdated: "2025-04-08",
		Sections: []model.PrivacySection{
			{Title: "Data We Collect", Content: "Account details, ratings, and viewing preferences."},
			{Title: "How We Use Data", Content: "Ratings and preferences power the recommendation lists."},
			{Title: "Your Rights", Content: "You may update or delete your profile and ratings at any time."},
		},
	})
}
