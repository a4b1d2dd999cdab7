package backendmock

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/benhagg/cineniche/internal/model"
)

// Server is an in-process stand-in for the catalog collaborator, serving
// the same REST surface over seeded in-memory data. It backs local
// development (cmd/mockapi) and the end-to-end suite; it is not the
// production backend.
type Server struct {
	jwtSecret []byte

	mu         sync.RWMutex
	users      map[string]*account
	movies     []model.CatalogRecord
	ratings    []model.Rating
	nextUserID int
	nextRateID int
}

type account struct {
	ID           int
	Email        string
	PasswordHash []byte
	Roles        []string
	Info         model.UserInfo
}

func New(jwtSecret string) *Server {
	s := &Server{
		jwtSecret:  []byte(jwtSecret),
		users:      make(map[string]*account),
		nextUserID: 1,
		nextRateID: 1,
	}
	s.seed()
	return s
}

func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", s.login)
			auth.POST("/register", s.register)
			auth.GET("/user-info", s.authRequired(), s.userInfo)
			auth.PUT("/update", s.authRequired(), s.updateProfile)
			auth.POST("/change-password", s.authRequired(), s.changePassword)
		}

		titles := api.Group("/movietitle")
		{
			titles.GET("", s.listMovies)
			titles.GET("/genres", s.genres)
			titles.GET("/:id", s.getMovie)
			titles.POST("", s.authRequired(), s.adminRequired(), s.createMovie)
			titles.PUT("/:id", s.authRequired(), s.adminRequired(), s.updateMovie)
			titles.DELETE("/:id", s.authRequired(), s.adminRequired(), s.deleteMovie)
		}

		ratings := api.Group("/movierating")
		{
			ratings.GET("/movie/:id", s.ratingsByMovie)
			ratings.GET("/user/:id", s.ratingsByUser)
			ratings.POST("", s.authRequired(), s.rate)
			ratings.DELETE("/single/:ratingId", s.authRequired(), s.deleteSingleRating)
			ratings.DELETE("/:userId/:showId", s.authRequired(), s.deleteRating)
		}

		api.GET("/movies/user-recommendations/:userId", s.userRecommendations)
		api.GET("/movies/:id/recommendations", s.titleRecommendations)
		api.GET("/privacy", s.privacy)
	}

	return router
}

func (s *Server) issueToken(acc *account) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   acc.ID,
		"email": acc.Email,
		"roles": acc.Roles,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}

func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			return s.jwtSecret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		email, _ := claims["email"].(string)
		s.mu.RLock()
		acc, ok := s.users[strings.ToLower(email)]
		s.mu.RUnlock()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unknown account"})
			return
		}

		c.Set("account", acc)
		c.Next()
	}
}

func (s *Server) adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		acc := currentAccount(c)
		if acc == nil || !hasRole(acc, model.AdminRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "admin role required"})
			return
		}
		c.Next()
	}
}

func currentAccount(c *gin.Context) *account {
	v, ok := c.Get("account")
	if !ok {
		return nil
	}
	acc, _ := v.(*account)
	return acc
}

func hasRole(acc *account, role string) bool {
	for _, r := range acc.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func hashPassword(password string) []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return hash
}

func (acc *account) toUser() model.User {
	return model.User{
		ID:              intToString(acc.ID),
		Email:           acc.Email,
		Roles:           acc.Roles,
		Name:            acc.Info.Name,
		Age:             acc.Info.Age,
		EnforceKidsMode: acc.Info.EnforceKidsMode,
	}
}
