package app

import (
	"github.com/benhagg/cineniche/internal/config"
	api_client "github.com/benhagg/cineniche/internal/infra/api"
	ratings_cache "github.com/benhagg/cineniche/internal/infra/ratingcache"
	infra_redis_init "github.com/benhagg/cineniche/internal/infra/redisinit"
	token_store "github.com/benhagg/cineniche/internal/infra/tokenstore"
	auth_session "github.com/benhagg/cineniche/internal/service/auth"
	usecase_movie "github.com/benhagg/cineniche/internal/usecase/movie"
	usecase_privacy "github.com/benhagg/cineniche/internal/usecase/privacy"
	usecase_rating "github.com/benhagg/cineniche/internal/usecase/rating"
	usecase_recommend "github.com/benhagg/cineniche/internal/usecase/recommend"
)

// App is the assembled client core: one API pipeline, one session store,
// one ratings cache instance shared by every usecase.
type App struct {
	Session   *auth_session.Store
	Movies    *usecase_movie.Usecase
	Ratings   *usecase_rating.Usecase
	Recommend *usecase_recommend.Usecase
	Privacy   *usecase_privacy.Usecase
}

func New(cfg *config.Config) *App {
	tokens := token_store.New(cfg.Auth.TokenPath)
	api := api_client.New(cfg.API.BaseURL, cfg.API.Timeout, tokens)

	session := auth_session.New(api, tokens)
	if cfg.Auth.KidsMode {
		session.SetKidsMode(true)
	}

	// Ambient authorization failures tear the session down; the caller's
	// next interaction lands on a login entry point.
	api.SetOnUnauthorized(session.Logout)

	var cache usecase_rating.Cache
	if cfg.Cache.Driver == "redis" {
		redisConn := infra_redis_init.MustEstablishConn(cfg.Cache.Redis)
		cache = ratings_cache.NewRedis(redisConn, "movie_ratings", cfg.Cache.TTL)
	} else {
		cache = ratings_cache.NewMemory()
	}

	ratings := usecase_rating.New(api, cache)
	movies := usecase_movie.New(api, ratings)
	recommend := usecase_recommend.New(api, ratings)
	privacy := usecase_privacy.New(api)

	return &App{
		Session:   session,
		Movies:    movies,
		Ratings:   ratings,
		Recommend: recommend,
		Privacy:   privacy,
	}
}
