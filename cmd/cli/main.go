package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/benhagg/cineniche/internal/app"
	"github.com/benhagg/cineniche/internal/config"
	"github.com/benhagg/cineniche/internal/model"
	usecase_movie "github.com/benhagg/cineniche/internal/usecase/movie"
)

func main() {
	cfg := config.Load()
	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	a := app.New(cfg)
	ctx := context.Background()

	cmd := args[0]
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}

	switch cmd {
	case "auth":
		handleAuth(ctx, a, sub, args[2:])
	case "movies":
		handleMovies(ctx, a, sub, args[2:])
	case "ratings":
		handleRatings(ctx, a, sub, args[2:])
	case "recommend":
		handleRecommend(ctx, a, sub, args[2:])
	case "privacy":
		policy, err := a.Privacy.Policy(ctx)
		if err != nil {
			log.Fatalf("privacy failed: %v", err)
		}
		printJSON(policy)
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleAuth(ctx context.Context, a *app.App, sub string, args []string) {
	switch sub {
	case "login":
		fs := flag.NewFlagSet("auth login", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)
		if *email == "" || *password == "" {
			log.Fatal("email and password are required")
		}

		user, err := a.Session.Login(ctx, *email, *password)
		if err != nil {
			log.Fatalf("login failed: %v", err)
		}
		fmt.Printf("logged in as %s\n", user.Email)
	case "register":
		fs := flag.NewFlagSet("auth register", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		confirm := fs.String("confirm", "", "password confirmation")
		name := fs.String("name", "", "full name")
		age := fs.String("age", "", "age")
		city := fs.String("city", "", "city")
		state := fs.String("state", "", "state")
		zip := fs.String("zip", "", "zip code")
		services := fs.String("services", "", "comma-separated streaming services")
		_ = fs.Parse(args)
		if *email == "" || *password == "" {
			log.Fatal("email and password are required")
		}
		if *confirm == "" {
			*confirm = *password
		}

		req := model.RegisterRequest{
			Email:           *email,
			Password:        *password,
			ConfirmPassword: *confirm,
			FullName:        *name,
			Age:             *age,
			City:            *city,
			State:           *state,
			Zip:             *zip,
		}
		if *services != "" {
			req.Services = strings.Split(*services, ",")
		}

		user, err := a.Session.Register(ctx, req)
		if err != nil {
			log.Fatalf("register failed: %v", err)
		}
		if a.Session.IsAuthenticated() {
			fmt.Printf("registered and logged in as %s\n", user.Email)
		} else {
			fmt.Println("registered; please log in")
		}
	case "logout":
		a.Session.Logout()
		fmt.Println("logged out")
	case "whoami":
		user := a.Session.CurrentUser()
		if user == nil || !a.Session.IsAuthenticated() {
			fmt.Println("not authenticated")
			return
		}
		fmt.Printf("%s (admin: %v)\n", user.Email, a.Session.IsAdmin())
	default:
		log.Fatal("usage: cineniche auth <login|register|logout|whoami>")
	}
}

func handleMovies(ctx context.Context, a *app.App, sub string, args []string) {
	switch sub {
	case "list":
		fs := flag.NewFlagSet("movies list", flag.ExitOnError)
		page := fs.Int("page", 1, "page number")
		pageSize := fs.Int("page-size", 10, "page size")
		genre := fs.String("genre", "", "genre filter")
		search := fs.String("search", "", "title search")
		kids := fs.Bool("kids", false, "kids mode")
		_ = fs.Parse(args)
		if *kids {
			a.Session.SetKidsMode(true)
		}

		result, err := a.Movies.Browse(ctx, *page, *pageSize, *genre, *search, a.Session.KidsMode())
		if err != nil {
			log.Fatalf("list failed: %v", err)
		}
		printJSON(result)
	case "show":
		fs := flag.NewFlagSet("movies show", flag.ExitOnError)
		id := fs.String("id", "", "show id")
		kids := fs.Bool("kids", false, "kids mode")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("show id is required")
		}
		if *kids {
			a.Session.SetKidsMode(true)
		}

		movie, err := a.Movies.Get(ctx, *id, a.Session.KidsMode())
		if err != nil {
			log.Fatalf("show failed: %v", err)
		}
		printJSON(movie)
	case "genres":
		genres, err := a.Movies.Genres(ctx)
		if err != nil {
			log.Fatalf("genres failed: %v", err)
		}
		printJSON(genres)
	case "create", "update":
		fs := flag.NewFlagSet("movies "+sub, flag.ExitOnError)
		id := fs.String("id", "", "show id")
		title := fs.String("title", "", "title")
		genre := fs.String("genre", "", "genre label")
		year := fs.Int("year", 0, "release year")
		director := fs.String("director", "", "director")
		description := fs.String("description", "", "description")
		_ = fs.Parse(args)

		draft := usecase_movie.Draft{
			ShowID:      *id,
			Title:       *title,
			Genre:       *genre,
			Year:        *year,
			Director:    *director,
			Description: *description,
		}

		var record model.CatalogRecord
		var err error
		if sub == "create" {
			if *title == "" {
				log.Fatal("title is required")
			}
			record, err = a.Movies.Create(ctx, draft)
		} else {
			if *id == "" {
				log.Fatal("show id is required")
			}
			record, err = a.Movies.Update(ctx, *id, draft)
		}
		if err != nil {
			log.Fatalf("%s failed: %v", sub, err)
		}
		printJSON(record)
	case "delete":
		fs := flag.NewFlagSet("movies delete", flag.ExitOnError)
		id := fs.String("id", "", "show id")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("show id is required")
		}

		if err := a.Movies.Delete(ctx, *id); err != nil {
			log.Fatalf("delete failed: %v", err)
		}
		fmt.Println("deleted")
	default:
		log.Fatal("usage: cineniche movies <list|show|genres|create|update|delete>")
	}
}

func handleRatings(ctx context.Context, a *app.App, sub string, args []string) {
	switch sub {
	case "movie":
		fs := flag.NewFlagSet("ratings movie", flag.ExitOnError)
		id := fs.String("id", "", "show id")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("show id is required")
		}
		printJSON(a.Ratings.AggregateForTitle(ctx, *id))
	case "user":
		fs := flag.NewFlagSet("ratings user", flag.ExitOnError)
		id := fs.Int("id", 0, "user id")
		_ = fs.Parse(args)

		ratings, err := a.Ratings.RatingsByUser(ctx, *id)
		if err != nil {
			log.Fatalf("user ratings failed: %v", err)
		}
		printJSON(ratings)
	case "rate":
		fs := flag.NewFlagSet("ratings rate", flag.ExitOnError)
		id := fs.String("id", "", "show id")
		score := fs.Int("score", 0, "score 1-5")
		review := fs.String("review", "", "review text")
		_ = fs.Parse(args)
		if *id == "" || *score < 1 || *score > 5 {
			log.Fatal("show id and a score between 1 and 5 are required")
		}

		rating, err := a.Ratings.Rate(ctx, *id, *score, *review)
		if err != nil {
			log.Fatalf("rate failed: %v", err)
		}
		printJSON(rating)
	case "delete":
		fs := flag.NewFlagSet("ratings delete", flag.ExitOnError)
		user := fs.Int("user", 0, "user id")
		show := fs.String("show", "", "show id")
		_ = fs.Parse(args)
		if *show == "" {
			log.Fatal("show id is required")
		}

		if err := a.Ratings.DeleteForUser(ctx, *user, *show); err != nil {
			log.Fatalf("delete failed: %v", err)
		}
		fmt.Println("deleted")
	case "delete-single":
		fs := flag.NewFlagSet("ratings delete-single", flag.ExitOnError)
		id := fs.Int("id", 0, "rating id")
		_ = fs.Parse(args)

		if err := a.Ratings.DeleteSingle(ctx, *id); err != nil {
			log.Fatalf("delete-single failed: %v", err)
		}
		fmt.Println("deleted")
	default:
		log.Fatal("usage: cineniche ratings <movie|user|rate|delete|delete-single>")
	}
}

func handleRecommend(ctx context.Context, a *app.App, sub string, args []string) {
	switch sub {
	case "user":
		fs := flag.NewFlagSet("recommend user", flag.ExitOnError)
		id := fs.String("id", "", "user id")
		kids := fs.Bool("kids", false, "kids mode")
		_ = fs.Parse(args)
		if *id == "" {
			user := a.Session.CurrentUser()
			if user == nil {
				log.Fatal("user id is required when not logged in")
			}
			*id = user.ID
		}
		if *kids {
			a.Session.SetKidsMode(true)
		}

		printJSON(a.Recommend.ForUser(ctx, *id, a.Session.KidsMode()))
	case "title":
		fs := flag.NewFlagSet("recommend title", flag.ExitOnError)
		id := fs.String("id", "", "show id")
		kids := fs.Bool("kids", false, "kids mode")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("show id is required")
		}
		if *kids {
			a.Session.SetKidsMode(true)
		}

		printJSON(a.Recommend.ForTitle(ctx, *id, a.Session.KidsMode()))
	default:
		log.Fatal("usage: cineniche recommend <user|title>")
	}
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("json: %v", err)
	}
	fmt.Println(string(b))
}

func printUsage() {
	fmt.Println("cineniche [-config env-file] <command> [subcommand] [flags]")
	fmt.Println("commands:")
	fmt.Println("  auth login|register|logout|whoami")
	fmt.Println("  movies list|show|genres|create|update|delete")
	fmt.Println("  ratings movie|user|rate|delete|delete-single")
	fmt.Println("  recommend user|title")
	fmt.Println("  privacy")
}
