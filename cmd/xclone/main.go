package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sarthakbiswas97/X-clone/internal/api"
	"github.com/sarthakbiswas97/X-clone/internal/cache"
	"github.com/sarthakbiswas97/X-clone/internal/cmdlog"
	"github.com/sarthakbiswas97/X-clone/internal/config"
	"github.com/sarthakbiswas97/X-clone/internal/feed"
	"github.com/sarthakbiswas97/X-clone/internal/gql"
	"github.com/sarthakbiswas97/X-clone/internal/likes"
	"github.com/sarthakbiswas97/X-clone/internal/logging"
	"github.com/sarthakbiswas97/X-clone/internal/metrics"
	"github.com/sarthakbiswas97/X-clone/internal/session"
	"github.com/sarthakbiswas97/X-clone/internal/theme"
	"github.com/sarthakbiswas97/X-clone/internal/upload"
)

const defaultConfigPath = "./xclone.yaml"

func main() {
	_ = godotenv.Load()
	logging.Setup()
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "init":
		cmdInit()
	case "login":
		cmdLogin()
	case "logout":
		cmdLogout()
	case "whoami":
		cmdWhoami()
	case "feed":
		cmdFeed()
	case "user":
		cmdUser()
	case "post":
		cmdPost()
	case "follow":
		cmdFollow()
	case "unfollow":
		cmdUnfollow()
	default:
		printHelp()
	}
}

func printHelp() {
	theme.PrintBanner()
	fmt.Println("Usage: xclone <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  init        Create a config file at ./xclone.yaml")
	fmt.Println("  login       Exchange a Google ID token for a session")
	fmt.Println("  logout      Clear the stored session")
	fmt.Println("  whoami      Show the logged-in user")
	fmt.Println("  feed        Show the global tweet feed")
	fmt.Println("  user        Show a user profile by id")
	fmt.Println("  post        Create a tweet, optionally with an image")
	fmt.Println("  follow      Follow a user by id")
	fmt.Println("  unfollow    Unfollow a user by id")
}

// app wires the session store, transport, catalog, cache and upload flow
// the way the web pages wired their hooks.
type app struct {
	cfg     config.Config
	store   *session.Store
	api     *api.Client
	hooks   *feed.Hooks
	uploads *upload.Uploader
}

func newApp(cfgPath string) (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		cfg = config.Default()
		cfg.ResolveEnv()
	}
	metrics.StartServer(cfg.Metrics.Addr)
	store, err := session.Open(cfg.Session.DBPath)
	if err != nil {
		return nil, err
	}
	client := api.New(gql.NewClient(cfg.API.Endpoint, store))
	return &app{
		cfg:     cfg,
		store:   store,
		api:     client,
		hooks:   feed.New(client, cache.New()),
		uploads: upload.New(client),
	}, nil
}

func (a *app) Close() { _ = a.store.Close() }

func fail(err error) {
	fmt.Println("error:", err)
	os.Exit(1)
}

func cmdInit() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("path", defaultConfigPath, "path to write config")
	_ = fs.Parse(os.Args[2:])
	cfg := config.Default()
	if err := config.Save(*path, cfg); err != nil {
		fail(err)
	}
	abs, _ := filepath.Abs(*path)
	theme.PrintBanner()
	fmt.Println("Config written to:", abs)
}

func cmdLogin() {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	cfgPath := fs.String("config", defaultConfigPath, "config path")
	token := fs.String("token", "", "Google ID token (or env GOOGLE_ID_TOKEN)")
	_ = fs.Parse(os.Args[2:])
	if *token == "" {
		*token = os.Getenv("GOOGLE_ID_TOKEN")
	}
	a, err := newApp(*cfgPath)
	if err != nil {
		fail(err)
	}
	defer a.Close()
	ctx := context.Background()
	err = cmdlog.Run("login", func() error {
		appToken, err := a.api.VerifyGoogleToken(ctx, *token)
		if err != nil {
			return err
		}
		if err := a.store.Set(ctx, appToken); err != nil {
			return err
		}
		me, err := a.hooks.CurrentUser(ctx)
		if err != nil {
			return err
		}
		fmt.Println("Logged in as", me.FullName())
		return nil
	})
	if err != nil {
		fail(err)
	}
}

func cmdLogout() {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	cfgPath := fs.String("config", defaultConfigPath, "config path")
	_ = fs.Parse(os.Args[2:])
	a, err := newApp(*cfgPath)
	if err != nil {
		fail(err)
	}
	defer a.Close()
	err = cmdlog.Run("logout", func() error {
		if err := a.store.Clear(context.Background()); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	})
	if err != nil {
		fail(err)
	}
}

func cmdWhoami() {
	fs := flag.NewFlagSet("whoami", flag.ExitOnError)
	cfgPath := fs.String("config", defaultConfigPath, "config path")
	_ = fs.Parse(os.Args[2:])
	a, err := newApp(*cfgPath)
	if err != nil {
		fail(err)
	}
	defer a.Close()
	err = cmdlog.Run("whoami", func() error {
		me, err := a.hooks.CurrentUser(context.Background())
		if errors.Is(err, api.ErrNoCurrentUser) {
			fmt.Println("No account yet. Run `xclone login` with a Google ID token.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s>\n", me.FullName(), me.Email)
		fmt.Printf("followers=%d following=%d tweets=%d\n", len(me.Followers), len(me.Following), len(me.Tweets))
		for _, r := range me.RecommendedUsers {
			fmt.Println("you may know:", r.FullName(), "("+r.ID+")")
		}
		return nil
	})
	if err != nil {
		fail(err)
	}
}

func cmdFeed() {
	fs := flag.NewFlagSet("feed", flag.ExitOnError)
	cfgPath := fs.String("config", defaultConfigPath, "config path")
	like := fs.String("like", "", "toggle the like on a tweet id for this render")
	_ = fs.Parse(os.Args[2:])
	a, err := newApp(*cfgPath)
	if err != nil {
		fail(err)
	}
	defer a.Close()
	err = cmdlog.Run("feed", func() error {
		tweets, err := a.hooks.AllTweets(context.Background())
		if err != nil {
			return err
		}
		// like state lives per render and starts fresh, like the web feed
		hearts := likes.NewRegistry()
		if *like != "" {
			hearts.Toggle(*like)
		}
		for _, t := range tweets {
			author := "unknown"
			if t.Author != nil {
				author = t.Author.FullName()
			}
			s := hearts.Get(t.ID)
			fmt.Printf("%s  @%s\n%s\n", t.ID, author, t.Content)
			if t.ImageURL != "" {
				fmt.Println("image:", t.ImageURL)
			}
			fmt.Printf("♥ %d\n---\n", s.Count)
		}
		return nil
	})
	if err != nil {
		fail(err)
	}
}

func cmdUser() {
	fs := flag.NewFlagSet("user", flag.ExitOnError)
	cfgPath := fs.String("config", defaultConfigPath, "config path")
	id := fs.String("id", "", "user id")
	_ = fs.Parse(os.Args[2:])
	a, err := newApp(*cfgPath)
	if err != nil {
		fail(err)
	}
	defer a.Close()
	err = cmdlog.Run("user", func() error {
		u, err := a.hooks.UserByID(context.Background(), *id)
		if err != nil {
			return err
		}
		fmt.Println(u.FullName())
		fmt.Printf("followers=%d following=%d\n", len(u.Followers), len(u.Following))
		for _, t := range u.Tweets {
			fmt.Printf("%s  %s\n", t.ID, t.Content)
		}
		return nil
	})
	if err != nil {
		fail(err)
	}
}

func cmdPost() {
	fs := flag.NewFlagSet("post", flag.ExitOnError)
	cfgPath := fs.String("config", defaultConfigPath, "config path")
	content := fs.String("content", "", "tweet text")
	image := fs.String("image", "", "path of an image to attach")
	_ = fs.Parse(os.Args[2:])
	a, err := newApp(*cfgPath)
	if err != nil {
		fail(err)
	}
	defer a.Close()
	ctx := context.Background()
	err = cmdlog.Run("post", func() error {
		imageURL := ""
		if *image != "" {
			fmt.Println("Uploading image...")
			url, err := a.uploads.UploadFile(ctx, *image)
			if err != nil {
				return err
			}
			imageURL = url
			fmt.Println("Upload complete:", imageURL)
		}
		t, err := a.hooks.CreateTweet(ctx, *content, imageURL)
		if err != nil {
			return err
		}
		fmt.Println("Posted:", t.ID)
		return nil
	})
	if err != nil {
		fail(err)
	}
}

func cmdFollow() {
	runFollowCmd("follow", func(a *app, ctx context.Context, to string) error {
		return a.hooks.Follow(ctx, to)
	})
}

func cmdUnfollow() {
	runFollowCmd("unfollow", func(a *app, ctx context.Context, to string) error {
		return a.hooks.Unfollow(ctx, to)
	})
}

func runFollowCmd(name string, do func(a *app, ctx context.Context, to string) error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	cfgPath := fs.String("config", defaultConfigPath, "config path")
	to := fs.String("to", "", "target user id")
	_ = fs.Parse(os.Args[2:])
	a, err := newApp(*cfgPath)
	if err != nil {
		fail(err)
	}
	defer a.Close()
	err = cmdlog.Run(name, func() error {
		if err := do(a, context.Background(), *to); err != nil {
			return err
		}
		fmt.Printf("%sed %s\n", name, *to)
		return nil
	})
	if err != nil {
		fail(err)
	}
}
