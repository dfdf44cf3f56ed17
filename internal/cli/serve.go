package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/dotgen/internal/server"
	"github.com/matzehuels/dotgen/pkg/cache"
	"github.com/matzehuels/dotgen/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	mongoURI  string // MongoDB connection string; empty selects the in-memory store
	redisAddr string // Redis address; empty selects the local file cache
	noCache   bool   // disable the render cache entirely
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Without flags the server keeps graphs in memory and caches rendered
output under ~/.cache/dotgen/. Point it at MongoDB and Redis for
persistent multi-instance deployments:

  dotgen serve --mongo-uri mongodb://localhost:27017 --redis-addr localhost:6379`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "MongoDB connection string (default: in-memory store)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "Redis address (default: local file cache)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	st, err := newStore(cmd, opts)
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	cch, err := newServeCache(cmd, opts)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Addr:   opts.addr,
		Store:  st,
		Cache:  cch,
		Logger: logger,
	})
	return srv.Run(ctx)
}

func newStore(cmd *cobra.Command, opts *serveOpts) (store.Store, error) {
	if opts.mongoURI == "" {
		return store.NewMemoryStore(), nil
	}

	sp := newSpinnerWithContext(cmd.Context(), "Connecting to MongoDB")
	sp.Start()
	st, err := store.NewMongoStore(cmd.Context(), store.MongoConfig{URI: opts.mongoURI})
	if err != nil {
		sp.StopWithError("MongoDB connection failed")
		return nil, err
	}
	sp.StopWithSuccess("Connected to MongoDB")
	return st, nil
}

func newServeCache(cmd *cobra.Command, opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redisAddr != "" {
		return cache.NewRedisCache(cmd.Context(), cache.RedisConfig{Addr: opts.redisAddr})
	}
	return newCache(false)
}
