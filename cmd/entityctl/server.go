package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/entitykit/entitykit/pkg/audit"
	"github.com/entitykit/entitykit/pkg/config"
	"github.com/entitykit/entitykit/pkg/db"
	"github.com/entitykit/entitykit/pkg/lifecycle"
	"github.com/entitykit/entitykit/pkg/model"
	"github.com/entitykit/entitykit/pkg/server"
	"github.com/entitykit/entitykit/pkg/server/endpoints"
	gormstore "github.com/entitykit/entitykit/pkg/store/gorm"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the EntityKit application server",
	Long: `Run the EntityKit application server.

The server requires the DATABASE_URL environment variable (or the
database_url attribute in entitykit.yml).

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()

		if host, _ := cmd.Flags().GetString("bind-address"); host != "" {
			cfg.Host = host
		}
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Port = port
		}

		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, "Invalid configuration:", err)
			os.Exit(1)
		}
		if cfg.DatabaseURL == "" && os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{URL: cfg.DatabaseURL})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		events := lifecycle.NewDispatcher(lifecycle.WithTimestamps(cfg.AutoTimestamps))
		for _, prototype := range []any{&model.Person{}, &model.Reminder{}} {
			if err := events.RegisterEntity(prototype); err != nil {
				fmt.Fprintln(os.Stderr, "Unable to register entity:", err)
				os.Exit(1)
			}
		}

		// Audit trail is best-effort. Without a configured audit database
		// the listener still logs to stderr.
		auditStore, err := audit.NewStore()
		if err != nil {
			log.Println("Audit database unavailable:", err)
		}
		events.RegisterCustomListener(audit.NewListener(auditStore))

		s := server.NewServer(gormstore.NewStore(database, events), events, cfg)

		if cfg.APITokenSecret != "" {
			endpoints.RegisterProtected(s)
		} else {
			log.Println("ENTITYKIT_API_TOKEN_SECRET not set; API is unauthenticated")
			endpoints.RegisterAll(s)
		}

		log.Printf("Running server at http://%s...\n", cfg.Addr())
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().IntP("port", "p", 0, "server listen port (overrides configuration)")
	serverCmd.Flags().StringP("bind-address", "b", "", "server bind address (overrides configuration)")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
