package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nileworks/mockpile/internal/config"
	"github.com/nileworks/mockpile/internal/loader"
	"github.com/nileworks/mockpile/internal/mockdata"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

var (
	populateFile  string
	populateOnly  []string
	populateTrunc bool
	populateNoTx  bool
	populateBatch int
)

var populateCmd = &cobra.Command{
	Use:   "populate",
	Short: "Load a generated snapshot into the database",
	Long: `
Read the snapshot produced by 'mockpile generate' and insert every
record into the configured database, parents before children. By
default the whole load runs inside one transaction and rolls back on
the first failed insert.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		file := cfg.OutputPath
		if populateFile != "" {
			file = populateFile
		}

		ds, err := mockdata.ReadFile(file)
		if err != nil {
			return err
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		db, err := openDB(cfg.Database.Provider, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		only := make(map[string]bool, len(populateOnly))
		for _, table := range populateOnly {
			only[table] = true
		}

		batch := cfg.BatchSize
		if populateBatch > 0 {
			batch = populateBatch
		}

		l := loader.New(db, cfg.Database.Provider, loader.Options{
			Truncate:      populateTrunc,
			NoTransaction: populateNoTx,
			BatchSize:     batch,
			Only:          only,
		})

		color.Cyan("🚚 Loading %d records from %s...", ds.TotalRecords(), file)
		if err := l.Load(context.Background(), ds); err != nil {
			return err
		}

		color.Green("✅ Database populated successfully")
		return nil
	},
}

func openDB(provider, url string) (*sql.DB, error) {
	var driverName string
	switch provider {
	case "postgresql", "postgres":
		driverName = "pgx"
	case "mysql":
		driverName = "mysql"
	case "sqlite", "sqlite3":
		driverName = "sqlite3"
	default:
		driverName = "pgx"
	}

	db, err := sql.Open(driverName, url)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func init() {
	rootCmd.AddCommand(populateCmd)
	populateCmd.Flags().StringVar(&populateFile, "file", "", "Snapshot file to load (overrides config)")
	populateCmd.Flags().StringSliceVar(&populateOnly, "only", nil, "Restrict loading to these tables")
	populateCmd.Flags().BoolVar(&populateTrunc, "truncate", false, "Clear tables before loading")
	populateCmd.Flags().BoolVar(&populateNoTx, "no-transaction", false, "Run without a wrapping transaction")
	populateCmd.Flags().IntVar(&populateBatch, "batch", 0, "Rows per INSERT statement (overrides config)")
}
