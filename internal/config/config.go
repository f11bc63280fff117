package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const ConfigFileName = "mockpile.config.json"

type Config struct {
	OutputPath         string   `json:"output_path" mapstructure:"output_path"`
	SchemaDir          string   `json:"schema_dir" mapstructure:"schema_dir"`
	Seed               int64    `json:"seed,omitempty" mapstructure:"seed"`
	PasswordEnv        string   `json:"password_env" mapstructure:"password_env"`
	BatchSize          int      `json:"batch_size" mapstructure:"batch_size"`
	MaxItemsPerProject int      `json:"max_items_per_project" mapstructure:"max_items_per_project"`
	Database           Database `json:"database" mapstructure:"database"`
	Counts             Counts   `json:"counts" mapstructure:"counts"`
	StartIDs           StartIDs `json:"start_ids" mapstructure:"start_ids"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

// Counts holds per-table record counts. A zero count falls back to the
// default for that table.
type Counts struct {
	Users             int `json:"users" mapstructure:"users"`
	Clients           int `json:"clients" mapstructure:"clients"`
	Suppliers         int `json:"suppliers" mapstructure:"suppliers"`
	Addresses         int `json:"addresses" mapstructure:"addresses"`
	Contacts          int `json:"contacts" mapstructure:"contacts"`
	Projects          int `json:"projects" mapstructure:"projects"`
	Items             int `json:"items" mapstructure:"items"`
	Documents         int `json:"documents" mapstructure:"documents"`
	DocumentRelations int `json:"document_relations" mapstructure:"document_relations"`
}

// StartIDs holds per-table id offsets, letting a run's output merge
// with previously loaded data without id collisions.
type StartIDs struct {
	Users             int `json:"users,omitempty" mapstructure:"users"`
	Clients           int `json:"clients,omitempty" mapstructure:"clients"`
	Suppliers         int `json:"suppliers,omitempty" mapstructure:"suppliers"`
	Addresses         int `json:"addresses,omitempty" mapstructure:"addresses"`
	Contacts          int `json:"contacts,omitempty" mapstructure:"contacts"`
	Projects          int `json:"projects,omitempty" mapstructure:"projects"`
	Items             int `json:"items,omitempty" mapstructure:"items"`
	Documents         int `json:"documents,omitempty" mapstructure:"documents"`
	ProjectItems      int `json:"project_items,omitempty" mapstructure:"project_items"`
	DocumentRelations int `json:"document_relations,omitempty" mapstructure:"document_relations"`
}

// DefaultConfig returns the configuration used when no file overrides
// it; the counts match the original seed dataset.
func DefaultConfig() *Config {
	return &Config{
		OutputPath:         "db/mockdata.json",
		SchemaDir:          "db/schema",
		PasswordEnv:        "MOCK_USER_PASSWORD",
		BatchSize:          100,
		MaxItemsPerProject: 20,
		Database: Database{
			Provider: "postgresql",
			URLEnv:   "DATABASE_URL",
		},
		Counts: Counts{
			Users:             14,
			Clients:           150,
			Suppliers:         150,
			Addresses:         300,
			Contacts:          300,
			Projects:          150,
			Items:             300,
			Documents:         150,
			DocumentRelations: 400,
		},
		StartIDs: StartIDs{Users: 1},
	}
}

// Load unmarshals whatever viper read in and fills defaults for every
// field left unset.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	def := DefaultConfig()
	if cfg.OutputPath == "" {
		cfg.OutputPath = def.OutputPath
	}
	if cfg.SchemaDir == "" {
		cfg.SchemaDir = def.SchemaDir
	}
	if cfg.PasswordEnv == "" {
		cfg.PasswordEnv = def.PasswordEnv
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.MaxItemsPerProject == 0 {
		cfg.MaxItemsPerProject = def.MaxItemsPerProject
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = def.Database.Provider
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = def.Database.URLEnv
	}
	fillCounts(&cfg.Counts, def.Counts)
	if !viper.IsSet("start_ids") {
		cfg.StartIDs = def.StartIDs
	}

	return &cfg, nil
}

func fillCounts(c *Counts, def Counts) {
	if c.Users == 0 {
		c.Users = def.Users
	}
	if c.Clients == 0 {
		c.Clients = def.Clients
	}
	if c.Suppliers == 0 {
		c.Suppliers = def.Suppliers
	}
	if c.Addresses == 0 {
		c.Addresses = def.Addresses
	}
	if c.Contacts == 0 {
		c.Contacts = def.Contacts
	}
	if c.Projects == 0 {
		c.Projects = def.Projects
	}
	if c.Items == 0 {
		c.Items = def.Items
	}
	if c.Documents == 0 {
		c.Documents = def.Documents
	}
	if c.DocumentRelations == 0 {
		c.DocumentRelations = def.DocumentRelations
	}
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.OutputPath == "" {
		return fmt.Errorf("output_path cannot be empty")
	}

	if c.MaxItemsPerProject < 1 {
		return fmt.Errorf("max_items_per_project must be at least 1")
	}

	return nil
}

// GetDatabaseURL resolves the connection URL from the configured
// environment variable.
func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

// Password returns the shared placeholder credential stamped on every
// generated user. The fallback keeps generation working when the env
// var is unset; none of these values is ever a real secret.
func (c *Config) Password() string {
	if v := os.Getenv(c.PasswordEnv); v != "" {
		return v
	}
	return "mockpile-not-a-real-password"
}

// InitializeProject writes the default config file and creates the
// schema and output directories. Fails if the project is already
// initialized.
func InitializeProject() error {
	if IsInitialized() {
		return fmt.Errorf("project already initialized: %s exists", ConfigFileName)
	}

	cfg := DefaultConfig()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(ConfigFileName, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ConfigFileName, err)
	}

	dirs := []string{cfg.SchemaDir, filepath.Dir(cfg.OutputPath)}
	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// IsInitialized reports whether a config file exists in the working
// directory.
func IsInitialized() bool {
	_, err := os.Stat(ConfigFileName)
	return err == nil
}
