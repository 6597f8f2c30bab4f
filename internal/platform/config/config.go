package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/SscSPs/construction_billing_app/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DebitPolicy decides what happens when PM and QC debits exceed the base amount.
type DebitPolicy string

const (
	DebitPolicyClamp  DebitPolicy = "clamp"  // Final amount floors at zero with a warning
	DebitPolicyReject DebitPolicy = "reject" // The approval fails with ErrInvalidAmount
)

// DeletePolicy decides what happens to payments when their bill is deleted.
type DeletePolicy string

const (
	DeletePolicyRestrict DeletePolicy = "restrict" // Bills with payments cannot be deleted
	DeletePolicyCascade  DeletePolicy = "cascade"  // Payments are removed with their bill
)

// StorageDriver selects the repository implementation.
type StorageDriver string

const (
	StoragePostgres StorageDriver = "postgres"
	StorageMemory   StorageDriver = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	StorageDriver  StorageDriver
	MigrationsPath string
	JWTSecret      string
	JWTIssuer      string

	// DeletionSecretHash is the bcrypt hash every destructive call is checked
	// against. Empty disables deletion entirely.
	DeletionSecretHash string

	DebitPolicy        DebitPolicy
	DeletePolicy       DeletePolicy
	BootstrapAdminID   string
	RateLimit          string
	CORSAllowedOrigins []string
	LogLevel           string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORAGE_DRIVER", string(StoragePostgres))
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "construction-billing-app")
	v.SetDefault("DELETION_SECRET", "")
	v.SetDefault("DELETION_SECRET_HASH", "")
	v.SetDefault("DEBIT_POLICY", string(DebitPolicyClamp))
	v.SetDefault("DELETE_POLICY", string(DeletePolicyRestrict))
	v.SetDefault("BOOTSTRAP_ADMIN_ID", "")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")

	// Actual environment variables override .env values and defaults.
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:      v.GetString("PGSQL_URL"),
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:    v.GetBool("ENABLE_DB_CHECK"),
		StorageDriver:    StorageDriver(strings.ToLower(v.GetString("STORAGE_DRIVER"))),
		MigrationsPath:   v.GetString("MIGRATIONS_PATH"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTIssuer:        v.GetString("JWT_ISSUER"),
		DebitPolicy:      DebitPolicy(strings.ToLower(v.GetString("DEBIT_POLICY"))),
		DeletePolicy:     DeletePolicy(strings.ToLower(v.GetString("DELETE_POLICY"))),
		BootstrapAdminID: v.GetString("BOOTSTRAP_ADMIN_ID"),
		RateLimit:        v.GetString("RATE_LIMIT"),
		LogLevel:         v.GetString("LOG_LEVEL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageDriver {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORAGE_DRIVER is %q", StoragePostgres)
		}
	case StorageMemory:
		log.Println("Warning: STORAGE_DRIVER=memory, data will not survive a restart.")
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	switch cfg.DebitPolicy {
	case DebitPolicyClamp, DebitPolicyReject:
	default:
		return nil, fmt.Errorf("unknown DEBIT_POLICY %q", cfg.DebitPolicy)
	}
	switch cfg.DeletePolicy {
	case DeletePolicyRestrict, DeletePolicyCascade:
	default:
		return nil, fmt.Errorf("unknown DELETE_POLICY %q", cfg.DeletePolicy)
	}

	cfg.DeletionSecretHash = v.GetString("DELETION_SECRET_HASH")
	if cfg.DeletionSecretHash == "" {
		if plain := v.GetString("DELETION_SECRET"); plain != "" {
			hash, err := utils.HashSecret(plain)
			if err != nil {
				return nil, fmt.Errorf("hash DELETION_SECRET: %w", err)
			}
			cfg.DeletionSecretHash = hash
		}
	}
	if cfg.DeletionSecretHash == "" {
		log.Println("Warning: no deletion secret configured. All delete operations will be refused.")
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
