package config

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// Config holds everything the application needs at runtime.
type Config struct {
	DB             *sql.DB
	Port           string
	SenhaHash      []byte // bcrypt hash of the shared access password
	JWTSecret      []byte
	StorageDir     string
	StorageBaseURL string
}

var AppConfig *Config

// Load reads the environment (including an optional .env file), opens the
// database pool and prepares the shared-password hash.
func Load() error {
	// .env is optional; real deployments set variables directly
	_ = godotenv.Load()

	db, err := openDB()
	if err != nil {
		return err
	}

	senha := getenv("GUARD_SENHA", "GuardAdm")
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash access password: %w", err)
	}

	AppConfig = &Config{
		DB:             db,
		Port:           getenv("PORT", "8080"),
		SenhaHash:      hash,
		JWTSecret:      []byte(getenv("JWT_SECRET", "guardioes-financeiro-secret-key")),
		StorageDir:     getenv("STORAGE_DIR", "./documentos"),
		StorageBaseURL: getenv("STORAGE_BASE_URL", "/documentos"),
	}
	return nil
}

func openDB() (*sql.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			getenv("DB_HOST", "localhost"),
			getenv("DB_PORT", "5432"),
			getenv("DB_USER", "postgres"),
			getenv("DB_PASSWORD", ""),
			getenv("DB_NAME", "guardioes"),
			getenv("DB_SSLMODE", "disable"),
		)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("database is unreachable: %w", err)
	}
	return db, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
