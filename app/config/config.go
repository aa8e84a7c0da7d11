package config

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB            *sql.DB
	Port          string
	OpenAIKey     string
	AppBaseURL    string
	SecureCookies bool
}

var AppConfig *Config

// LoadEnv loads variables from a local .env file if one exists.
// Real deployments set the environment directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
}

// InitDB opens the database pool and populates the application config.
// A missing DATABASE_URL or an unreachable database is fatal.
func InitDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig = &Config{
		DB:            db,
		Port:          getEnv("PORT", "8080"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		AppBaseURL:    getEnv("APP_BASE_URL", "http://localhost:3000"),
		SecureCookies: os.Getenv("SESSION_SECURE_COOKIE") == "true",
	}
	log.Println("Database connected successfully")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func GetConfig() *Config {
	return AppConfig
}
