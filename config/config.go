package config

import "os"

// Config collects every environment setting the server needs. main loads
// .env via godotenv before calling Load, so plain os.Getenv is enough here.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	SupabaseURL    string
	SupabaseKey    string
	SupabaseBucket string
	// DeleteReplacedBlobs controls whether replacing or deleting a record's
	// file also removes the previous object from the blob store. Off keeps
	// old objects around.
	DeleteReplacedBlobs bool

	LeetCodeUsername string
	CORSOrigin       string
}

func Load() Config {
	return Config{
		Port:                getenv("PORT", "8080"),
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              getenv("DB_PORT", "5432"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		SupabaseURL:         os.Getenv("SUPABASE_URL"),
		SupabaseKey:         os.Getenv("SUPABASE_KEY"),
		SupabaseBucket:      getenv("SUPABASE_BUCKET", "uploads"),
		DeleteReplacedBlobs: os.Getenv("STORAGE_DELETE_REPLACED") == "true",
		LeetCodeUsername:    os.Getenv("LEETCODE_USERNAME"),
		CORSOrigin:          getenv("CORS_ORIGIN", "http://localhost:5173"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
