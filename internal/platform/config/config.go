package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/srgjo27/exhorizon/internal/core/domain"
)

type App struct {
	ProductName string `envconfig:"PRODUCT_NAME" default:"EXhOrizon"`

	// Storage
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"file"`
	StorageSlot   string `envconfig:"STORAGE_SLOT" default:"exhorizon_plans_v5"`
	DataDir       string `envconfig:"DATA_DIR" default:"."`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"exhorizon"`

	RedisHost string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort string `envconfig:"REDIS_PORT" default:"6379"`
	RedisDB   int    `envconfig:"REDIS_DB" default:"0"`

	MongoURI      string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"exhorizon"`

	// Presentation
	ExportDir string `envconfig:"EXPORT_DIR" default:"."`
	Locale    string `envconfig:"LOCALE" default:"zh"`
	PDFFont   string `envconfig:"PDF_FONT"` // UTF-8 TrueType font for the itinerary, e.g. with CJK glyphs

	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogDevelopment bool   `envconfig:"LOG_DEVELOPMENT" default:"false"`
}

var drivers = map[string]bool{
	"file":     true,
	"postgres": true,
	"mysql":    true,
	"redis":    true,
	"mongo":    true,
}

// LoadDotEnv reads the given .env files into the process environment.
// Variables already set win.
func LoadDotEnv(files ...string) error {
	return godotenv.Load(files...)
}

func Load() (App, error) {
	var c App
	if err := envconfig.Process("", &c); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c App) Validate() error {
	if !drivers[c.StorageDriver] {
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.StorageSlot == "" {
		return fmt.Errorf("STORAGE_SLOT must not be empty")
	}
	if _, ok := domain.ParseLocale(c.Locale); !ok {
		return fmt.Errorf("unsupported LOCALE %q", c.Locale)
	}
	return nil
}

func (c App) WeekdayLocale() domain.Locale {
	l, _ := domain.ParseLocale(c.Locale)
	return l
}
