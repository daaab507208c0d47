package shared

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
)

type ServerConfig struct {
	Addr      string
	DBName    string
	MongoURI  string
	Driver    string
	DBPath    string
	PublicDir string
}

// LoadServerConfig resolves each setting from the environment first, then a
// local .env file, then a built-in default.
func LoadServerConfig() (*ServerConfig, error) {
	fileVars, _ := godotenv.Read(".env") // missing file is fine

	get := func(key, def string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		if v := fileVars[key]; v != "" {
			return v
		}
		return def
	}

	cfg := &ServerConfig{
		Addr:      ":" + get("PORT", "3000"),
		DBName:    get("DB_NAME", "hirishi-mirror"),
		MongoURI:  get("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		Driver:    get("DB_DRIVER", DriverMongo),
		DBPath:    get("DB_PATH", "./data/guestwall.db"),
		PublicDir: get("PUBLIC_DIR", "./public"),
	}

	if cfg.Driver != DriverMongo && cfg.Driver != DriverSQLite {
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.Driver)
	}
	return cfg, nil
}
