package main

import (
	"context"
	"database/sql"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	_ "modernc.org/sqlite"

	"github.com/perogyhouse/moodengine/internal/api"
	"github.com/perogyhouse/moodengine/internal/models"
	"github.com/perogyhouse/moodengine/internal/mood"
	"github.com/perogyhouse/moodengine/internal/signals"
	"github.com/perogyhouse/moodengine/internal/store"
)

var cli struct {
	EnvFile kongdotenv.ENVFileConfig `kong:"optional,name='env-file',help='Path to a .env file.'"`

	Port   string `env:"PORT" default:"8080" help:"HTTP server port."`
	DBPath string `env:"DB_PATH" name:"db" default:"data/moodengine.db" help:"Path to the sqlite database."`

	Lat      float64 `env:"LATITUDE" default:"49.89" help:"Site latitude."`
	Lon      float64 `env:"LONGITUDE" default:"-97.14" help:"Site longitude."`
	Timezone string  `env:"TIMEZONE" default:"America/Winnipeg" help:"IANA timezone for all local-time logic."`
	Team     string  `env:"TEAM" default:"WPG" help:"Tracked team abbreviation on the league scoreboard."`

	OverrideURL    string        `env:"OVERRIDE_CSV_URL" help:"URL of the operator override CSV."`
	OverrideFile   string        `env:"OVERRIDE_CSV_FILE" help:"Local override CSV, used when no URL is set."`
	ManualOverride string        `env:"MANUAL_OVERRIDE" help:"Process-level override mode, loses to the CSV."`
	CacheTTL       time.Duration `env:"CACHE_TTL" default:"5m" help:"Snapshot cache lifetime."`

	RetainDays int `env:"RETAIN_DAYS" default:"90" help:"Days of mood log to keep."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("moodengine"),
		kong.Description("Weather-and-city-mood driven theming for the restaurant site."),
	)

	db, err := sql.Open("sqlite", cli.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")

	loc, err := time.LoadLocation(cli.Timezone)
	if err != nil {
		log.Printf("Warning: could not load %s timezone, using UTC: %v", cli.Timezone, err)
		loc = time.UTC
	}

	st := store.New(db, loc)
	if err := st.Migrate(); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Println("database migrated")

	assembler := mood.NewAssembler(mood.Config{
		Weather:     signals.RecordedWeather{Source: signals.NewWeatherClient("", cli.Lat, cli.Lon, loc), Runs: st},
		Air:         signals.RecordedAirQuality{Source: signals.NewAirQualityClient("", cli.Lat, cli.Lon), Runs: st},
		Sports:      signals.RecordedSports{Source: signals.NewSportsClient("", cli.Team, loc), Runs: st},
		Override:    signals.RecordedOverride{Source: signals.NewOverrideClient(cli.OverrideURL, cli.OverrideFile, signals.DefaultOverrideTTL), Runs: st},
		Recorder:    st,
		Cache:       mood.NewCache(cli.CacheTTL),
		Location:    loc,
		EnvOverride: models.ParseOverrideMode(cli.ManualOverride),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	retain := time.Duration(cli.RetainDays) * 24 * time.Hour
	refresher := mood.NewRefresher(assembler, st, cli.CacheTTL, retain)
	go refresher.Run(ctx)

	server := api.NewServer(assembler, st, cli.Port, loc)
	log.Printf("starting server on :%s", cli.Port)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
