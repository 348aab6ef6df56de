package signals

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/perogyhouse/moodengine/internal/httputil"
	"github.com/perogyhouse/moodengine/internal/metrics"
	"github.com/perogyhouse/moodengine/internal/models"
)

const DefaultScoreURL = "https://api-web.nhle.com/v1/score"

// SportsClient checks the league scoreboard for the configured team.
// Today's slate wins over yesterday's: a final from last night only
// counts when nothing is scheduled today.
type SportsClient struct {
	baseURL string
	client  *http.Client
	team    string
	loc     *time.Location
}

func NewSportsClient(baseURL, team string, loc *time.Location) *SportsClient {
	if baseURL == "" {
		baseURL = DefaultScoreURL
	}
	if loc == nil {
		loc = time.UTC
	}
	return &SportsClient{
		baseURL: baseURL,
		client:  httputil.NewClient(),
		team:    team,
		loc:     loc,
	}
}

type scoreResponse struct {
	Games []scoreGame `json:"games"`
}

type scoreGame struct {
	GameState string    `json:"gameState"`
	HomeTeam  scoreTeam `json:"homeTeam"`
	AwayTeam  scoreTeam `json:"awayTeam"`
}

type scoreTeam struct {
	Abbrev string `json:"abbrev"`
	Score  int    `json:"score"`
}

// Outcome reports the team's standing as of now. Both date pages are
// fetched concurrently; any failure collapses to NONE.
func (c *SportsClient) Outcome(ctx context.Context, now time.Time) (models.SportsOutcome, error) {
	start := time.Now()
	outcome, err := c.resolve(ctx, now)
	metrics.ObserveFetch("sports", time.Since(start).Seconds(), err)
	if err != nil {
		return models.OutcomeNone, err
	}
	return outcome, nil
}

type scoreResult struct {
	games []scoreGame
	err   error
}

func (c *SportsClient) resolve(ctx context.Context, now time.Time) (models.SportsOutcome, error) {
	local := now.In(c.loc)
	today := local.Format("2006-01-02")
	yesterday := local.AddDate(0, 0, -1).Format("2006-01-02")

	todayCh := make(chan scoreResult, 1)
	yesterdayCh := make(chan scoreResult, 1)
	go func() {
		games, err := c.fetchDay(ctx, today)
		todayCh <- scoreResult{games, err}
	}()
	go func() {
		games, err := c.fetchDay(ctx, yesterday)
		yesterdayCh <- scoreResult{games, err}
	}()

	rt := <-todayCh
	if rt.err != nil {
		return models.OutcomeNone, rt.err
	}
	if outcome, ok := c.classify(rt.games); ok {
		return outcome, nil
	}

	ry := <-yesterdayCh
	if ry.err != nil {
		return models.OutcomeNone, ry.err
	}
	if outcome, ok := c.classify(ry.games); ok {
		// Yesterday's page only matters once that game is over.
		if outcome == models.OutcomeVictory || outcome == models.OutcomeDefeat {
			return outcome, nil
		}
	}
	return models.OutcomeNone, nil
}

func (c *SportsClient) fetchDay(ctx context.Context, date string) ([]scoreGame, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch scores: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch scores: status %d: %s", resp.StatusCode, string(b))
	}

	var data scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return data.Games, nil
}

// classify finds the team's game on a slate. Finals become VICTORY or
// DEFEAT; anything else involving the team is GAME_DAY.
func (c *SportsClient) classify(games []scoreGame) (models.SportsOutcome, bool) {
	for _, g := range games {
		var us, them *scoreTeam
		switch c.team {
		case g.HomeTeam.Abbrev:
			us, them = &g.HomeTeam, &g.AwayTeam
		case g.AwayTeam.Abbrev:
			us, them = &g.AwayTeam, &g.HomeTeam
		default:
			continue
		}
		if g.GameState == "FINAL" || g.GameState == "OFF" {
			if us.Score > them.Score {
				return models.OutcomeVictory, true
			}
			return models.OutcomeDefeat, true
		}
		return models.OutcomeGameDay, true
	}
	return models.OutcomeNone, false
}
