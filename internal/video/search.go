package video

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Video describes one search result offered to the user.
type Video struct {
	Title       string
	URL         string
	Duration    string
	Description string
}

// Searcher finds supportive videos for mood and exercise content.
// Implementations may fail for any reason (network, markup drift);
// callers substitute static fallbacks and never surface the error.
type Searcher interface {
	SearchMoodVideos(ctx context.Context) ([]Video, error)
	SearchExerciseVideos(ctx context.Context, trimester int) ([]Video, error)
}

// maxResults is the number of curated videos returned per search.
const maxResults = 3

// httpSearcher scrapes the public YouTube results page. The markup is
// not a stable API; extraction is best effort.
type httpSearcher struct {
	endpoint string
	http     *http.Client
	pick     func(n int) int
}

// NewSearcher creates a Searcher against the public YouTube results page.
func NewSearcher() Searcher {
	return &httpSearcher{
		endpoint: "https://www.youtube.com",
		http: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
			},
		},
		pick: rand.Intn,
	}
}

func (s *httpSearcher) SearchMoodVideos(ctx context.Context) ([]Video, error) {
	query := moodQueries[s.pick(len(moodQueries))]
	results, err := s.search(ctx, query)
	if err != nil {
		return nil, err
	}

	var curated []Video
	for _, v := range results {
		if !isAppropriateMoodTitle(v.Title) {
			continue
		}
		v.Description = moodDescription(v.Title)
		curated = append(curated, v)
		if len(curated) == maxResults {
			break
		}
	}
	if len(curated) == 0 {
		return nil, fmt.Errorf("no appropriate mood videos for query %q", query)
	}
	return curated, nil
}

func (s *httpSearcher) SearchExerciseVideos(ctx context.Context, trimester int) ([]Video, error) {
	pool, ok := exerciseQueries[trimester]
	if !ok {
		pool = exerciseQueries[2]
	}
	query := pool[s.pick(len(pool))]
	results, err := s.search(ctx, query)
	if err != nil {
		return nil, err
	}

	var curated []Video
	for _, v := range results {
		if !isAppropriateExerciseTitle(v.Title) {
			continue
		}
		v.Description = exerciseDescription(v.Title, trimester)
		curated = append(curated, v)
		if len(curated) == maxResults {
			break
		}
	}
	if len(curated) == 0 {
		return nil, fmt.Errorf("no appropriate exercise videos for query %q", query)
	}
	return curated, nil
}

// videoRendererRe matches the video id, title, and optional duration of
// each result embedded in the page's initial-data JSON.
var videoRendererRe = regexp.MustCompile(
	`"videoRenderer":\{"videoId":"([^"]+)".*?"title":\{"runs":\[\{"text":"((?:[^"\\]|\\.)*)"` +
		`(?:.*?"lengthText":\{.*?"simpleText":"([^"]+)")?`)

func (s *httpSearcher) search(ctx context.Context, query string) ([]Video, error) {
	u := s.endpoint + "/results?search_query=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept-Language", "en")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	// Results pages run to a few MB; cap the read defensively.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	matches := videoRendererRe.FindAllStringSubmatch(string(body), -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no results found for query %q", query)
	}

	seen := make(map[string]bool)
	var videos []Video
	for _, m := range matches {
		id, title, duration := m[1], unescapeJSON(m[2]), m[3]
		if seen[id] {
			continue
		}
		seen[id] = true
		if duration == "" {
			duration = "N/A"
		}
		videos = append(videos, Video{
			Title:    title,
			URL:      "https://www.youtube.com/watch?v=" + id,
			Duration: duration,
		})
	}
	return videos, nil
}

// unescapeJSON undoes the escapes found inside JSON string literals.
func unescapeJSON(s string) string {
	r := strings.NewReplacer(`\"`, `"`, `\\`, `\`, `\/`, `/`, `\u0026`, "&")
	return r.Replace(s)
}

// FormatForPrompt renders a video list as a markdown block for
// inclusion in an LLM prompt.
func FormatForPrompt(videos []Video) string {
	if len(videos) == 0 {
		return "No videos available at this time."
	}
	parts := make([]string, len(videos))
	for i, v := range videos {
		parts[i] = fmt.Sprintf("%d. [%s](%s): %s", i+1, v.Title, v.URL, v.Description)
	}
	return strings.Join(parts, "\n\n")
}
