package results

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/parkrun-tools/milestones/internal/finisher"
	"github.com/parkrun-tools/milestones/internal/series"
)

const (
	// DefaultBaseURL is the national parkrun site the Poznań series publish
	// under. Other countries run the same page structure on their own hosts.
	DefaultBaseURL = "http://www.parkrun.pl"

	// DefaultUserAgent is a browser user agent. The results host rejects
	// requests identifying themselves as library clients.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/104.0.0.0 Safari/537.36"

	// DefaultTimeout bounds one page fetch.
	DefaultTimeout = 30 * time.Second
)

// locationSlugs maps a series location to its URL path segment. The routing
// data lives here with the fetcher; nothing outside this package inspects it.
var locationSlugs = map[series.Location]string{
	series.Cytadela:    "poznan",
	series.LasDebinski: "lasdebinski",
}

// Client fetches parkrun results pages over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// Options configures a Client. Zero values fall back to the defaults above.
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// NewClient creates a results page client.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    opts.BaseURL,
		userAgent:  opts.UserAgent,
	}
}

// FetchEvent retrieves and parses the results page of one event. When ref is
// LatestEvent the most recent published event is fetched and its number
// resolved from the page header; otherwise exactly the referenced event is
// fetched. Rows are returned in published order.
func (c *Client) FetchEvent(ctx context.Context, loc series.Location, ref series.EventRef) ([]finisher.Finisher, int, error) {
	url, err := c.eventURL(loc, ref)
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, transportErr(url, "creating request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, transportErr(url, "fetching results page", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, transportErr(url, fmt.Sprintf("unexpected status code %d", resp.StatusCode), nil)
	}

	return parseResultsPage(resp.Body, url, ref)
}

// eventURL builds the page URL for one event of a series.
func (c *Client) eventURL(loc series.Location, ref series.EventRef) (string, error) {
	slug, ok := locationSlugs[loc]
	if !ok {
		return "", transportErr("", fmt.Sprintf("no routing slug for location %q", loc), nil)
	}
	if ref.IsLatest() {
		return fmt.Sprintf("%s/%s/results/latestresults/", c.baseURL, slug), nil
	}
	return fmt.Sprintf("%s/%s/results/%d/", c.baseURL, slug, ref.Number()), nil
}
