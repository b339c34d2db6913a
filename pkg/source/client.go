package source

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/dainik-app/dainik/pkg/models"
	"github.com/dainik-app/dainik/pkg/timemath"
)

// Snapshot is one consistent read of the user's planner documents.
type Snapshot struct {
	Routines []models.ScheduleList
	Todos    []models.ScheduleList
	Goals    []string
}

// Client reads planner documents over the store's REST endpoint.
// Documents live under "{base}/{collection}/{uid}.json"; goals are
// keyed one level deeper by date.
type Client struct {
	baseURL    string
	userID     string
	httpClient *http.Client
}

// NewClient returns a client for the given user. baseURL is the store
// root without a trailing slash.
func NewClient(baseURL, userID string) *Client {
	return &Client{
		baseURL:    baseURL,
		userID:     userID,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	u := fmt.Sprintf("%s/%s.json", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", path, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", path, err)
	}
	return body, nil
}

// FetchRoutines returns the user's weekly routine lists.
func (c *Client) FetchRoutines(ctx context.Context) ([]models.ScheduleList, error) {
	doc, err := c.get(ctx, "routines/"+url.PathEscape(c.userID))
	if err != nil {
		return nil, err
	}
	return decodeLists(doc)
}

// FetchTodos returns the user's timed todo lists.
func (c *Client) FetchTodos(ctx context.Context) ([]models.ScheduleList, error) {
	doc, err := c.get(ctx, "todos/"+url.PathEscape(c.userID))
	if err != nil {
		return nil, err
	}
	return decodeLists(doc)
}

// FetchGoals returns the user's goals for the given day.
func (c *Client) FetchGoals(ctx context.Context, day time.Time) ([]string, error) {
	path := "goals/" + url.PathEscape(c.userID) + "/" + timemath.DateString(day)
	doc, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeGoals(doc)
}

// FetchSnapshot reads all three documents. A failure in any one fails
// the snapshot; partial data never replaces a previous good read.
func (c *Client) FetchSnapshot(ctx context.Context) (Snapshot, error) {
	routines, err := c.FetchRoutines(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	todos, err := c.FetchTodos(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	goals, err := c.FetchGoals(ctx, time.Now())
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Routines: routines, Todos: todos, Goals: goals}, nil
}

// Subscribe polls the store at the given interval and delivers each
// successful snapshot on the returned channel. The first fetch happens
// immediately. Failed polls are logged and skipped. The channel closes
// when ctx is cancelled.
func (c *Client) Subscribe(ctx context.Context, interval time.Duration) <-chan Snapshot {
	out := make(chan Snapshot, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		poll := func() {
			snap, err := c.FetchSnapshot(ctx)
			if err != nil {
				log.Printf("schedule sync failed: %v", err)
				return
			}
			select {
			case out <- snap:
			case <-ctx.Done():
			}
		}

		poll()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				poll()
			}
		}
	}()
	return out
}
