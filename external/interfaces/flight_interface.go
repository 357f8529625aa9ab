package interfaces

import (
	"context"
	"fmt"
	"sync"
	"time"

	"rotorhub/internal/schema"
	env "rotorhub/internal/secret"

	httpclient "rotorhub/internal/http"
)

type HeaderParams struct {
	Headers map[string]string
	Params  map[string]string
}

// Might have different way of fetching flights
type Flight interface {
	FetchFlights(ctx context.Context, c *httpclient.HttpClient, e *env.Manager, day time.Time) ([]*schema.CommonFlight, error)
}

type FlightArgs struct {
	Env *env.Manager
	Day time.Time
}

// Each operator has a different struct to manage its request construction and
// flight generation, so we built an interface to ignore the underlying struct.
// A provider plans one request per page it needs: the JSON feeds plan a single
// GET, the scraped portal plans two POSTs (departures, then arrivals). The
// payloads arrive at GenerateFlights in plan order.
type FlightProvider interface {
	RequestPlans(args *FlightArgs) []HeaderParams
	GenerateFlights(pages [][]byte, day time.Time) ([]*schema.CommonFlight, error)
}

type FlightConfig struct {
	FlightURL    string
	Method       string
	FlightExpiry time.Duration
	Namespace    string
}

type FlightService struct {
	FlightConfig
	FlightProvider
}

// FetchFlights retrieves every planned page concurrently and feeds the
// results to the provider. All pages must succeed: a provider cannot join a
// departure page against a missing arrival page.
func (fs *FlightService) FetchFlights(ctx context.Context, c *httpclient.HttpClient, e *env.Manager, day time.Time) ([]*schema.CommonFlight, error) {
	arguments := &FlightArgs{Env: e, Day: day}
	plans := fs.FlightProvider.RequestPlans(arguments)

	pages := make([][]byte, len(plans))
	errs := make([]error, len(plans))
	var wg sync.WaitGroup
	for i, plan := range plans {
		wg.Add(1)
		go func(i int, plan HeaderParams) {
			defer wg.Done()
			pageURL := fs.FlightConfig.FlightURL
			// POST form bodies never reach the URL, so the page index keeps
			// the two portal directions apart in the cache.
			namespace := fmt.Sprintf("%s page %d", fs.FlightConfig.Namespace, i)
			pages[i], errs[i] = c.Fetch(ctx, fs.FlightConfig.Method, &pageURL, &plan.Params, &plan.Headers, namespace, fs.FlightConfig.FlightExpiry)
		}(i, plan)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return fs.FlightProvider.GenerateFlights(pages, day)
}
