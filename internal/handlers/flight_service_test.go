package handlers

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotorhub/external/interfaces"
	"rotorhub/internal/exceptions"
	httpclient "rotorhub/internal/http"
	"rotorhub/internal/schema"
	env "rotorhub/internal/secret"
)

type fakeFlightService struct {
	flights []*schema.CommonFlight
	err     error
}

func (f *fakeFlightService) FetchFlights(ctx context.Context, c *httpclient.HttpClient, e *env.Manager, day time.Time) ([]*schema.CommonFlight, error) {
	return f.flights, f.err
}

type fakeFactory struct {
	services map[schema.OperatorCode]interfaces.Flight
	calls    int
}

func (f *fakeFactory) CreateFlightService(operator schema.OperatorCode) (interfaces.Flight, error) {
	f.calls++
	service, ok := f.services[operator]
	if !ok {
		return nil, fmt.Errorf("unsupported operator: %s", operator)
	}
	return service, nil
}

func testFlight(operator schema.OperatorCode, id string) *schema.CommonFlight {
	return &schema.CommonFlight{
		ID:           id,
		CapturedAt:   time.Now(),
		FlightNumber: id,
		Operator:     operator,
		Status:       schema.Status(schema.StatusOnTime),
	}
}

func newTestAggregator(factory ServiceFactory, query *schema.ScheduleQuery) *FlightAggregator {
	return NewFlightAggregator(context.Background(), nil, nil, factory, query)
}

func TestGetAllFlightsMergesInSourceOrder(t *testing.T) {
	factory := &fakeFactory{services: map[schema.OperatorCode]interfaces.Flight{
		schema.BHL: &fakeFlightService{flights: []*schema.CommonFlight{testFlight(schema.BHL, "B1"), testFlight(schema.BHL, "B2")}},
		schema.NHV: &fakeFlightService{flights: []*schema.CommonFlight{testFlight(schema.NHV, "N1")}},
		schema.CHC: &fakeFlightService{flights: []*schema.CommonFlight{testFlight(schema.CHC, "C1")}},
	}}
	aggregator := newTestAggregator(factory, &schema.ScheduleQuery{})

	flights, err := aggregator.GetAllFlights(time.Now())
	require.NoError(t, err)
	require.Len(t, flights, 4)
	ids := []string{flights[0].ID, flights[1].ID, flights[2].ID, flights[3].ID}
	assert.Equal(t, []string{"B1", "B2", "N1", "C1"}, ids, "concurrent fetches, fixed merge order")
}

func TestGetAllFlightsFailingOperatorContributesNothing(t *testing.T) {
	factory := &fakeFactory{services: map[schema.OperatorCode]interfaces.Flight{
		schema.BHL: &fakeFlightService{flights: []*schema.CommonFlight{testFlight(schema.BHL, "B1")}},
		schema.NHV: &fakeFlightService{err: errors.New("upstream 502")},
		schema.CHC: &fakeFlightService{flights: []*schema.CommonFlight{testFlight(schema.CHC, "C1")}},
	}}
	aggregator := newTestAggregator(factory, &schema.ScheduleQuery{})

	flights, err := aggregator.GetAllFlights(time.Now())
	require.NoError(t, err, "one broken feed never poisons the merged response")
	require.Len(t, flights, 2)
	assert.Equal(t, "B1", flights[0].ID)
	assert.Equal(t, "C1", flights[1].ID)
}

func TestGetAllFlightsRejectsOtherDaysBeforeFetching(t *testing.T) {
	factory := &fakeFactory{services: map[schema.OperatorCode]interfaces.Flight{}}
	aggregator := newTestAggregator(factory, &schema.ScheduleQuery{})

	_, err := aggregator.GetAllFlights(time.Now().AddDate(0, 0, -1))
	var dateRange *exceptions.DateRangeError
	require.ErrorAs(t, err, &dateRange)
	assert.Zero(t, factory.calls, "no upstream work for a day the feeds cannot serve")
}

func TestGetAllFlightsHonoursRequestedSubsetInSourceOrder(t *testing.T) {
	factory := &fakeFactory{services: map[schema.OperatorCode]interfaces.Flight{
		schema.BHL: &fakeFlightService{flights: []*schema.CommonFlight{testFlight(schema.BHL, "B1")}},
		schema.NHV: &fakeFlightService{flights: []*schema.CommonFlight{testFlight(schema.NHV, "N1")}},
		schema.CHC: &fakeFlightService{flights: []*schema.CommonFlight{testFlight(schema.CHC, "C1")}},
	}}
	// Requested out of order on purpose.
	aggregator := newTestAggregator(factory, &schema.ScheduleQuery{Operator: []schema.OperatorCode{schema.CHC, schema.BHL}})

	flights, err := aggregator.GetAllFlights(time.Now())
	require.NoError(t, err)
	require.Len(t, flights, 2)
	assert.Equal(t, "B1", flights[0].ID)
	assert.Equal(t, "C1", flights[1].ID)
}

func TestValidFlightsDropsInvalidRecords(t *testing.T) {
	aggregator := newTestAggregator(&fakeFactory{}, &schema.ScheduleQuery{})

	missingID := testFlight(schema.BHL, "B1")
	missingID.ID = ""
	valid := aggregator.ValidFlights([]*schema.CommonFlight{missingID, testFlight(schema.BHL, "B2")})
	require.Len(t, valid, 1)
	assert.Equal(t, "B2", valid[0].ID)
}
