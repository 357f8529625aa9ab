package handlers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"rotorhub/external/interfaces"
	"rotorhub/internal/exceptions"
	httpclient "rotorhub/internal/http"
	"rotorhub/internal/metrics"
	"rotorhub/internal/schema"
	env "rotorhub/internal/secret"
)

// ServiceFactory hides the concrete factory so the aggregator can be exercised
// against fakes.
type ServiceFactory interface {
	CreateFlightService(operator schema.OperatorCode) (interfaces.Flight, error)
}

// sourceOrder fixes the merge order of the aggregated response. Operators are
// fetched concurrently but always emitted in this sequence.
var sourceOrder = []schema.OperatorCode{schema.BHL, schema.NHV, schema.CHC}

// FlightAggregator encapsulates the dependencies and methods for merging the
// operator feeds into one daily schedule.
type FlightAggregator struct {
	ctx         context.Context
	client      *httpclient.HttpClient
	env         *env.Manager
	factory     ServiceFactory
	queryParams *schema.ScheduleQuery
}

func NewFlightAggregator(
	ctx context.Context,
	client *httpclient.HttpClient,
	env *env.Manager,
	factory ServiceFactory,
	queryParams *schema.ScheduleQuery,
) *FlightAggregator {
	return &FlightAggregator{
		ctx:         ctx,
		client:      client,
		env:         env,
		factory:     factory,
		queryParams: queryParams,
	}
}

// GetAllFlights fetches every requested operator concurrently and returns the
// concatenation in source order. The upstream feeds only publish the current
// day, so any other day is rejected before a single request goes out.
func (fa *FlightAggregator) GetAllFlights(day time.Time) ([]*schema.CommonFlight, error) {
	if !schema.SameDay(day, time.Now()) {
		return nil, &exceptions.DateRangeError{Requested: day}
	}

	operators := fa.requestedOperators()
	channels := make(map[schema.OperatorCode]<-chan []*schema.CommonFlight, len(operators))
	for _, operator := range operators {
		channels[operator] = fa.ConsolidateFlights(operator, day)
	}

	merged := make([]*schema.CommonFlight, 0, 32)
	for _, operator := range operators {
		merged = append(merged, <-channels[operator]...)
	}
	return merged, nil
}

// requestedOperators projects the query's operator set onto the fixed source
// order; an empty query means every ordered source.
func (fa *FlightAggregator) requestedOperators() []schema.OperatorCode {
	if len(fa.queryParams.Operator) == 0 {
		return sourceOrder
	}
	requested := make(map[schema.OperatorCode]bool, len(fa.queryParams.Operator))
	for _, operator := range fa.queryParams.Operator {
		requested[operator] = true
	}
	operators := make([]schema.OperatorCode, 0, len(sourceOrder))
	for _, operator := range sourceOrder {
		if requested[operator] {
			operators = append(operators, operator)
		}
	}
	return operators
}

// ConsolidateFlights creates a buffered channel carrying one operator's
// contribution.
func (fa *FlightAggregator) ConsolidateFlights(operator schema.OperatorCode, day time.Time) <-chan []*schema.CommonFlight {
	stream := make(chan []*schema.CommonFlight, 1)
	go func() {
		defer close(stream)
		select {
		case <-fa.ctx.Done():
			return
		case stream <- fa.FetchOperatorFlights(operator, day):
		}
	}()
	return stream
}

// FetchOperatorFlights fetches one operator's flights. A failing operator
// contributes nothing; it never poisons the merged response.
func (fa *FlightAggregator) FetchOperatorFlights(operator schema.OperatorCode, day time.Time) []*schema.CommonFlight {
	if fa.ctx.Err() != nil {
		log.Infof("Context canceled before fetching flights for %s", operator)
		return nil
	}
	service, err := fa.factory.CreateFlightService(operator)
	if err != nil {
		log.Errorf("Failed to create flight service: %s", err)
		metrics.OperatorFetchTotal.WithLabelValues(string(operator), metrics.OutcomeFailure).Inc()
		return nil
	}
	flights, err := service.FetchFlights(fa.ctx, fa.client, fa.env, day)
	if err != nil {
		sourceErr := &exceptions.SourceFetchError{Operator: string(operator), Err: err}
		log.Error(sourceErr)
		metrics.OperatorFetchTotal.WithLabelValues(string(operator), metrics.OutcomeFailure).Inc()
		return nil
	}
	metrics.OperatorFetchTotal.WithLabelValues(string(operator), metrics.OutcomeSuccess).Inc()

	valid := fa.ValidFlights(flights)
	metrics.FlightsEmittedTotal.WithLabelValues(string(operator)).Add(float64(len(valid)))
	return valid
}

// ValidFlights drops records that fail response validation instead of failing
// the batch.
func (fa *FlightAggregator) ValidFlights(flights []*schema.CommonFlight) []*schema.CommonFlight {
	valid := make([]*schema.CommonFlight, 0, len(flights))
	for _, flight := range flights {
		if err := schema.FlightResponseValidate.Struct(flight); err != nil {
			if validationErrors, ok := err.(validator.ValidationErrors); ok {
				log.Errorf("%+v\n", validationErrors.Error())
				continue
			}
		}
		valid = append(valid, flight)
	}
	return valid
}
