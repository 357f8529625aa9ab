package external

import (
	"strconv"
	"strings"
	"time"

	"rotorhub/external/interfaces"
	"rotorhub/internal/htmlparser"
	"rotorhub/internal/schema"
)

type ChcFlightResponse struct{}

// Direction flag values of the portal's radio button.
const (
	chcDeparturePage = "1"
	chcArrivalPage   = "0"
)

// Every display field on this source falls back to the literal sentinel the
// portal UI itself shows, never to an absent value.
const notAvailable = "N/A"

const chcRoutingDelimiter = " / "

// RequestPlans builds the two form submissions the portal needs: departures
// first, arrivals second. GenerateFlights relies on that order.
func (cfr *ChcFlightResponse) RequestPlans(p *interfaces.FlightArgs) []interfaces.HeaderParams {
	return []interfaces.HeaderParams{
		cfr.pagePlan(p, chcDeparturePage),
		cfr.pagePlan(p, chcArrivalPage),
	}
}

func (cfr *ChcFlightResponse) pagePlan(p *interfaces.FlightArgs, direction string) interfaces.HeaderParams {
	pageHeaders := map[string]string{
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Encoding": "gzip, deflate, br",
		"Cache-Control":   "max-age=0",
		"Content-Type":    "application/x-www-form-urlencoded",
	}
	pageParams := map[string]string{
		"ddlDay":            strconv.Itoa(p.Day.Day()),
		"ddlMonth":          strconv.Itoa(int(p.Day.Month())),
		"ddlYear":           strconv.Itoa(p.Day.Year()),
		"ddlCountry":        *p.Env.ChcCountry,
		"ddlBase":           *p.Env.ChcBase,
		"btGetFlight":       "Get+Schedules",
		"rbDeptArr":         direction,
		"__VIEWSTATE":       *p.Env.ChcViewState,
		"__EVENTVALIDATION": *p.Env.ChcEventValidation,
	}
	return interfaces.HeaderParams{Headers: pageHeaders, Params: pageParams}
}

func (cfr *ChcFlightResponse) GenerateFlights(pages [][]byte, day time.Time) ([]*schema.CommonFlight, error) {
	extractor := htmlparser.NewExtractor()
	departures, err := extractor.ExtractRows(string(pages[0]))
	if err != nil {
		return nil, err
	}
	arrivals, err := extractor.ExtractRows(string(pages[1]))
	if err != nil {
		return nil, err
	}
	return JoinLegs(departures, arrivals), nil
}

// JoinLegs reconciles the two independently rendered pages into one record
// per departure row. Arrivals without a departure counterpart are dropped:
// departures are authoritative for this feed. The arrival leg's status wins
// unless it reports no exception ("OnTime"), in which case the departure
// leg's status is kept; that fallback chain is the portal's only
// cross-record rule and must stay exactly as is.
func JoinLegs(departures, arrivals []htmlparser.FieldSet) []*schema.CommonFlight {
	var chcFlightList = make([]*schema.CommonFlight, 0, len(departures))
	for _, departure := range departures {
		arrival, matched := firstArrivalMatch(arrivals, *departure.FlightNumber)

		eta := notAvailable
		statusText := orNotAvailable(departure.Status)
		if matched {
			eta = coalesce(arrival.RevisedTime, arrival.ScheduledTime)
			if arrival.Status != nil && *arrival.Status != "OnTime" {
				statusText = *arrival.Status
			} else if arrival.Status != nil {
				statusText = orNotAvailable(departure.Status)
			} else {
				statusText = notAvailable
			}
		}

		routing := orNotAvailable(departure.Routing)
		flightResult := &schema.CommonFlight{
			ID:                *departure.FlightNumber,
			CapturedAt:        time.Now(),
			FlightNumber:      *departure.FlightNumber,
			Routing:           routing,
			RoutingComponents: strings.Split(routing, chcRoutingDelimiter),
			Status:            MapStatus(schema.CHC, statusText),
			Operator:          schema.CHC,
			Client:            orNotAvailable(departure.Customer),
			Std:               orNotAvailable(departure.ScheduledTime),
			Eta:               eta,
		}
		chcFlightList = append(chcFlightList, flightResult)
	}
	return chcFlightList
}

// First match wins; the portal publishes each flight number once per day.
func firstArrivalMatch(arrivals []htmlparser.FieldSet, flightNumber string) (htmlparser.FieldSet, bool) {
	for _, arrival := range arrivals {
		if arrival.FlightNumber != nil && *arrival.FlightNumber == flightNumber {
			return arrival, true
		}
	}
	return htmlparser.FieldSet{}, false
}

func orNotAvailable(value *string) string {
	if value == nil {
		return notAvailable
	}
	return *value
}

func coalesce(values ...*string) string {
	for _, value := range values {
		if value != nil {
			return *value
		}
	}
	return notAvailable
}
