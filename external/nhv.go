package external

import (
	"encoding/json"
	"strings"
	"time"

	"rotorhub/external/interfaces"
	"rotorhub/internal/schema"
)

type NhvFlightResponse []NhvFlight

type NhvFlight struct {
	ID                    string        `json:"ID"`
	Model                 string        `json:"Model"`
	FlightNumber          string        `json:"FlightNumber"`
	Customer              string        `json:"Customer"`
	ScheduleDepartureTime string        `json:"ScheduleDepartureTime"`
	ScheduleArrivalTime   string        `json:"ScheduleArrivalTime"`
	FlightRouting         []NhvWaypoint `json:"Routing"`
	Status                string        `json:"Status"`
	WelcomeClass          string        `json:"Class"`
	IsDelayedClassName    string        `json:"isDelayedClassName"`
	ArrivalTime           string        `json:"arrivalTime"`
	DepartureTime         string        `json:"departureTime"`
}

type NhvWaypoint struct {
	Place     string `json:"Place"`
	PlaceName string `json:"PlaceName"`
}

const nhvRoutingDelimiter = " - "

func (nfr *NhvFlightResponse) RequestPlans(p *interfaces.FlightArgs) []interfaces.HeaderParams {
	flightHeaders := map[string]string{
		"Accept":          "application/json",
		"Accept-Encoding": "gzip, deflate, br",
	}
	return []interfaces.HeaderParams{{Headers: flightHeaders, Params: map[string]string{}}}
}

func (nfr *NhvFlightResponse) GenerateFlights(pages [][]byte, day time.Time) ([]*schema.CommonFlight, error) {
	var nhvFlightData NhvFlightResponse
	if err := json.Unmarshal(pages[0], &nhvFlightData); err != nil {
		return nil, err
	}

	var nhvFlightList = make([]*schema.CommonFlight, 0, len(nhvFlightData))
	for _, flight := range nhvFlightData {
		routing := nfr.GenerateRouting(flight.FlightRouting)
		stdDate := ResolveInstant(flight.ScheduleDepartureTime)
		etaDate := ResolveInstant(flight.ScheduleArrivalTime)
		flightResult := &schema.CommonFlight{
			ID:                flight.ID,
			CapturedAt:        time.Now(),
			FlightNumber:      flight.FlightNumber,
			Routing:           routing,
			RoutingComponents: strings.Split(routing, nhvRoutingDelimiter),
			Status:            MapStatus(schema.NHV, flight.Status),
			Operator:          schema.NHV,
			Client:            flight.Customer,
			Std:               WallClockDisplay(stdDate),
			Eta:               WallClockDisplay(etaDate),
			StdDate:           stdDate,
			AtdDate:           ResolveInstant(flight.DepartureTime),
			EtaDate:           etaDate,
		}
		nhvFlightList = append(nhvFlightList, flightResult)
	}
	return nhvFlightList, nil
}

func (nfr *NhvFlightResponse) GenerateRouting(waypoints []NhvWaypoint) string {
	places := make([]string, 0, len(waypoints))
	for _, waypoint := range waypoints {
		places = append(places, waypoint.Place)
	}
	return strings.Join(places, nhvRoutingDelimiter)
}
