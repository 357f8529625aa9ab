package external

import (
	"encoding/json"
	"strings"
	"time"

	"rotorhub/external/interfaces"
	"rotorhub/internal/schema"
)

type BhlFlightResponse []BhlFlight

// Flat record with "HH:MM" display times. atd/ata are absent until the leg
// actually moves.
type BhlFlight struct {
	Std     string  `json:"std"`
	Atd     *string `json:"atd"`
	Ata     *string `json:"ata"`
	Flight  string  `json:"flight"`
	Company string  `json:"company"`
	Eta     string  `json:"eta"`
	Status  string  `json:"status"`
	Routing string  `json:"routing"`
}

const bhlRoutingDelimiter = " / "

func (bfr *BhlFlightResponse) RequestPlans(p *interfaces.FlightArgs) []interfaces.HeaderParams {
	flightHeaders := map[string]string{
		"Accept":          "application/json",
		"Accept-Encoding": "gzip, deflate, br",
	}
	flightParams := map[string]string{
		"basename_id": *p.Env.BhlBaseID,
		"date":        p.Day.Format("02-Jan-2006"),
	}
	return []interfaces.HeaderParams{{Headers: flightHeaders, Params: flightParams}}
}

func (bfr *BhlFlightResponse) GenerateFlights(pages [][]byte, day time.Time) ([]*schema.CommonFlight, error) {
	var bhlFlightData BhlFlightResponse
	if err := json.Unmarshal(pages[0], &bhlFlightData); err != nil {
		return nil, err
	}

	var bhlFlightList = make([]*schema.CommonFlight, 0, len(bhlFlightData))
	for _, flight := range bhlFlightData {
		var atdDate *time.Time
		if flight.Atd != nil {
			atdDate = ResolveWallClock(*flight.Atd, day)
		}
		flightResult := &schema.CommonFlight{
			// No identifier in the payload; scheduled time + flight number +
			// routing is stable within one day's batch.
			ID:                flight.Std + flight.Flight + flight.Routing,
			CapturedAt:        time.Now(),
			FlightNumber:      flight.Flight,
			Routing:           flight.Routing,
			RoutingComponents: strings.Split(flight.Routing, bhlRoutingDelimiter),
			Status:            MapStatus(schema.BHL, flight.Status),
			Operator:          schema.BHL,
			Client:            flight.Company,
			Std:               flight.Std,
			Eta:               flight.Eta,
			Atd:               flight.Atd,
			Ata:               flight.Ata,
			StdDate:           ResolveWallClock(flight.Std, day),
			AtdDate:           atdDate,
			EtaDate:           ResolveWallClock(flight.Eta, day),
		}
		bhlFlightList = append(bhlFlightList, flightResult)
	}
	return bhlFlightList, nil
}
