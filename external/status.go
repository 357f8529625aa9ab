package external

import (
	"golang.org/x/text/cases"

	"rotorhub/internal/schema"
)

// Each operator owns an independent vocabulary mapping onto the same
// canonical set; BHL's "landed" and NHV's "arrived" both mean Arrived. An
// empty BHL status means "no exception reported", which is why it maps to
// OnTime there and nowhere else.
var statusVocabulary = map[schema.OperatorCode]map[string]schema.StatusCode{
	schema.BHL: {
		"landed":        schema.StatusArrived,
		"":              schema.StatusOnTime,
		"flight manned": schema.StatusPreparing,
		"check-in now":  schema.StatusPreparing,
		"flight called": schema.StatusPreparing,
		"outbound":      schema.StatusOutbound,
		"inbound":       schema.StatusInbound,
		"delayed":       schema.StatusDelayed,
		"cancelled":     schema.StatusCancelled,
	},
	schema.NHV: {
		"departed":  schema.StatusOutbound,
		"on-time":   schema.StatusOnTime,
		"boarding":  schema.StatusPreparing,
		"arrived":   schema.StatusArrived,
		"cancelled": schema.StatusCancelled,
		"inbound":   schema.StatusInbound,
		"delayed":   schema.StatusDelayed,
	},
	schema.CHC: {
		"departed":  schema.StatusOutbound,
		"ontime":    schema.StatusOnTime,
		"arrived":   schema.StatusArrived,
		"cancelled": schema.StatusCancelled,
		"inbound":   schema.StatusInbound,
		"delayed":   schema.StatusDelayed,
	},
}

var statusFolder = cases.Fold()

// MapStatus collapses an operator's raw status text into the canonical
// status. Case-insensitive; anything outside the operator's vocabulary keeps
// its original text in the unknown variant.
func MapStatus(operator schema.OperatorCode, rawStatus string) schema.FlightStatus {
	vocabulary, ok := statusVocabulary[operator]
	if !ok {
		return schema.UnknownStatus(rawStatus)
	}
	if code, ok := vocabulary[statusFolder.String(rawStatus)]; ok {
		return schema.Status(code)
	}
	return schema.UnknownStatus(rawStatus)
}
