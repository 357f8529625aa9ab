package schema

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
)

var FlightResponseValidate *validator.Validate

func init() {
	FlightResponseValidate = validator.New(validator.WithRequiredStructEnabled())
	FlightResponseValidate.RegisterStructValidation(CommonFlightValidation, CommonFlight{})
}

// Enum for the canonical flight status. The raw text of an untranslated source
// status travels with the unknown variant so it is never lost.
type StatusCode string

const (
	StatusDelayed   StatusCode = "delayed"
	StatusOnTime    StatusCode = "onTime"
	StatusPreparing StatusCode = "preparing"
	StatusCancelled StatusCode = "cancelled"
	StatusOutbound  StatusCode = "outbound"
	StatusInbound   StatusCode = "inbound"
	StatusArrived   StatusCode = "arrived"
	StatusUnknown   StatusCode = "unknown"
)

type FlightStatus struct {
	Code StatusCode `json:"code" validate:"required,oneof=delayed onTime preparing cancelled outbound inbound arrived unknown"`
	Raw  string     `json:"raw,omitempty"`
}

func Status(code StatusCode) FlightStatus {
	return FlightStatus{Code: code}
}

func UnknownStatus(raw string) FlightStatus {
	return FlightStatus{Code: StatusUnknown, Raw: raw}
}

// MarshalJSON adds the display label alongside the canonical code so clients
// never need their own status wording table.
func (fs FlightStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Code  StatusCode `json:"code"`
		Raw   string     `json:"raw,omitempty"`
		Label string     `json:"label"`
	}{Code: fs.Code, Raw: fs.Raw, Label: fs.Label()})
}

func (fs FlightStatus) Label() string {
	switch fs.Code {
	case StatusDelayed:
		return "Flight delayed"
	case StatusOnTime:
		return "On Time"
	case StatusPreparing:
		return "Flight preparing"
	case StatusCancelled:
		return "Flight cancelled"
	case StatusOutbound:
		return "Flight outbound"
	case StatusInbound:
		return "Flight inbound"
	case StatusArrived:
		return "Flight arrived"
	default:
		if fs.Raw != "" {
			return fs.Raw
		}
		return "Unknown"
	}
}

type OperatorCode string

const (
	NHV OperatorCode = "NHV"
	BHL OperatorCode = "BHL"
	CHC OperatorCode = "CHC"
	OHS OperatorCode = "OHS"
)

func (o OperatorCode) ShortName() string {
	return string(o)
}

func (o OperatorCode) Label() string {
	switch o {
	case NHV:
		return "Noordzee Helikopters Vlaanderen"
	case BHL:
		return "Bristow Helicopters"
	case CHC:
		return "CHC Helicopter Corporation"
	case OHS:
		return "Offshore Helicopter Services"
	default:
		return string(o)
	}
}

// CommonFlight is the unified record every operator feed converges to.
// ID is only unique within one operator's daily batch; two operators may
// reuse the same flight number.
type CommonFlight struct {
	ID                string       `json:"id" validate:"required"`
	CapturedAt        time.Time    `json:"capturedAt" validate:"required"`
	FlightNumber      string       `json:"flightNumber" validate:"required"`
	Routing           string       `json:"routing"`
	RoutingComponents []string     `json:"routingComponents"`
	Status            FlightStatus `json:"flightStatus"`
	Operator          OperatorCode `json:"operator" validate:"required,oneof=NHV BHL CHC OHS"`
	Client            string       `json:"client"`
	Std               string       `json:"std"`
	Eta               string       `json:"eta"`
	Atd               *string      `json:"atd,omitempty"`
	Ata               *string      `json:"ata,omitempty"`
	StdDate           *time.Time   `json:"stdDate,omitempty"`
	AtdDate           *time.Time   `json:"atdDate,omitempty"`
	EtaDate           *time.Time   `json:"etaDate,omitempty"`
}

// IsToday reports whether the record was captured on the current calendar day.
// This is the sole expiry rule for persisted flights.
func (cf *CommonFlight) IsToday() bool {
	return SameDay(cf.CapturedAt, time.Now())
}

func (cf *CommonFlight) IsLate() bool {
	return IsLate(cf.StdDate, cf.AtdDate)
}

// IsLate is deliberately false when either side is missing, not indeterminate.
func IsLate(std, atd *time.Time) bool {
	if std == nil || atd == nil {
		return false
	}
	return atd.After(*std)
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func CommonFlightValidation(sl validator.StructLevel) {
	cf := sl.Current().Interface().(CommonFlight)

	if cf.Routing != "" && len(cf.RoutingComponents) == 0 {
		sl.ReportError(cf.RoutingComponents, "routingComponents", "RoutingComponents", "routingComponentsDerived", cf.Routing)
	}

	if cf.Status.Code == "" {
		sl.ReportError(cf.Status, "flightStatus", "Status", "statusAlwaysMapped", "")
	}
}

// ScheduleResponse is the body of the aggregated flights endpoint.
type ScheduleResponse struct {
	Date    string          `json:"date"`
	Count   int             `json:"count"`
	Flights []*CommonFlight `json:"flights"`
}
