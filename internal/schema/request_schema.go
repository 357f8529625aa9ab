package schema

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// use a single instance of Validate, it caches struct info
var RequestValidate *validator.Validate

func init() {
	RequestValidate = validator.New(validator.WithRequiredStructEnabled())

	// Function to check if a string is in the YYYY-MM-DD format
	errDate := RequestValidate.RegisterValidation("isValidDate", func(fl validator.FieldLevel) bool {
		const layout = "2006-01-02"
		value := fl.Field().String()
		_, err := time.Parse(layout, value)
		return err == nil
	})
	if errDate != nil {
		return
	}
}

// Define the struct with field validations using Go tags
type ScheduleQuery struct {
	Date     string         `json:"date" validate:"omitempty,isValidDate" description:"YYYY-MM-DD, defaults to today; the upstream feeds only publish the current day"`
	Operator []OperatorCode `json:"operator" validate:"omitempty,dive,oneof=NHV BHL CHC OHS" example:"BHL,NHV"`
}

// Day resolves the requested calendar day, defaulting to today when the
// query carried no date.
func (sq *ScheduleQuery) Day() time.Time {
	if sq.Date == "" {
		return time.Now()
	}
	day, err := time.ParseInLocation("2006-01-02", sq.Date, time.Local)
	if err != nil {
		return time.Now()
	}
	return day
}

type PinnedQuery struct {
	Owner string `json:"owner" validate:"required,max=128" description:"Opaque key of the device/user owning the pinned set"`
}
