package external

import (
	"testing"
	"time"

	"rotorhub/external/interfaces"
	env "rotorhub/internal/secret"
)

// planArgs builds request-plan arguments around a partially filled env
// manager; each adapter only dereferences its own fields.
func planArgs(t *testing.T, day time.Time, bhlBaseID *string) *interfaces.FlightArgs {
	t.Helper()
	return &interfaces.FlightArgs{
		Env: &env.Manager{OperatorEnvConfig: env.OperatorEnvConfig{BhlBaseID: bhlBaseID}},
		Day: day,
	}
}

func chcPlanArgs(t *testing.T, day time.Time) *interfaces.FlightArgs {
	t.Helper()
	base, country := "ABZ", "EG"
	viewState, eventValidation := "dDwtMTIzNDU2Nzg5", "/wEWAgL+1234"
	return &interfaces.FlightArgs{
		Env: &env.Manager{OperatorEnvConfig: env.OperatorEnvConfig{
			ChcBase:            &base,
			ChcCountry:         &country,
			ChcViewState:       &viewState,
			ChcEventValidation: &eventValidation,
		}},
		Day: day,
	}
}
