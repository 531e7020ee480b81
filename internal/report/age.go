package report

import (
	"time"

	"github.com/araddon/dateparse"
	"go.uber.org/zap"
)

// ComputeAge parses a free-form date-of-birth string and returns the age in
// completed years as of now. Any unparseable input yields 0 with a warning;
// parse problems never reach the caller.
func ComputeAge(dob string, now time.Time) int {
	birth, err := dateparse.ParseAny(dob)
	if err != nil {
		zap.L().Warn("could not parse date of birth, defaulting age to 0",
			zap.String("dob", dob),
			zap.Error(err),
		)
		return 0
	}

	age := now.Year() - birth.Year()
	// birthday not yet reached this year
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
