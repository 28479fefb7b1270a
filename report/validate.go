package report

import (
	"golang.org/x/text/cases"

	apperrors "weather-report/errors"
	"weather-report/models"
)

// CheckLocation verifies the provider resolved the query to the city that was asked for.
// The comparison is a case-insensitive exact match; anything else is a mismatch.
func CheckLocation(resp *models.WeatherResponse, requested string) error {
	fold := cases.Fold()
	if fold.String(requested) != fold.String(resp.Location.Name) {
		return apperrors.LocationMismatch(requested, resp.Location.Name)
	}
	return nil
}
