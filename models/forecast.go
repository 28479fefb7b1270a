package models

// Forecast wraps the per-day records, in the chronological order the provider returned them.
type Forecast struct {
	ForecastDay []ForecastDay `json:"forecastday"`
}

// ForecastDay is a single day of a multi-day forecast
type ForecastDay struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Day   Day    `json:"day"`
	Astro Astro  `json:"astro"`
}

// Day holds the daily aggregates
type Day struct {
	AvgTempC  float64   `json:"avgtemp_c"`
	AvgTempF  float64   `json:"avgtemp_f"`
	Condition Condition `json:"condition"`
}

// Astro holds sunrise and sunset as the provider formats them ("06:45 AM")
type Astro struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// AvgTemperature returns the day's average temperature in the requested scale.
func (d Day) AvgTemperature(scale Scale) float64 {
	if scale == Fahrenheit {
		return d.AvgTempF
	}
	return d.AvgTempC
}
