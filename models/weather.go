package models

// WeatherResponse represents the payload returned by the weather provider.
// Forecast is nil for current-conditions requests.
type WeatherResponse struct {
	Location Location  `json:"location"`
	Current  Current   `json:"current"`
	Forecast *Forecast `json:"forecast,omitempty"`
}

// Location is the provider-resolved place the data belongs to
type Location struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Current holds the current conditions
type Current struct {
	TempC     float64   `json:"temp_c"`
	TempF     float64   `json:"temp_f"`
	Condition Condition `json:"condition"`
}

// Condition is a short text description such as "Partly cloudy"
type Condition struct {
	Text string `json:"text"`
}

// Temperature returns the current temperature in the requested scale.
func (c Current) Temperature(scale Scale) float64 {
	if scale == Fahrenheit {
		return c.TempF
	}
	return c.TempC
}
