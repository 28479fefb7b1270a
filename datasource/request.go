package datasource

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"weather-report/models"
)

// Mode selects the provider endpoint
type Mode string

const (
	ModeCurrent  Mode = "current"
	ModeForecast Mode = "forecast"
)

// Request is the provider-facing form of a Query. Days is only meaningful in
// forecast mode and is zero otherwise.
type Request struct {
	Mode Mode
	City string
	Days int
}

// NewRequest selects the endpoint for q: a single day uses the current-conditions
// endpoint with no day count, more days use the forecast endpoint.
func NewRequest(q models.Query) Request {
	if q.Days <= models.MinDays {
		return Request{Mode: ModeCurrent, City: q.City}
	}
	return Request{Mode: ModeForecast, City: q.City, Days: q.Days}
}

// URL builds the full request URL against baseURL, e.g.
// http://api.weatherapi.com/v1/forecast.json?days=3&key=KEY&q=Tokyo
func (r Request) URL(baseURL, apiKey string) string {
	endpoint := fmt.Sprintf("%s/%s.json", strings.TrimRight(baseURL, "/"), r.Mode)

	params := url.Values{}
	params.Add("key", apiKey)
	params.Add("q", r.City)
	if r.Mode == ModeForecast {
		params.Add("days", strconv.Itoa(r.Days))
	}

	return endpoint + "?" + params.Encode()
}
