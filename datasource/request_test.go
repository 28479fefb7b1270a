package datasource

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-report/models"
)

func TestNewRequest(t *testing.T) {
	r := NewRequest(models.Query{City: "Paris", Days: 1})
	assert.Equal(t, Request{Mode: ModeCurrent, City: "Paris"}, r)

	r = NewRequest(models.Query{City: "Tokyo", Days: 3, Scale: models.Fahrenheit})
	assert.Equal(t, Request{Mode: ModeForecast, City: "Tokyo", Days: 3}, r)
}

func TestRequestURL_SingleDayHasNoDays(t *testing.T) {
	raw := NewRequest(models.Query{City: "Paris", Days: 1}).URL("http://api.weatherapi.com/v1", "secret")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/v1/current.json", u.Path)
	assert.Equal(t, "secret", u.Query().Get("key"))
	assert.Equal(t, "Paris", u.Query().Get("q"))
	assert.False(t, u.Query().Has("days"))
}

func TestRequestURL_ForecastCarriesDays(t *testing.T) {
	for days := 2; days <= models.MaxDays; days++ {
		raw := NewRequest(models.Query{City: "Tokyo", Days: days}).URL("http://api.weatherapi.com/v1/", "secret")

		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "/v1/forecast.json", u.Path)
		assert.Equal(t, []string{string(rune('0' + days))}, u.Query()["days"])
	}
}

func TestRequestURL_EscapesCity(t *testing.T) {
	raw := NewRequest(models.Query{City: "New York & Co", Days: 1}).URL("http://example.test/v1", "k")
	assert.Equal(t, "http://example.test/v1/current.json?key=k&q=New+York+%26+Co", raw)
}
