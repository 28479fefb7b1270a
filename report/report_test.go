package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-report/models"
)

func parisResponse() *models.WeatherResponse {
	return &models.WeatherResponse{
		Location: models.Location{Name: "Paris", Country: "France"},
		Current: models.Current{
			TempC:     17,
			TempF:     62.6,
			Condition: models.Condition{Text: "Partly cloudy"},
		},
	}
}

func tokyoResponse() *models.WeatherResponse {
	day := func(date string, c, f float64, text, rise, set string) models.ForecastDay {
		return models.ForecastDay{
			Date:  date,
			Day:   models.Day{AvgTempC: c, AvgTempF: f, Condition: models.Condition{Text: text}},
			Astro: models.Astro{Sunrise: rise, Sunset: set},
		}
	}
	return &models.WeatherResponse{
		Location: models.Location{Name: "Tokyo", Country: "Japan"},
		Current:  models.Current{TempC: 21.3, TempF: 70.3, Condition: models.Condition{Text: "Sunny"}},
		Forecast: &models.Forecast{ForecastDay: []models.ForecastDay{
			day("2024-05-14", 19.4, 66.9, "Sunny", "04:35 AM", "06:36 PM"),
			day("2024-05-15", 18, 64.4, "Patchy rain nearby", "04:34 AM", "06:37 PM"),
			day("2024-05-16", 20.5, 68.9, "Overcast", "04:33 AM", "06:38 PM"),
		}},
	}
}

func TestRender_SingleDay(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewPresenter(&out, PlainStyler{}).Render(parisResponse(), models.Celsius))

	want := "\n ********************* \n *  WEATHER PROGRAM  * \n ********************* \n" +
		"\nIt is now 17°C in Paris, France\n" +
		"The current weather conditions are: \"Partly cloudy\"\n\n"
	assert.Equal(t, want, out.String())
	assert.NotContains(t, out.String(), "FORECAST")
}

func TestRender_Forecast(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewPresenter(&out, PlainStyler{}).Render(tokyoResponse(), models.Fahrenheit))
	s := out.String()

	assert.Contains(t, s, "WEATHER PROGRAM")
	assert.Contains(t, s, "In Tokyo the current temperature is: 70.3°F\n")
	assert.Contains(t, s, "* THE WEATHER FORECAST FOR TOKYO, JAPAN FOR THE NEXT THREE DAYS *")
	assert.Equal(t, 3, strings.Count(s, "Day: "))
	assert.NotContains(t, s, "°C")

	first := strings.Index(s, "Day: 2024-05-14")
	second := strings.Index(s, "Day: 2024-05-15")
	third := strings.Index(s, "Day: 2024-05-16")
	require.True(t, first >= 0 && second >= 0 && third >= 0)
	assert.Less(t, first, second)
	assert.Less(t, second, third)

	assert.Contains(t, s, "Day: 2024-05-15\nAverage Temperature: 64.4°F\nWeather Conditions: Patchy rain nearby\nSunrise: 04:34 AM\nSunset: 06:37 PM\n")
}

func TestRender_ForecastCelsius(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewPresenter(&out, PlainStyler{}).Render(tokyoResponse(), models.Celsius))

	assert.Contains(t, out.String(), "Average Temperature: 18°C\n")
	assert.NotContains(t, out.String(), "°F")
}

func TestRender_BannerUsesReturnedDayCount(t *testing.T) {
	resp := tokyoResponse()
	resp.Forecast.ForecastDay = resp.Forecast.ForecastDay[:2]

	var out bytes.Buffer
	require.NoError(t, NewPresenter(&out, PlainStyler{}).Render(resp, models.Celsius))
	assert.Contains(t, out.String(), "FOR THE NEXT TWO DAYS")
}

func TestFormatTemperature(t *testing.T) {
	for _, v := range []float64{-40, -3.5, 0, 17, 62.6, 100.25} {
		assert.True(t, strings.HasSuffix(FormatTemperature(v, models.Fahrenheit), "°F"))
		assert.True(t, strings.HasSuffix(FormatTemperature(v, models.Celsius), "°C"))
	}
	assert.Equal(t, "17°C", FormatTemperature(17, models.Celsius))
	assert.Equal(t, "-3.5°F", FormatTemperature(-3.5, models.Fahrenheit))
}

func TestDayCountWord(t *testing.T) {
	assert.Equal(t, "TWO", DayCountWord(2))
	assert.Equal(t, "THREE", DayCountWord(3))
	assert.Equal(t, "FOUR", DayCountWord(4))
	assert.Equal(t, "FIVE", DayCountWord(5))
	assert.Equal(t, "1", DayCountWord(1))
	assert.Equal(t, "7", DayCountWord(7))
}

func TestRender_ANSI(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewPresenter(&out, NewANSIStyler()).Render(parisResponse(), models.Fahrenheit))

	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "62.6°F")
}
