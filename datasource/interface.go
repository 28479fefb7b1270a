package datasource

import (
	"context"

	"weather-report/models"
)

// WeatherSource is an interface for services that can answer a weather Request
type WeatherSource interface {
	// FetchWeather performs the request and returns the decoded payload
	FetchWeather(ctx context.Context, req Request) (*models.WeatherResponse, error)

	// Name returns the source's name
	Name() string
}
