package datasource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	apperrors "weather-report/errors"
	"weather-report/logger"
	"weather-report/models"
)

// WeatherAPIProvider fetches current conditions and forecasts from WeatherAPI.com
type WeatherAPIProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewWeatherAPIProvider creates a new WeatherAPI provider. A nil client uses
// an http.Client with no timeout of its own.
func NewWeatherAPIProvider(apiKey, baseURL string, client *http.Client) *WeatherAPIProvider {
	if client == nil {
		client = &http.Client{}
	}
	return &WeatherAPIProvider{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: client,
	}
}

// Name returns the provider name
func (p *WeatherAPIProvider) Name() string {
	return "WeatherAPI"
}

// providerError is the body WeatherAPI.com sends with 4xx responses
type providerError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// FetchWeather performs a single GET and decodes the response.
// Non-2xx statuses come back as an API error carrying the status; anything
// else that goes wrong is an unexpected error.
func (p *WeatherAPIProvider) FetchWeather(ctx context.Context, r Request) (*models.WeatherResponse, error) {
	log := logger.GetLogger()

	reqURL := r.URL(p.baseURL, p.apiKey)
	log.Debugw("Requesting weather",
		"provider", p.Name(),
		"mode", r.Mode,
		"url", p.maskedURL(r))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperrors.Unexpected(err, "failed to create request")
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Unexpected(p.redact(err, r), "failed to execute request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Unexpected(err, "failed to read response body")
	}
	log.Debugw("Weather response", "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var pe providerError
		if err := json.Unmarshal(body, &pe); err != nil {
			log.Debugw("Error body is not JSON", "error", err)
		}
		log.Debugw("Provider error", "status", resp.StatusCode, "code", pe.Error.Code, "message", pe.Error.Message)
		return nil, apperrors.APIFailure(resp.StatusCode, http.StatusText(resp.StatusCode), pe.Error.Message)
	}

	var weather models.WeatherResponse
	if err := json.Unmarshal(body, &weather); err != nil {
		return nil, apperrors.Unexpected(err, "failed to parse response")
	}
	if weather.Location.Name == "" {
		return nil, apperrors.Unexpected(fmt.Errorf("response has no location"), "failed to parse response")
	}

	if weather.Forecast != nil {
		log.Debugw("Decoded forecast", "days", len(weather.Forecast.ForecastDay))
	}
	return &weather, nil
}

func (p *WeatherAPIProvider) maskedURL(r Request) string {
	return r.URL(p.baseURL, logger.MaskAPIKey(p.apiKey))
}

// redact swaps the request URL inside transport errors for one with the key
// masked, since *url.Error prints the URL it failed on.
func (p *WeatherAPIProvider) redact(err error, r Request) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	return &url.Error{Op: urlErr.Op, URL: p.maskedURL(r), Err: urlErr.Err}
}

var _ WeatherSource = (*WeatherAPIProvider)(nil)
