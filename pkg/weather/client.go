package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultEndpoint = "https://api.weatherapi.com/v1"

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrUnavailable      = errors.New("Weather service unavailable - WEATHER_API_KEY not configured")
)

type Location struct {
	Name   string  `json:"name"`
	Region string  `json:"region"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

type Day struct {
	Date      string  `json:"date"`
	MaxC      float64 `json:"max_c"`
	MinC      float64 `json:"min_c"`
	AvgC      float64 `json:"avg_c"`
	RainMM    float64 `json:"rain_mm"`
	Humidity  float64 `json:"humidity"`
	WindKPH   float64 `json:"wind_kph"`
	Condition string  `json:"condition"`
}

type Forecast struct {
	Location Location `json:"location"`
	Days     []Day    `json:"days"`
}

type Client struct {
	endpoint string
	key      string
	httpc    *http.Client
}

func New(endpoint, key string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{endpoint: endpoint, key: key, httpc: &http.Client{Timeout: 15 * time.Second}}
}

func (c *Client) Configured() bool { return c.key != "" }

// Geocode resolves a free-text location to coordinates via the provider's
// search endpoint. An empty result set means the location is unknown.
func (c *Client) Geocode(ctx context.Context, location string) (*Location, error) {
	if !c.Configured() {
		return nil, ErrUnavailable
	}
	var out []struct {
		Name   string  `json:"name"`
		Region string  `json:"region"`
		Lat    float64 `json:"lat"`
		Lon    float64 `json:"lon"`
	}
	q := url.Values{"key": {c.key}, "q": {location}}
	if err := c.getJSON(ctx, "/search.json?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrLocationNotFound
	}
	first := out[0]
	return &Location{Name: first.Name, Region: first.Region, Lat: first.Lat, Lon: first.Lon}, nil
}

// FetchForecast geocodes the location, then pulls a multi-day forecast for
// its coordinates.
func (c *Client) FetchForecast(ctx context.Context, location string, days int) (*Forecast, error) {
	loc, err := c.Geocode(ctx, location)
	if err != nil {
		return nil, err
	}
	if days <= 0 || days > 14 {
		days = 7
	}

	var out struct {
		Forecast struct {
			ForecastDay []struct {
				Date string `json:"date"`
				Day  struct {
					MaxTempC     float64 `json:"maxtemp_c"`
					MinTempC     float64 `json:"mintemp_c"`
					AvgTempC     float64 `json:"avgtemp_c"`
					TotalPrecMM  float64 `json:"totalprecip_mm"`
					AvgHumidity  float64 `json:"avghumidity"`
					MaxWindKPH   float64 `json:"maxwind_kph"`
					Condition    struct {
						Text string `json:"text"`
					} `json:"condition"`
				} `json:"day"`
			} `json:"forecastday"`
		} `json:"forecast"`
	}
	q := url.Values{
		"key":    {c.key},
		"q":      {fmt.Sprintf("%f,%f", loc.Lat, loc.Lon)},
		"days":   {fmt.Sprintf("%d", days)},
		"aqi":    {"no"},
		"alerts": {"no"},
	}
	if err := c.getJSON(ctx, "/forecast.json?"+q.Encode(), &out); err != nil {
		return nil, err
	}

	fc := &Forecast{Location: *loc}
	for _, fd := range out.Forecast.ForecastDay {
		fc.Days = append(fc.Days, Day{
			Date:      fd.Date,
			MaxC:      fd.Day.MaxTempC,
			MinC:      fd.Day.MinTempC,
			AvgC:      fd.Day.AvgTempC,
			RainMM:    fd.Day.TotalPrecMM,
			Humidity:  fd.Day.AvgHumidity,
			WindKPH:   fd.Day.MaxWindKPH,
			Condition: fd.Day.Condition.Text,
		})
	}
	return fc, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		strings.TrimRight(c.endpoint, "/")+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weatherapi: status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
