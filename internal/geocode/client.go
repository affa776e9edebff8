package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const resultLimit = 5

// Location - один результат геокодирования
type Location struct {
	DisplayName string  `json:"display_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Client - прокси к Nominatim (OpenStreetMap). Вызывается строго вне мьютексов
// ядра: геокодирование - внешний медленный вызов и в захваченной секции ему не место.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient создает клиент геокодирования
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// nominatimResult - сырой ответ Nominatim, координаты приходят строками
type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Search выполняет прямое геокодирование адреса
func (c *Client) Search(ctx context.Context, address string) ([]Location, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=%d", c.baseURL, url.QueryEscape(address), resultLimit)

	var results []nominatimResult
	if err := c.get(ctx, endpoint, &results); err != nil {
		return nil, err
	}

	locations := make([]Location, 0, len(results))
	for _, r := range results {
		locations = append(locations, toLocation(r))
	}
	return locations, nil
}

// Reverse выполняет обратное геокодирование координат
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*Location, error) {
	endpoint := fmt.Sprintf("%s/reverse?lat=%s&lon=%s&format=json",
		c.baseURL,
		url.QueryEscape(strconv.FormatFloat(lat, 'f', -1, 64)),
		url.QueryEscape(strconv.FormatFloat(lon, 'f', -1, 64)),
	)

	var result nominatimResult
	if err := c.get(ctx, endpoint, &result); err != nil {
		return nil, err
	}

	loc := toLocation(result)
	return &loc, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create geocoding request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoding service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	return nil
}

func toLocation(r nominatimResult) Location {
	lat, _ := strconv.ParseFloat(r.Lat, 64)
	lon, _ := strconv.ParseFloat(r.Lon, 64)
	return Location{
		DisplayName: r.DisplayName,
		Latitude:    lat,
		Longitude:   lon,
	}
}
