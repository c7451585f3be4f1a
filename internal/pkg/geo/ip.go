package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// IPLocator resolves an approximate position from an IP geolocation service
// such as ip-api.com. The response must carry "lat" and "lon" fields.
type IPLocator struct {
	URL    string
	Client *http.Client
}

func NewIPLocator(url string) *IPLocator {
	return &IPLocator{URL: url, Client: http.DefaultClient}
}

type ipResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func (l *IPLocator) Locate(ctx context.Context) (Point, error) {
	if l.URL == "" {
		return Point{}, ErrLocationUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return Point{}, fmt.Errorf("creating location request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrLocationUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return Point{}, ErrPermissionDenied
	case resp.StatusCode != http.StatusOK:
		return Point{}, fmt.Errorf("%w: service returned %d", ErrLocationUnavailable, resp.StatusCode)
	}

	var body ipResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Point{}, fmt.Errorf("%w: decoding response: %v", ErrLocationUnavailable, err)
	}

	// ip-api.com reports failures with HTTP 200 and status="fail".
	if body.Status != "" && body.Status != "success" {
		return Point{}, fmt.Errorf("%w: %s", ErrLocationUnavailable, body.Message)
	}

	p := Point{Latitude: body.Lat, Longitude: body.Lon}
	if err := p.Validate(); err != nil {
		return Point{}, err
	}
	return p, nil
}
