// Tests for the weather lookup formatting and failure handling.
package lookup

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWeatherFormatsResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "London" {
			t.Errorf("expected q=London, got %q", got)
		}
		if got := r.URL.Query().Get("units"); got != "metric" {
			t.Errorf("expected units=metric, got %q", got)
		}
		if got := r.URL.Query().Get("appid"); got != "test-key" {
			t.Errorf("expected appid=test-key, got %q", got)
		}
		fmt.Fprint(w, `{"weather":[{"description":"scattered clouds"}],"main":{"temp":18.5,"humidity":72},"wind":{"speed":4.1}}`)
	}))
	defer srv.Close()

	c := New(Config{WeatherBaseURL: srv.URL, WeatherAPIKey: "test-key"})
	got := c.Weather("London")
	want := "Weather in London: scattered clouds. Temperature: 18.5°C, Humidity: 72%, Wind Speed: 4.1 m/s"
	if got != want {
		t.Fatalf("unexpected weather string:\n got: %q\nwant: %q", got, want)
	}
}

func TestWeatherMissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"weather":[],"main":{"temp":18.5}}`)
	}))
	defer srv.Close()

	c := New(Config{WeatherBaseURL: srv.URL})
	got := c.Weather("London")
	if !strings.HasPrefix(got, "Error parsing weather data:") {
		t.Fatalf("expected parse error string, got %q", got)
	}
}

func TestWeatherTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := New(Config{WeatherBaseURL: srv.URL})
	got := c.Weather("London")
	if !strings.HasPrefix(got, "Error fetching weather data:") {
		t.Fatalf("expected fetch error string, got %q", got)
	}
}

func TestWeatherHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "city not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(Config{WeatherBaseURL: srv.URL})
	got := c.Weather("Lundon")
	if !strings.HasPrefix(got, "Error fetching weather data:") {
		t.Fatalf("expected fetch error string, got %q", got)
	}
}
