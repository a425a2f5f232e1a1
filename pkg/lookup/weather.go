package lookup

import (
	"fmt"
	"net/url"

	"github.com/tidwall/gjson"
)

// Weather returns a formatted sentence describing the current weather in
// city, metric units. Failures come back as user-facing strings.
func (c *Client) Weather(city string) string {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.cfg.WeatherAPIKey)
	query.Set("units", "metric")

	body, err := c.get(c.cfg.WeatherBaseURL + "?" + query.Encode())
	if err != nil {
		c.debugf("weather fetch for %q failed: %v", city, err)
		return fmt.Sprintf("Error fetching weather data: %v", err)
	}

	description := gjson.Get(body, "weather.0.description")
	temperature := gjson.Get(body, "main.temp")
	humidity := gjson.Get(body, "main.humidity")
	windSpeed := gjson.Get(body, "wind.speed")
	if !description.Exists() || !temperature.Exists() || !humidity.Exists() || !windSpeed.Exists() {
		c.debugf("weather response for %q is missing expected fields", city)
		return fmt.Sprintf("Error parsing weather data: response for %s is missing expected fields", city)
	}

	return fmt.Sprintf(
		"Weather in %s: %s. Temperature: %s°C, Humidity: %s%%, Wind Speed: %s m/s",
		city, description.String(), temperature.String(), humidity.String(), windSpeed.String(),
	)
}
