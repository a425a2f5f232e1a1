package lookup

import (
	"fmt"
	"net/url"

	"github.com/tidwall/gjson"
)

// StockQuote returns a formatted sentence with the current price, absolute
// change, and percent change for ticker. A response without quote data maps
// to a "could not find" string, not an error.
func (c *Client) StockQuote(ticker string) string {
	query := url.Values{}
	query.Set("function", "GLOBAL_QUOTE")
	query.Set("symbol", ticker)
	query.Set("apikey", c.cfg.QuoteAPIKey)

	body, err := c.get(c.cfg.QuoteBaseURL + "?" + query.Encode())
	if err != nil {
		c.debugf("quote fetch for %q failed: %v", ticker, err)
		return fmt.Sprintf("Error fetching stock data: %v", err)
	}

	quote := gjson.Get(body, "Global Quote")
	if !quote.Exists() || len(quote.Map()) == 0 {
		return fmt.Sprintf("Could not find stock information for ticker: %s", ticker)
	}

	// Alpha Vantage keys embed literal dots, which gjson paths must escape.
	price := quoteField(quote, `05\. price`)
	change := quoteField(quote, `09\. change`)
	changePercent := quoteField(quote, `10\. change percent`)

	return fmt.Sprintf(
		"Stock information for %s: Current Price: $%s, Change: %s (%s)",
		ticker, price, change, changePercent,
	)
}

func quoteField(quote gjson.Result, path string) string {
	v := quote.Get(path)
	if !v.Exists() || v.String() == "" {
		return "N/A"
	}
	return v.String()
}
