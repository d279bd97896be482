// pkg/search/httpjson.go

package search

import (
	"encoding/json"
	"net/http"
	"strings"
)

// doJSON runs the request and decodes the body into out. Any transport,
// status or decode problem reports false; adapters turn that into an empty
// result instead of an error.
func doJSON(c *http.Client, req *http.Request, out any) bool {
	resp, err := c.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false
	}
	return true
}

func lower(s string) string { return strings.ToLower(s) }
