package adapter

import "errors"

// ErrFetchFailed is returned when the target page cannot be retrieved:
// network failure, timeout, or a non-2xx upstream status. Handlers map it
// to 502 Bad Gateway.
var ErrFetchFailed = errors.New("scrape fetch failed")
