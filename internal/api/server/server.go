package server

import (
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
)

// New wraps the gin engine in an http.Server bound to addr. Header read
// timeouts guard against idle clients holding connections open; handler
// timeouts stay unset because delivery writes go through their own retry
// strategy.
func New(addr string, router *ginext.Engine) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
