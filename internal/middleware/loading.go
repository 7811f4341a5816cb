package middleware

import (
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/partyspace/partyspace-api/internal/loading"
)

// NavigationIntent brackets each request with the loading indicator's
// debounce window.
func NavigationIntent(ind *loading.Indicator) drift.HandlerFunc {
	return func(c *drift.Context) {
		ind.BeginNavigation()
		defer ind.EndNavigation()
		c.Next()
	}
}
