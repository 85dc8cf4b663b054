package handler

import (
	"net/http"

	"github.com/vfg2006/memotag-sales-api/internal/domain"
	"github.com/vfg2006/memotag-sales-api/pkg/log"
)

var homeResponse = domain.HomeResponse{
	Message: "Welcome to MemoTag API",
	Endpoints: []string{
		"/sales-recommendations",
		"/sales-strategies",
		"/marketing-funnels",
		"/sales-analysis",
	},
	Note: "POST with JSON: monthly_sales (required), total_sales, customer_segments, product_features",
}

// HomeHandler descreve os endpoints disponíveis
func HomeHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), "home", homeResponse)
	})
}
