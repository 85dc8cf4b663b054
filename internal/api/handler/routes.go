package handler

import (
	"net/http"

	"github.com/vfg2006/memotag-sales-api/internal/api/handler/router"
	"github.com/vfg2006/memotag-sales-api/internal/usecases/advising"
)

func Home() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: HomeHandler(),
		},
	}
}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sales(service advising.Advisor) []router.Route {
	return []router.Route{
		{
			Path:    "/sales-recommendations",
			Method:  http.MethodPost,
			Handler: GetSalesRecommendations(service),
		},
		{
			Path:    "/sales-strategies",
			Method:  http.MethodPost,
			Handler: GetSalesStrategies(service),
		},
		{
			Path:    "/marketing-funnels",
			Method:  http.MethodPost,
			Handler: GetMarketingFunnels(service),
		},
		{
			Path:    "/sales-analysis",
			Method:  http.MethodPost,
			Handler: GetSalesAnalysis(service),
		},
	}
}

// Metrics expõe o handler do prometheus no caminho configurado
func Metrics(path string, h http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    path,
			Method:  http.MethodGet,
			Handler: h,
		},
	}
}
