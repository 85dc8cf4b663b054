package domain

// SalesRecommendationsRequest é o corpo de POST /sales-recommendations
type SalesRecommendationsRequest struct {
	MonthlySales     []float64 `json:"monthly_sales" validate:"required,dive,gte=0"`
	ProductFeatures  []string  `json:"product_features" validate:"required,min=1"`
	CustomerSegments Segments  `json:"customer_segments"`
}

// SalesStrategiesRequest é o corpo de POST /sales-strategies.
// TotalSales é aceito por compatibilidade e não entra no cálculo.
type SalesStrategiesRequest struct {
	MonthlySales     []float64 `json:"monthly_sales" validate:"required,dive,gte=0"`
	CustomerSegments Segments  `json:"customer_segments"`
	TotalSales       float64   `json:"total_sales" default:"0" validate:"gte=0"`
}

// MarketingFunnelsRequest é o corpo de POST /marketing-funnels
type MarketingFunnelsRequest struct {
	ProductFeatures []string `json:"product_features" validate:"required"`
}

// SalesAnalysisRequest é o corpo de POST /sales-analysis
type SalesAnalysisRequest struct {
	MonthlySales     []float64 `json:"monthly_sales" validate:"required,dive,gte=0"`
	CustomerSegments Segments  `json:"customer_segments"`
}

type RecommendationsResponse struct {
	Recommendations []string `json:"recommendations"`
}

type StrategiesResponse struct {
	Strategies []string `json:"strategies"`
}

type FunnelsResponse struct {
	Funnels []string `json:"funnels"`
}

// HomeResponse descreve os endpoints disponíveis na raiz da API
type HomeResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
	Note      string   `json:"note"`
}
