// Package advising transforma o resumo de tendência em recomendações, estratégias e funis de marketing
package advising

import (
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/valyala/fasttemplate"
	"github.com/vfg2006/memotag-sales-api/internal/domain"
	"github.com/vfg2006/memotag-sales-api/internal/usecases/analyzing"
)

// Advisor define os casos de uso expostos pelos endpoints de vendas
type Advisor interface {
	// GetSalesRecommendations retorna dez recomendações para a tendência das vendas
	GetSalesRecommendations(req *domain.SalesRecommendationsRequest) (*domain.RecommendationsResponse, error)

	// GetSalesStrategies retorna três estratégias comerciais para a tendência das vendas
	GetSalesStrategies(req *domain.SalesStrategiesRequest) (*domain.StrategiesResponse, error)

	// GetMarketingFunnels retorna a lista fixa de funis de marketing
	GetMarketingFunnels(req *domain.MarketingFunnelsRequest) *domain.FunnelsResponse

	// GetSalesAnalysis retorna o resumo de tendência sem textos
	GetSalesAnalysis(req *domain.SalesAnalysisRequest) (domain.TrendSummary, error)
}

type Service struct {
	analyzer analyzing.Analyzer
}

// NewService cria uma nova instância do serviço de recomendações
func NewService(analyzer analyzing.Analyzer) Advisor {
	return &Service{
		analyzer: analyzer,
	}
}

func (s *Service) GetSalesRecommendations(req *domain.SalesRecommendationsRequest) (*domain.RecommendationsResponse, error) {
	if req.MonthlySales == nil {
		return nil, NewAdviceError(ErrMissingMonthlySales, "sales-recommendations", "monthly_sales")
	}
	if len(req.ProductFeatures) == 0 {
		return nil, NewAdviceError(ErrMissingProductFeatures, "sales-recommendations", "product_features")
	}

	summary := s.analyzer.Analyze(req.MonthlySales, req.CustomerSegments)

	logrus.WithFields(logrus.Fields{
		"trend":    summary.Trend,
		"momentum": summary.Momentum,
		"months":   len(req.MonthlySales),
		"features": len(req.ProductFeatures),
	}).Debug("Gerando recomendações de vendas")

	values := map[string]interface{}{
		"trend":        string(summary.Trend),
		"momentum":     string(summary.Momentum),
		"volatility":   strconv.FormatFloat(summary.Volatility, 'f', 2, 64),
		"feature":      req.ProductFeatures[0],
		"last_feature": req.ProductFeatures[len(req.ProductFeatures)-1],
		"segment":      summary.DominantSegmentOr(defaultRecommendationSegment),
	}

	var templates []string
	switch {
	case summary.Trend.IsGrowth():
		templates = growthRecommendations
	case summary.Trend.IsDecline():
		templates = declineRecommendations
	default:
		templates = stableRecommendations
	}

	return &domain.RecommendationsResponse{
		Recommendations: render(templates, values),
	}, nil
}

func (s *Service) GetSalesStrategies(req *domain.SalesStrategiesRequest) (*domain.StrategiesResponse, error) {
	if req.MonthlySales == nil {
		return nil, NewAdviceError(ErrMissingMonthlySales, "sales-strategies", "monthly_sales")
	}

	summary := s.analyzer.Analyze(req.MonthlySales, req.CustomerSegments)

	logrus.WithFields(logrus.Fields{
		"trend":       summary.Trend,
		"months":      len(req.MonthlySales),
		"total_sales": req.TotalSales,
	}).Debug("Gerando estratégias de vendas")

	values := map[string]interface{}{
		"trend":   string(summary.Trend),
		"segment": summary.DominantSegmentOr(defaultStrategySegment),
	}

	var templates []string
	switch {
	case summary.Trend.IsGrowth():
		templates = growthStrategies
	case summary.Trend.IsDecline():
		templates = declineStrategies
	default:
		templates = stableStrategies
	}

	return &domain.StrategiesResponse{
		Strategies: render(templates, values),
	}, nil
}

// GetMarketingFunnels ignora as funcionalidades informadas; os funis são fixos
func (s *Service) GetMarketingFunnels(req *domain.MarketingFunnelsRequest) *domain.FunnelsResponse {
	funnels := make([]string, len(marketingFunnels))
	copy(funnels, marketingFunnels)

	return &domain.FunnelsResponse{
		Funnels: funnels,
	}
}

func (s *Service) GetSalesAnalysis(req *domain.SalesAnalysisRequest) (domain.TrendSummary, error) {
	if req.MonthlySales == nil {
		return domain.TrendSummary{}, NewAdviceError(ErrMissingMonthlySales, "sales-analysis", "monthly_sales")
	}

	return s.analyzer.Analyze(req.MonthlySales, req.CustomerSegments), nil
}

// render substitui os marcadores {nome} de cada texto pelos valores informados
func render(templates []string, values map[string]interface{}) []string {
	out := make([]string, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, fasttemplate.ExecuteString(tpl, "{", "}", values))
	}
	return out
}
