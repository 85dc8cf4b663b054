package analyzing

import "github.com/vfg2006/memotag-sales-api/internal/domain"

//go:generate mockgen -source=interfaces.go -destination=mocks/analyzer_mock.go -package=mocks

// Analyzer define a interface de análise de tendência de vendas
type Analyzer interface {
	// Analyze calcula o resumo de tendência para uma série de vendas mensais.
	// segments é opcional e só é usado para escolher o segmento dominante.
	Analyze(monthlySales []float64, segments domain.Segments) domain.TrendSummary
}
