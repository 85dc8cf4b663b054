// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Trend representa a classificação da tendência de vendas
type Trend string

const (
	TrendStrongGrowth     Trend = "strong growth"
	TrendModerateGrowth   Trend = "moderate growth"
	TrendStable           Trend = "stable"
	TrendModerateDecline  Trend = "moderate decline"
	TrendSharpDecline     Trend = "sharp decline"
	TrendInsufficientData Trend = "insufficient data"
)

// IsGrowth indica se a tendência pertence ao grupo de crescimento
func (t Trend) IsGrowth() bool {
	return t == TrendStrongGrowth || t == TrendModerateGrowth
}

// IsDecline indica se a tendência pertence ao grupo de queda
func (t Trend) IsDecline() bool {
	return t == TrendSharpDecline || t == TrendModerateDecline
}

// Momentum representa a direção das vendas recentes em relação à média geral
type Momentum string

const (
	MomentumPositive Momentum = "positive"
	MomentumNegative Momentum = "negative"
)

// MinSalesPeriods é a quantidade mínima de meses para calcular uma tendência
const MinSalesPeriods = 3

// TrendSummary é o resultado da análise de uma série de vendas mensais
type TrendSummary struct {
	AvgSales        float64  `json:"avg_sales"`
	Trend           Trend    `json:"trend"`
	GrowthRate      float64  `json:"growth_rate"`
	Volatility      float64  `json:"volatility"`
	Momentum        Momentum `json:"momentum"`
	DominantSegment *string  `json:"dominant_segment"`
}

// InsufficientData retorna o resumo usado quando a série tem menos de MinSalesPeriods meses.
// Todos os campos numéricos ficam zerados e não há segmento dominante.
func InsufficientData() TrendSummary {
	return TrendSummary{Trend: TrendInsufficientData}
}

// DominantSegmentOr retorna o segmento dominante ou o valor padrão informado
func (s TrendSummary) DominantSegmentOr(fallback string) string {
	if s.DominantSegment == nil {
		return fallback
	}
	return *s.DominantSegment
}
