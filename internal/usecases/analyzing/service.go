// Package analyzing calcula estatísticas descritivas sobre séries de vendas mensais
package analyzing

import (
	"math"

	"github.com/vfg2006/memotag-sales-api/internal/domain"
)

// Limites usados na classificação da tendência
const (
	strongGrowthRate   = 0.05
	strongGrowthMaxVol = 0.1
	sharpDeclineRate   = -0.05
	sharpDeclineMinVol = 0.15
	momentumWindow     = 3
)

// Pesos do mês mais antigo para o mais recente da janela de momentum
var momentumWeights = []float64{1, 2, 3}

// TrendAnalyzer implementa Analyzer. Não guarda estado entre chamadas.
type TrendAnalyzer struct{}

// NewService cria uma nova instância do analisador de tendência
func NewService() Analyzer {
	return &TrendAnalyzer{}
}

// Analyze implementa Analyzer
func (a *TrendAnalyzer) Analyze(monthlySales []float64, segments domain.Segments) domain.TrendSummary {
	if len(monthlySales) < domain.MinSalesPeriods {
		return domain.InsufficientData()
	}

	avgSales := mean(monthlySales)

	rates := growthRates(monthlySales)
	avgGrowthRate := mean(rates)
	volatility := sampleStdDev(rates)

	momentum := domain.MomentumNegative
	if weightedRecentAverage(monthlySales) > avgSales {
		momentum = domain.MomentumPositive
	}

	return domain.TrendSummary{
		AvgSales:        avgSales,
		Trend:           classify(avgGrowthRate, volatility),
		GrowthRate:      avgGrowthRate,
		Volatility:      volatility,
		Momentum:        momentum,
		DominantSegment: dominantSegment(segments),
	}
}

// growthRates retorna a variação percentual de cada mês em relação ao anterior.
// Pares cujo mês anterior é zero são ignorados.
func growthRates(sales []float64) []float64 {
	rates := make([]float64, 0, len(sales)-1)
	for i := 1; i < len(sales); i++ {
		prev := sales[i-1]
		if prev == 0 {
			continue
		}
		rates = append(rates, (sales[i]-prev)/prev)
	}
	return rates
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev é o desvio padrão amostral (n-1); zero com menos de dois valores
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	m := mean(values)
	var sq float64
	for _, v := range values {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)-1))
}

// weightedRecentAverage é a média ponderada dos últimos meses, com mais peso para os recentes
func weightedRecentAverage(sales []float64) float64 {
	recent := sales
	if len(sales) >= momentumWindow {
		recent = sales[len(sales)-momentumWindow:]
	}
	if len(recent) == 0 {
		return 0
	}

	weights := momentumWeights[:len(recent)]

	var total, weightSum float64
	for i, s := range recent {
		total += s * weights[i]
		weightSum += weights[i]
	}
	return total / weightSum
}

// classify aplica as regras na ordem; a primeira que casar vence
func classify(avgGrowthRate, volatility float64) domain.Trend {
	switch {
	case avgGrowthRate > strongGrowthRate && volatility < strongGrowthMaxVol:
		return domain.TrendStrongGrowth
	case avgGrowthRate > 0:
		return domain.TrendModerateGrowth
	case avgGrowthRate < sharpDeclineRate && volatility > sharpDeclineMinVol:
		return domain.TrendSharpDecline
	case avgGrowthRate < 0:
		return domain.TrendModerateDecline
	default:
		return domain.TrendStable
	}
}

// dominantSegment retorna o rótulo de maior peso; empates ficam com o primeiro encontrado
func dominantSegment(segments domain.Segments) *string {
	if len(segments) == 0 {
		return nil
	}

	best := segments[0]
	for _, s := range segments[1:] {
		if s.Weight > best.Weight {
			best = s
		}
	}

	label := best.Label
	return &label
}
