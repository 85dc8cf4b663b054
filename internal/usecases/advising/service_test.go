package advising

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/memotag-sales-api/internal/domain"
	"github.com/vfg2006/memotag-sales-api/internal/usecases/analyzing"
	"github.com/vfg2006/memotag-sales-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_GetSalesRecommendations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	service := NewService(mockAnalyzer)

	sales := []float64{100, 90, 80}
	features := []string{"fall detection", "voice reminders", "GPS tracking"}

	tests := []struct {
		name     string
		segments domain.Segments
		summary  domain.TrendSummary
		validate func(t *testing.T, result []string)
	}{
		{
			name: "Crescimento forte - lista de crescimento",
			summary: domain.TrendSummary{
				Trend:    domain.TrendStrongGrowth,
				Momentum: domain.MomentumPositive,
			},
			validate: func(t *testing.T, result []string) {
				assert.Equal(t, "Leverage strong growth with a 'Caregiver Elite' edition featuring next-gen fall detection.", result[0])
				assert.Equal(t, "Upsell a predictive care subscription if momentum is positive.", result[8])
			},
		},
		{
			name:    "Crescimento moderado - lista de crescimento",
			summary: domain.TrendSummary{Trend: domain.TrendModerateGrowth, Momentum: domain.MomentumNegative},
			validate: func(t *testing.T, result []string) {
				assert.Equal(t, "Leverage moderate growth with a 'Caregiver Elite' edition featuring next-gen fall detection.", result[0])
				assert.Equal(t, "Upsell a predictive care subscription if momentum is negative.", result[8])
			},
		},
		{
			name:     "Queda moderada com segmento dominante - lista de queda",
			segments: domain.Segments{{Label: "hospitals", Weight: 3}},
			summary: domain.TrendSummary{
				Trend:           domain.TrendModerateDecline,
				Volatility:      0.007856742013183853,
				Momentum:        domain.MomentumNegative,
				DominantSegment: stringPtr("hospitals"),
			},
			validate: func(t *testing.T, result []string) {
				assert.Equal(t, "Counter moderate decline with a 'Caregiver lifeline' discount on fall detection.", result[0])
				assert.Equal(t, "Pivot to a rental model to lower barriers during volatile 0.01 sales.", result[1])
				assert.Equal(t, "Host free AI caregiving webinars to re-engage amid negative momentum.", result[3])
				assert.Equal(t, "Focus retention with a free AI care tips app tied to GPS tracking.", result[7])
				assert.Equal(t, "Test hyper-local ads in hospitals segment regions.", result[8])
			},
		},
		{
			name: "Queda acentuada sem segmento - rótulo padrão",
			summary: domain.TrendSummary{
				Trend:      domain.TrendSharpDecline,
				Volatility: 0.404,
				Momentum:   domain.MomentumNegative,
			},
			validate: func(t *testing.T, result []string) {
				assert.Equal(t, "Pivot to a rental model to lower barriers during volatile 0.40 sales.", result[1])
				assert.Equal(t, "Test hyper-local ads in key segment regions.", result[8])
			},
		},
		{
			name:    "Estável - lista estável",
			summary: domain.TrendSummary{Trend: domain.TrendStable, Momentum: domain.MomentumNegative},
			validate: func(t *testing.T, result []string) {
				assert.Equal(t, "Stabilize sales with a 'Steady Care' subscription blending all features.", result[0])
				assert.Equal(t, "Test a mid-tier model with balanced fall detection access.", result[6])
			},
		},
		{
			name:    "Dados insuficientes - lista estável",
			summary: domain.InsufficientData(),
			validate: func(t *testing.T, result []string) {
				assert.Equal(t, stableRecommendations[0], result[0])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAnalyzer.EXPECT().
				Analyze(sales, tt.segments).
				Return(tt.summary)

			resp, err := service.GetSalesRecommendations(&domain.SalesRecommendationsRequest{
				MonthlySales:     sales,
				ProductFeatures:  features,
				CustomerSegments: tt.segments,
			})
			require.NoError(t, err)
			require.Len(t, resp.Recommendations, 10)

			for _, r := range resp.Recommendations {
				assert.NotContains(t, r, "{", "marcador não substituído: %s", r)
			}
			tt.validate(t, resp.Recommendations)
		})
	}
}

func TestService_GetSalesRecommendations_MissingData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockAnalyzer(ctrl))

	_, err := service.GetSalesRecommendations(&domain.SalesRecommendationsRequest{
		MonthlySales: []float64{1, 2, 3},
	})
	assert.True(t, errors.Is(err, ErrMissingProductFeatures))

	_, err = service.GetSalesRecommendations(&domain.SalesRecommendationsRequest{
		ProductFeatures: []string{"GPS"},
	})
	assert.True(t, errors.Is(err, ErrMissingMonthlySales))

	var adviceErr *AdviceError
	require.True(t, errors.As(err, &adviceErr))
	assert.Equal(t, "sales-recommendations", adviceErr.Route)
	assert.Equal(t, "monthly_sales", adviceErr.Field)
	assert.Equal(t, "sales-recommendations: monthly_sales is required", err.Error())

	_, err = service.GetSalesRecommendations(&domain.SalesRecommendationsRequest{
		MonthlySales:    []float64{1, 2, 3},
		ProductFeatures: []string{},
	})
	require.True(t, errors.As(err, &adviceErr))
	assert.Equal(t, "product_features", adviceErr.Field)
}

func TestService_GetSalesStrategies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	service := NewService(mockAnalyzer)

	tests := []struct {
		name     string
		summary  domain.TrendSummary
		expected []string
	}{
		{
			name:    "Crescimento com segmento dominante",
			summary: domain.TrendSummary{Trend: domain.TrendStrongGrowth, DominantSegment: stringPtr("care homes")},
			expected: []string{
				"Scale B2B to care homes with bulk deals for care facilities.",
				"Launch a premium tier with predictive AI alerts to ride strong growth.",
				"Expand neurologist trials, leveraging growth for clinical credibility.",
			},
		},
		{
			name:    "Queda sem segmento - rótulo padrão",
			summary: domain.TrendSummary{Trend: domain.TrendSharpDecline},
			expected: []string{
				"Retarget key customers with loyalty offers to reverse sharp decline.",
				"Shift to a low-entry subscription to stabilize cash flow in decline.",
				"Build grassroots trust with dementia NGOs amid volatile sales.",
			},
		},
		{
			name:    "Estável",
			summary: domain.TrendSummary{Trend: domain.TrendStable},
			expected: []string{
				"Solidify key customers with steady B2B partnerships.",
				"Introduce a balanced tiered pricing for consistent revenue.",
				"Collaborate with steady-state health forums for brand reinforcement.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAnalyzer.EXPECT().
				Analyze(gomock.Any(), gomock.Any()).
				Return(tt.summary)

			resp, err := service.GetSalesStrategies(&domain.SalesStrategiesRequest{
				MonthlySales: []float64{10, 20, 30},
				TotalSales:   60,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resp.Strategies)
		})
	}
}

func TestService_GetMarketingFunnels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// O analisador não deve ser chamado
	service := NewService(mocks.NewMockAnalyzer(ctrl))

	resp := service.GetMarketingFunnels(&domain.MarketingFunnelsRequest{ProductFeatures: []string{"GPS"}})
	require.Len(t, resp.Funnels, 5)
	assert.Equal(t, "AI caregiving blog → Webinar on dementia tech → MemoTag trial.", resp.Funnels[0])

	// Alterar a resposta não altera a lista fixa
	resp.Funnels[0] = "changed"
	assert.Equal(t, "AI caregiving blog → Webinar on dementia tech → MemoTag trial.", marketingFunnels[0])
}

func TestService_WithRealAnalyzer(t *testing.T) {
	service := NewService(analyzing.NewService())

	summary, err := service.GetSalesAnalysis(&domain.SalesAnalysisRequest{
		MonthlySales:     []float64{100, 110, 121},
		CustomerSegments: domain.Segments{{Label: "A", Weight: 5}, {Label: "B", Weight: 9}, {Label: "C", Weight: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TrendStrongGrowth, summary.Trend)
	assert.Equal(t, "B", summary.DominantSegmentOr(""))

	strategies, err := service.GetSalesStrategies(&domain.SalesStrategiesRequest{
		MonthlySales:     []float64{100, 110, 121},
		CustomerSegments: domain.Segments{{Label: "A", Weight: 5}, {Label: "B", Weight: 9}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Scale B2B to B with bulk deals for care facilities.", strategies.Strategies[0])
}

func stringPtr(s string) *string {
	return &s
}
