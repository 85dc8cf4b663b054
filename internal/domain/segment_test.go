package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegments_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Segments
		wantErr  bool
	}{
		{
			name:  "Preserva a ordem das chaves",
			input: `{"C": 2, "A": 5, "B": 9}`,
			expected: Segments{
				{Label: "C", Weight: 2},
				{Label: "A", Weight: 5},
				{Label: "B", Weight: 9},
			},
		},
		{
			name:     "Objeto vazio",
			input:    `{}`,
			expected: Segments{},
		},
		{
			name:     "Nulo",
			input:    `null`,
			expected: nil,
		},
		{
			name:  "Chave repetida mantém a posição e o último peso",
			input: `{"A": 1, "B": 2, "A": 7}`,
			expected: Segments{
				{Label: "A", Weight: 7},
				{Label: "B", Weight: 2},
			},
		},
		{
			name:    "Lista não é aceita",
			input:   `["A", "B"]`,
			wantErr: true,
		},
		{
			name:    "Peso não numérico",
			input:   `{"A": "muito"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var segments Segments
			err := json.Unmarshal([]byte(tt.input), &segments)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, segments)
		})
	}
}

func TestSegments_InsideRequest(t *testing.T) {
	var req SalesStrategiesRequest
	err := json.Unmarshal([]byte(`{"monthly_sales": [1, 2, 3], "customer_segments": {"clinics": 3, "families": 3}}`), &req)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, req.MonthlySales)
	assert.Equal(t, Segments{{Label: "clinics", Weight: 3}, {Label: "families", Weight: 3}}, req.CustomerSegments)
}

func TestSegments_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Segments{{Label: "Z", Weight: 1}, {Label: "A", Weight: 2.5}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Z": 1, "A": 2.5}`, string(out))
	assert.Equal(t, `{"Z":1,"A":2.5}`, string(out))

	out, err = json.Marshal(Segments(nil))
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestTrendSummary_JSON(t *testing.T) {
	out, err := json.Marshal(InsufficientData())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"avg_sales": 0,
		"trend": "insufficient data",
		"growth_rate": 0,
		"volatility": 0,
		"momentum": "",
		"dominant_segment": null
	}`, string(out))

	segment := "B"
	summary := TrendSummary{Trend: TrendStable, Momentum: MomentumNegative, DominantSegment: &segment}
	assert.Equal(t, "B", summary.DominantSegmentOr("key"))
	assert.Equal(t, "key", InsufficientData().DominantSegmentOr("key"))
}

func TestTrend_Groups(t *testing.T) {
	assert.True(t, TrendStrongGrowth.IsGrowth())
	assert.True(t, TrendModerateGrowth.IsGrowth())
	assert.True(t, TrendSharpDecline.IsDecline())
	assert.True(t, TrendModerateDecline.IsDecline())

	for _, trend := range []Trend{TrendStable, TrendInsufficientData} {
		assert.False(t, trend.IsGrowth())
		assert.False(t, trend.IsDecline())
	}
}
