package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/memotag-sales-api/internal/domain"
	"github.com/vfg2006/memotag-sales-api/internal/usecases/advising"
	"github.com/vfg2006/memotag-sales-api/pkg/apiErrors"
	"github.com/vfg2006/memotag-sales-api/pkg/log"
	"github.com/vfg2006/memotag-sales-api/pkg/request"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Mensagens de campos obrigatórios ausentes, por endpoint
const (
	msgMissingRecommendationsData = "Please provide monthly_sales and product_features"
	msgMissingSalesData           = "Please provide monthly_sales"
	msgMissingFeaturesData        = "Please provide product_features"
)

// GetSalesRecommendations retorna recomendações de vendas de acordo com a tendência da série mensal
func GetSalesRecommendations(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.SalesRecommendationsRequest
		if err := request.Decode(r, &req); err != nil {
			writeRequestError(w, logger, "sales-recommendations", err, msgMissingRecommendationsData)
			return
		}

		resp, err := service.GetSalesRecommendations(&req)
		if err != nil {
			writeServiceError(w, logger, "sales-recommendations", err, msgMissingRecommendationsData)
			return
		}

		logger.WithFields(log.Fields{
			"sales_months":    len(req.MonthlySales),
			"recommendations": len(resp.Recommendations),
		}).Info("sales-recommendations: recomendações geradas com sucesso")

		writeJSON(w, logger, "sales-recommendations", resp)
	})
}

// GetSalesStrategies retorna estratégias comerciais de acordo com a tendência da série mensal
func GetSalesStrategies(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.SalesStrategiesRequest
		if err := request.Decode(r, &req); err != nil {
			writeRequestError(w, logger, "sales-strategies", err, msgMissingSalesData)
			return
		}

		resp, err := service.GetSalesStrategies(&req)
		if err != nil {
			writeServiceError(w, logger, "sales-strategies", err, msgMissingSalesData)
			return
		}

		logger.WithFields(log.Fields{
			"sales_months": len(req.MonthlySales),
			"sales_total":  req.TotalSales,
		}).Info("sales-strategies: estratégias geradas com sucesso")

		writeJSON(w, logger, "sales-strategies", resp)
	})
}

// GetMarketingFunnels retorna os funis de marketing
func GetMarketingFunnels(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.MarketingFunnelsRequest
		if err := request.Decode(r, &req); err != nil {
			writeRequestError(w, logger, "marketing-funnels", err, msgMissingFeaturesData)
			return
		}

		writeJSON(w, logger, "marketing-funnels", service.GetMarketingFunnels(&req))
	})
}

// GetSalesAnalysis retorna o resumo de tendência calculado para a série mensal
func GetSalesAnalysis(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.SalesAnalysisRequest
		if err := request.Decode(r, &req); err != nil {
			writeRequestError(w, logger, "sales-analysis", err, msgMissingSalesData)
			return
		}

		summary, err := service.GetSalesAnalysis(&req)
		if err != nil {
			writeServiceError(w, logger, "sales-analysis", err, msgMissingSalesData)
			return
		}

		logger.WithFields(log.Fields{
			"trend":    summary.Trend,
			"momentum": summary.Momentum,
		}).Info("sales-analysis: análise gerada com sucesso")

		writeJSON(w, logger, "sales-analysis", summary)
	})
}

// writeRequestError traduz erros de decodificação/validação para o formato de erro da API
func writeRequestError(w http.ResponseWriter, logger log.Logger, route string, err error, missingMessage string) {
	logger.WithError(err).Warnf("%s: requisição rejeitada", route)

	var details any
	if fields := request.Fields(err); len(fields) > 0 {
		details = fields
	}

	switch {
	case errors.Is(err, request.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, missingMessage, details)
	case errors.Is(err, request.ErrInvalidFormat):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid JSON body", err.Error())
	case errors.Is(err, request.ErrPayloadTooLarge):
		apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Request body too large", nil)
	case errors.Is(err, request.ErrInvalidRequest):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request", details)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar requisição", nil)
	}
}

// writeServiceError traduz erros dos casos de uso para o formato de erro da API
func writeServiceError(w http.ResponseWriter, logger log.Logger, route string, err error, missingMessage string) {
	var details any
	var adviceErr *advising.AdviceError
	if errors.As(err, &adviceErr) {
		logger = logger.WithField("route", adviceErr.Route)
		details = []request.FieldError{{Field: adviceErr.Field, Message: adviceErr.Err.Error()}}
	}

	switch {
	case errors.Is(err, advising.ErrMissingMonthlySales):
		logger.WithError(err).Warnf("%s: requisição rejeitada", route)
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, missingMessage, details)
	case errors.Is(err, advising.ErrMissingProductFeatures):
		logger.WithError(err).Warnf("%s: requisição rejeitada", route)
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request", details)
	default:
		logger.WithError(err).Errorf("%s: erro ao processar requisição", route)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar requisição", nil)
	}
}

// writeJSON serializa a resposta antes de escrever o status; valores não finitos
// (Inf, NaN) não têm representação em JSON e viram erro interno
func writeJSON(w http.ResponseWriter, logger log.Logger, route string, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		logger.WithError(err).Errorf("%s: erro ao codificar resposta", route)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(append(payload, '\n')); err != nil {
		logger.WithError(err).Warnf("%s: erro ao escrever resposta", route)
	}
}
