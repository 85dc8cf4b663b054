package middleware

import (
	"net/http"

	"github.com/vfg2006/memotag-sales-api/pkg/log"
	"github.com/vfg2006/memotag-sales-api/pkg/utils"
)

// RequestIDHeader é o cabeçalho usado para propagar o ID curto da requisição
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 64

// RequestID reaproveita o X-Request-ID do cliente ou gera um novo
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" || len(requestID) > maxRequestIDLength {
				id, err := utils.GenerateID()
				if err != nil {
					log.L.WithError(err).Warn("Erro ao gerar ID da requisição")
				}
				requestID = id
			}

			if requestID != "" {
				w.Header().Set(RequestIDHeader, requestID)
				r = r.WithContext(log.WithRequestID(r.Context(), requestID))
			}

			next.ServeHTTP(w, r)
		})
	}
}
