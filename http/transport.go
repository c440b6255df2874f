package http

import (
	"encoding/json"
	"errors"
	"github.com/go-kit/log"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go-price-calculator/convert"
	"go-price-calculator/domain"
	"go-price-calculator/pricing"
	"go-price-calculator/rates"
	"net/http"
	"time"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Service  convert.Service
	Gatherer prometheus.Gatherer
	Logger   log.Logger
	router   http.ServeMux
	validate *validator.Validate
}

func NewServer(s convert.Service, gatherer prometheus.Gatherer, logger log.Logger) *Server {
	server := &Server{
		Service:  s,
		Gatherer: gatherer,
		Logger:   logger,
		router:   http.ServeMux{},
		validate: validator.New(),
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/price", s.price())
	s.router.Handle("/api/convert", s.convert())
	s.router.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	rw.Header().Set("X-Request-ID", requestID)

	defer func(begin time.Time) {
		s.Logger.Log(
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"took", time.Since(begin),
		)
	}(time.Now())
	s.router.ServeHTTP(rw, r)
}

// price produces HTTP handler for discounted, taxed prices
func (s *Server) price() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		Quantity  uint     `json:"quantity"`
		UnitPrice float64  `json:"unitPrice" validate:"gte=0"`
		TaxRate   *float64 `json:"taxRate" validate:"omitempty,gte=0,lte=100"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Price     float64 `json:"price"`
		Formatted string  `json:"formatted"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var req request
		if !s.decode(rw, r, &req) {
			return
		}

		var taxRate *pricing.Percentage
		if req.TaxRate != nil {
			p, err := pricing.NewPercentage(*req.TaxRate)
			if err != nil {
				writeError(rw, http.StatusBadRequest, "invalid tax rate")
				return
			}
			taxRate = &p
		}

		writeJSON(rw, response{
			Price:     pricing.CalculatePrice(req.Quantity, req.UnitPrice, taxRate),
			Formatted: pricing.CalculatePriceFormatted(req.Quantity, req.UnitPrice, taxRate),
		})
	}
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	type request struct {
		Amount   domain.Amount `json:"amount"`
		Currency string        `json:"currency" validate:"required"`
	}

	type response struct {
		Converted string `json:"converted"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var req request
		if !s.decode(rw, r, &req) {
			return
		}

		currency, err := domain.ParseCurrency(req.Currency)
		if err != nil {
			writeError(rw, http.StatusBadRequest, "unknown currency")
			return
		}

		converted, err := s.Service.Convert(r.Context(), req.Amount, currency)
		if err != nil {
			var parsingErr *rates.ResponseParsingError
			if errors.Is(err, rates.ErrRequestFailed) || errors.Is(err, rates.ErrValueNotFound) || errors.As(err, &parsingErr) {
				writeError(rw, http.StatusBadGateway, "exchange rate unavailable")
				return
			}
			writeError(rw, http.StatusBadRequest, "failed conversion")
			return
		}

		writeJSON(rw, response{Converted: converted})
	}
}

// decode reads and validates a JSON POST body, writing an error response on failure
func (s *Server) decode(rw http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()

	if r.Method != http.MethodPost {
		writeError(rw, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(rw, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		writeError(rw, http.StatusBadRequest, "invalid request")
		return false
	}
	return true
}

func writeJSON(rw http.ResponseWriter, v any) {
	rw.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(rw)
	if err := enc.Encode(v); err != nil {
		writeError(rw, http.StatusInternalServerError, "failed json encoding")
	}
}

func writeError(rw http.ResponseWriter, status int, msg string) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(map[string]string{"error": msg})
}
