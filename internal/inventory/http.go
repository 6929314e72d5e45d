package inventory

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"romix/pkg/kit"
)

type Server struct {
	Store     *Store
	Log       *zap.Logger
	Metrics   *Metrics
	RateLimit *kit.IPRateLimiter
}

type orderRequest struct {
	Items []LineItem `json:"items"`
}

type orderResponse struct {
	OrderID         string     `json:"orderId"`
	UpdatedVariants []Update   `json:"updatedVariants"`
	Items           []LineItem `json:"items"`
}

const maxOrderBody = 1 << 20

// Register mounts the inventory routes on r.
func (s *Server) Register(r chi.Router) {
	r.Get("/variants", s.listVariants)

	if s.RateLimit != nil {
		r.With(s.RateLimit.Middleware).Post("/orders", s.createOrder)
	} else {
		r.Post("/orders", s.createOrder)
	}
}

func (s *Server) listVariants(w http.ResponseWriter, r *http.Request) {
	variants, err := s.Store.List()
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list variants failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, variants)
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	req, err := decodeOrderRequest(w, r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if len(req.Items) == 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "items required", nil)
		return
	}

	updates, accepted, err := s.Store.Reserve(req.Items)
	if err != nil {
		s.writeReserveError(w, r, err)
		return
	}
	s.Metrics.observe(outcomeAccepted)

	kit.WriteJSON(w, http.StatusCreated, orderResponse{
		OrderID:         "o_" + uuid.NewString(),
		UpdatedVariants: updates,
		Items:           accepted,
	})
}

func decodeOrderRequest(w http.ResponseWriter, r *http.Request) (orderRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxOrderBody)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req orderRequest
	if err := dec.Decode(&req); err != nil {
		return orderRequest{}, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return orderRequest{}, errors.New("extra data after json object")
	}

	return req, nil
}

func (s *Server) writeReserveError(w http.ResponseWriter, r *http.Request, err error) {
	var ie *ItemError
	if errors.As(err, &ie) {
		s.Metrics.observe(outcomeRejected)

		details := map[string]any{
			"productId": ie.ProductID,
			"color":     ie.Color,
			"size":      ie.Size,
		}
		status := http.StatusBadRequest
		if errors.Is(err, ErrInsufficientStock) {
			status = http.StatusConflict
		}
		kit.WriteError(w, r, status, ie.Err.Error(), details)
		return
	}

	s.Metrics.observe(outcomeError)
	if s.Log != nil {
		s.Log.Error("reservation failed", zap.Error(err))
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}
