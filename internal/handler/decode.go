package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/openvin/vin-decoder/internal/models"
	"github.com/openvin/vin-decoder/internal/service"
)

type decodeService interface {
	Decode(ctx context.Context, req *models.DecodeRequest) (*models.DecodeResponse, error)
	History() ([]models.HistoryRecord, error)
}

type DecodeHandler struct {
	service   decodeService
	indexPage string
}

func NewDecodeHandler(svc decodeService, indexPage string) *DecodeHandler {
	return &DecodeHandler{
		service:   svc,
		indexPage: indexPage,
	}
}

// DecodeVIN godoc
// @Summary Decode a VIN plate photo
// @Description Reads the 17-character VIN off the uploaded image, decodes it via NHTSA and estimates a used price range. Image is sent as base64 string in JSON, optionally data-URL prefixed.
// @Tags decode
// @Accept json
// @Produce json
// @Param request body models.DecodeRequest true "Decode request"
// @Success 200 {object} models.DecodeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/decode-vin [post]
func (h *DecodeHandler) DecodeVIN(w http.ResponseWriter, r *http.Request) {
	var req models.DecodeRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Decode(r.Context(), &req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrBadRequest) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// History godoc
// @Summary Past decodes
// @Description Returns the persisted decode log, newest first, at most the configured limit.
// @Tags decode
// @Produce json
// @Success 200 {array} models.HistoryRecord
// @Failure 500 {object} models.ErrorResponse
// @Router /api/history [get]
func (h *DecodeHandler) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.History()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Health godoc
// @Summary Health check
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *DecodeHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}

// Index serves the upload page.
func (h *DecodeHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, h.indexPage)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Success: false, Error: msg})
}
