package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/openvin/vin-decoder/internal/image"
	"github.com/openvin/vin-decoder/internal/metrics"
	"github.com/openvin/vin-decoder/internal/models"
	"github.com/openvin/vin-decoder/internal/nhtsa"
	"github.com/openvin/vin-decoder/internal/vin"
)

// ErrBadRequest marks failures caused by the client's input (missing
// image, unreadable VIN). Everything else is an upstream failure.
var ErrBadRequest = errors.New("bad request")

type Extractor interface {
	Extract(ctx context.Context, data, mediaType string) (string, error)
}

type Lookup interface {
	Decode(ctx context.Context, vin string) (*nhtsa.Record, error)
}

type Estimator interface {
	Estimate(ctx context.Context, year, makeName, model string, currentYear int) string
}

type HistoryStore interface {
	Append(rec models.HistoryRecord) error
	All() ([]models.HistoryRecord, error)
}

type Cache interface {
	Get(ctx context.Context, vin string) (*models.VehicleDetails, bool, error)
	Set(ctx context.Context, vin string, details models.VehicleDetails) error
}

// DecodeService runs the full pipeline: normalize the image, read the
// VIN off it, validate, decode against NHTSA, price, persist.
type DecodeService struct {
	logger    *log.Logger
	extractor Extractor
	lookup    Lookup
	estimator Estimator
	store     HistoryStore
	cache     Cache
	now       func() time.Time
}

func NewDecodeService(
	logger *log.Logger,
	extractor Extractor,
	lookup Lookup,
	estimator Estimator,
	store HistoryStore,
) *DecodeService {
	return &DecodeService{
		logger:    logger,
		extractor: extractor,
		lookup:    lookup,
		estimator: estimator,
		store:     store,
		now:       time.Now,
	}
}

// SetCacheClient enables the optional decoded-details cache.
func (s *DecodeService) SetCacheClient(cache Cache) {
	s.cache = cache
}

func (s *DecodeService) Decode(ctx context.Context, req *models.DecodeRequest) (*models.DecodeResponse, error) {
	data, mediaType := image.Normalize(req.Image)

	start := time.Now()
	extracted, err := s.extractor.Extract(ctx, data, mediaType)
	metrics.PipelineStageDuration(metrics.StageVision, time.Since(start))
	if err != nil {
		metrics.PipelineStageTotal(metrics.StageVision, "error")
		return nil, err
	}
	metrics.PipelineStageTotal(metrics.StageVision, "ok")

	if err := vin.Validate(extracted); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, err)
	}

	details, err := s.vehicleDetails(ctx, extracted)
	if err != nil {
		return nil, err
	}

	rec := models.HistoryRecord{
		VIN:       extracted,
		Timestamp: s.now().UTC(),
		Details:   *details,
	}
	if err := s.store.Append(rec); err != nil {
		metrics.PipelineStageTotal(metrics.StageHistory, "error")
		s.logger.Errorf("failed to save history: %v", err)
	} else {
		metrics.PipelineStageTotal(metrics.StageHistory, "ok")
	}

	return &models.DecodeResponse{
		Success: true,
		VIN:     extracted,
		Details: *details,
	}, nil
}

func (s *DecodeService) vehicleDetails(ctx context.Context, vinNumber string) (*models.VehicleDetails, error) {
	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, vinNumber)
		if err != nil {
			s.logger.Warnf("cache get error: %v", err)
		}
		if found {
			s.logger.Debugf("vehicle details for %s served from cache", vinNumber)
			return cached, nil
		}
	}

	currentYear := s.now().Year()

	start := time.Now()
	record, err := s.lookup.Decode(ctx, vinNumber)
	metrics.PipelineStageDuration(metrics.StageLookup, time.Since(start))
	if err != nil {
		metrics.PipelineStageTotal(metrics.StageLookup, "error")
		return nil, err
	}
	metrics.PipelineStageTotal(metrics.StageLookup, "ok")

	details := record.Details(currentYear)

	start = time.Now()
	details.EstimatedUsedPrice = s.estimator.Estimate(
		ctx, record.ModelYear, details.Make, details.Model, currentYear)
	metrics.PipelineStageDuration(metrics.StageValuation, time.Since(start))

	if s.cache != nil {
		if err := s.cache.Set(ctx, vinNumber, details); err != nil {
			s.logger.Warnf("failed to set cache: %v", err)
		}
	}
	return &details, nil
}

// History returns the persisted decode log, newest first.
func (s *DecodeService) History() ([]models.HistoryRecord, error) {
	return s.store.All()
}
