package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/openvin/vin-decoder/internal/models"
	"github.com/openvin/vin-decoder/internal/nhtsa"
)

const validVIN = "1HGBH41JXMN109186"

type fakeExtractor struct {
	out string
	err error
}

func (f *fakeExtractor) Extract(ctx context.Context, data, mediaType string) (string, error) {
	return f.out, f.err
}

type fakeLookup struct {
	record *nhtsa.Record
	err    error
	calls  int
}

func (f *fakeLookup) Decode(ctx context.Context, vin string) (*nhtsa.Record, error) {
	f.calls++
	return f.record, f.err
}

type fakeEstimator struct {
	out string
}

func (f *fakeEstimator) Estimate(ctx context.Context, year, makeName, model string, currentYear int) string {
	return f.out
}

type fakeStore struct {
	records []models.HistoryRecord
	err     error
}

func (f *fakeStore) Append(rec models.HistoryRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append([]models.HistoryRecord{rec}, f.records...)
	return nil
}

func (f *fakeStore) All() ([]models.HistoryRecord, error) {
	return f.records, nil
}

type fakeCache struct {
	entries map[string]models.VehicleDetails
}

func (f *fakeCache) Get(ctx context.Context, vin string) (*models.VehicleDetails, bool, error) {
	if d, ok := f.entries[vin]; ok {
		return &d, true, nil
	}
	return nil, false, nil
}

func (f *fakeCache) Set(ctx context.Context, vin string, details models.VehicleDetails) error {
	f.entries[vin] = details
	return nil
}

func newTestService(extractor Extractor, lookup Lookup, estimator Estimator, store HistoryStore) *DecodeService {
	logger := log.New()
	logger.SetOutput(io.Discard)
	s := NewDecodeService(logger, extractor, lookup, estimator, store)
	s.now = func() time.Time { return time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestDecodeSuccess(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(
		&fakeExtractor{out: validVIN},
		&fakeLookup{record: &nhtsa.Record{Make: "HONDA", Model: "Civic", ModelYear: "2021"}},
		&fakeEstimator{out: "$18000 - $22000"},
		store,
	)

	resp, err := svc.Decode(context.Background(), &models.DecodeRequest{Image: "data:image/png;base64,abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success {
		t.Error("expected success response")
	}
	if resp.VIN != validVIN {
		t.Errorf("VIN = %s, want %s", resp.VIN, validVIN)
	}
	if resp.Details.Make != "HONDA" || resp.Details.Age != "5 Years" {
		t.Errorf("unexpected details: %+v", resp.Details)
	}
	if resp.Details.EstimatedUsedPrice != "$18000 - $22000" {
		t.Errorf("price = %q", resp.Details.EstimatedUsedPrice)
	}

	if len(store.records) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(store.records))
	}
	if store.records[0].VIN != validVIN {
		t.Errorf("history VIN = %s", store.records[0].VIN)
	}
	if store.records[0].Timestamp.IsZero() {
		t.Error("history timestamp not set")
	}
}

func TestDecodeMalformedExtractionIsBadRequest(t *testing.T) {
	malformed := "1HGBH41JXM" // 10 characters
	svc := newTestService(
		&fakeExtractor{out: malformed},
		&fakeLookup{},
		&fakeEstimator{},
		&fakeStore{},
	)

	_, err := svc.Decode(context.Background(), &models.DecodeRequest{Image: "abc"})
	if !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if !strings.Contains(err.Error(), malformed) {
		t.Errorf("error %q does not contain malformed output %q", err.Error(), malformed)
	}
}

func TestDecodeVisionFailureIsUpstream(t *testing.T) {
	svc := newTestService(
		&fakeExtractor{err: fmt.Errorf("vision API error: rate limited")},
		&fakeLookup{},
		&fakeEstimator{},
		&fakeStore{},
	)

	_, err := svc.Decode(context.Background(), &models.DecodeRequest{Image: "abc"})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrBadRequest) {
		t.Error("vision failure must not be classified as bad request")
	}
}

func TestDecodeLookupFailureIsUpstream(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(
		&fakeExtractor{out: validVIN},
		&fakeLookup{err: fmt.Errorf("NHTSA returned status 503")},
		&fakeEstimator{},
		store,
	)

	_, err := svc.Decode(context.Background(), &models.DecodeRequest{Image: "abc"})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrBadRequest) {
		t.Error("lookup failure must not be classified as bad request")
	}
	if len(store.records) != 0 {
		t.Error("failed decode must not be persisted")
	}
}

func TestDecodeHistoryFailureIsSwallowed(t *testing.T) {
	svc := newTestService(
		&fakeExtractor{out: validVIN},
		&fakeLookup{record: &nhtsa.Record{ModelYear: "2021"}},
		&fakeEstimator{out: "N/A"},
		&fakeStore{err: fmt.Errorf("disk full")},
	)

	resp, err := svc.Decode(context.Background(), &models.DecodeRequest{Image: "abc"})
	if err != nil {
		t.Fatalf("history failure must not fail the request: %v", err)
	}
	if !resp.Success {
		t.Error("expected success despite history failure")
	}
}

func TestDecodeServesCachedDetails(t *testing.T) {
	lookup := &fakeLookup{record: &nhtsa.Record{Make: "HONDA"}}
	store := &fakeStore{}
	svc := newTestService(&fakeExtractor{out: validVIN}, lookup, &fakeEstimator{out: "N/A"}, store)

	cached := models.VehicleDetails{Make: "TOYOTA", EstimatedUsedPrice: "$1 - $2"}
	svc.SetCacheClient(&fakeCache{entries: map[string]models.VehicleDetails{validVIN: cached}})

	resp, err := svc.Decode(context.Background(), &models.DecodeRequest{Image: "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lookup.calls != 0 {
		t.Errorf("lookup called %d times on cache hit", lookup.calls)
	}
	if resp.Details != cached {
		t.Errorf("details = %+v, want cached %+v", resp.Details, cached)
	}
	if len(store.records) != 1 {
		t.Error("cache hit must still be recorded in history")
	}
}

func TestDecodePopulatesCache(t *testing.T) {
	c := &fakeCache{entries: map[string]models.VehicleDetails{}}
	svc := newTestService(
		&fakeExtractor{out: validVIN},
		&fakeLookup{record: &nhtsa.Record{Make: "HONDA", ModelYear: "2021"}},
		&fakeEstimator{out: "$1 - $2"},
		&fakeStore{},
	)
	svc.SetCacheClient(c)

	if _, err := svc.Decode(context.Background(), &models.DecodeRequest{Image: "abc"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry, ok := c.entries[validVIN]
	if !ok {
		t.Fatal("decode did not populate the cache")
	}
	if entry.EstimatedUsedPrice != "$1 - $2" {
		t.Errorf("cached price = %q", entry.EstimatedUsedPrice)
	}
}
