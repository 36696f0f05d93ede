// Package pricing estimates a used-market price range for a decoded
// vehicle. A paid valuation provider is used when configured; otherwise
// a fixed depreciation curve stands in.
package pricing

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"

	"github.com/openvin/vin-decoder/internal/config"
)

// NoEstimate is returned when the model year is unusable and no paid
// valuation is available.
const NoEstimate = "N/A"

const (
	baseValue       = 35000.0
	depreciation    = 0.85
	rangeLowFactor  = 0.8
	rangeHighFactor = 1.2
)

type valuationResponse struct {
	PriceLow  float64 `json:"price_low"`
	PriceHigh float64 `json:"price_high"`
}

type Estimator struct {
	logger     *log.Logger
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewEstimator(logger *log.Logger, cfg config.ValuationConfig) *Estimator {
	return &Estimator{
		logger:     logger,
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Estimate returns a display-ready price range for the vehicle.
// The paid path is tried first when an API key is configured; any
// failure there falls through silently to the depreciation formula.
func (e *Estimator) Estimate(ctx context.Context, year, makeName, model string, currentYear int) string {
	if e.apiKey != "" {
		if estimate, err := e.queryValuation(ctx, year, makeName, model); err == nil {
			return estimate
		} else {
			e.logger.Warnf("valuation API unavailable, using fallback: %v", err)
		}
	}
	return fallbackEstimate(year, currentYear)
}

func (e *Estimator) queryValuation(ctx context.Context, year, makeName, model string) (string, error) {
	q := url.Values{}
	q.Set("year", year)
	q.Set("make", makeName)
	q.Set("model", model)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/v1/valuation?%s", e.baseURL, q.Encode()), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build valuation request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("valuation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("valuation returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read valuation response: %w", err)
	}

	var val valuationResponse
	if err := sonic.Unmarshal(body, &val); err != nil {
		return "", fmt.Errorf("failed to parse valuation response: %w", err)
	}
	if val.PriceLow <= 0 || val.PriceHigh <= 0 {
		return "", fmt.Errorf("valuation response missing price range")
	}

	return formatRange(val.PriceLow, val.PriceHigh), nil
}

// fallbackEstimate applies the placeholder depreciation curve:
// value = 35000 * 0.85^age, reported as [0.8v, 1.2v].
func fallbackEstimate(year string, currentYear int) string {
	y, err := strconv.Atoi(year)
	if err != nil {
		return NoEstimate
	}

	age := currentYear - y
	value := baseValue * math.Pow(depreciation, float64(age))
	return formatRange(value*rangeLowFactor, value*rangeHighFactor)
}

func formatRange(low, high float64) string {
	return fmt.Sprintf("$%d - $%d", int64(math.Round(low)), int64(math.Round(high)))
}
