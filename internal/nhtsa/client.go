// Package nhtsa decodes VINs against the public NHTSA vPIC API.
package nhtsa

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"

	"github.com/openvin/vin-decoder/internal/config"
	"github.com/openvin/vin-decoder/internal/models"
)

const unknown = "Unknown"

// Record is the subset of the DecodeVinValuesExtended result this
// service cares about. vPIC returns every field as a string, absent
// values arrive empty.
type Record struct {
	Make          string `json:"Make"`
	Model         string `json:"Model"`
	ModelYear     string `json:"ModelYear"`
	DriveType     string `json:"DriveType"`
	DisplacementL string `json:"DisplacementL"`
	EngineModel   string `json:"EngineModel"`
	PlantCity     string `json:"PlantCity"`
	PlantCountry  string `json:"PlantCountry"`
	VehicleType   string `json:"VehicleType"`
	BodyClass     string `json:"BodyClass"`
}

type decodeResponse struct {
	Results []Record `json:"Results"`
}

type Client struct {
	logger     *log.Logger
	baseURL    string
	httpClient *http.Client
}

func NewClient(logger *log.Logger, cfg config.NHTSAConfig) *Client {
	return &Client{
		logger:     logger,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Decode fetches the extended decode for vin and returns the first
// result record.
func (c *Client) Decode(ctx context.Context, vin string) (*Record, error) {
	url := fmt.Sprintf("%s/vehicles/DecodeVinValuesExtended/%s?format=json", c.baseURL, vin)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build NHTSA request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("NHTSA request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("NHTSA returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read NHTSA response: %w", err)
	}

	var decoded decodeResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to parse NHTSA response: %w", err)
	}
	if len(decoded.Results) == 0 {
		return &Record{}, nil
	}
	return &decoded.Results[0], nil
}

// Details maps a record into the display structure, substituting
// "Unknown" for anything vPIC left empty. currentYear drives the age
// calculation.
func (r *Record) Details(currentYear int) models.VehicleDetails {
	engine := r.DisplacementL
	if engine == "" {
		engine = r.EngineModel
	}

	manufacturedIn := strings.TrimSpace(r.PlantCity + " " + r.PlantCountry)

	return models.VehicleDetails{
		Make:           orUnknown(r.Make),
		Model:          orUnknown(r.Model),
		Year:           orUnknown(r.ModelYear),
		DriveType:      orUnknown(r.DriveType),
		Engine:         orUnknown(engine),
		ManufacturedIn: orUnknown(manufacturedIn),
		VehicleType:    orUnknown(r.VehicleType),
		BodyClass:      orUnknown(r.BodyClass),
		Age:            vehicleAge(r.ModelYear, currentYear),
	}
}

func vehicleAge(modelYear string, currentYear int) string {
	if !isDigits(modelYear) {
		return unknown
	}
	year, _ := strconv.Atoi(modelYear)
	return fmt.Sprintf("%d Years", currentYear-year)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}
