package models

import (
	"fmt"
	"time"
)

// DecodeRequest carries one base64-encoded image of a VIN plate,
// optionally with a data-URL prefix.
type DecodeRequest struct {
	Image string `json:"image" example:"data:image/jpeg;base64,/9j/4AAQSkZJRg..."`
}

func (r DecodeRequest) Validate() error {
	if r.Image == "" {
		return fmt.Errorf("no image provided")
	}
	return nil
}

// VehicleDetails is the display-ready view of a decoded vehicle. Keys are
// rendered exactly as shown in the UI, so the json tags carry spaces.
type VehicleDetails struct {
	Make               string `json:"Make"`
	Model              string `json:"Model"`
	Year               string `json:"Year"`
	DriveType          string `json:"Drive Type"`
	Engine             string `json:"Engine"`
	ManufacturedIn     string `json:"Manufactured In"`
	VehicleType        string `json:"Vehicle Type"`
	BodyClass          string `json:"Body Class"`
	Age                string `json:"Age"`
	EstimatedUsedPrice string `json:"Estimated Used Price"`
}

type DecodeResponse struct {
	Success bool           `json:"success"`
	VIN     string         `json:"vin"`
	Details VehicleDetails `json:"details"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// HistoryRecord is one persisted decode, newest kept first in the log.
type HistoryRecord struct {
	VIN       string         `json:"vin"`
	Timestamp time.Time      `json:"timestamp"`
	Details   VehicleDetails `json:"details"`
}
