package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/terrasense/slope-monitor/pkg/metrics"
)

const (
	bestFitWaterTablePath = "/v1/water-table/best-fit"
	waterTableCurvePath   = "/v1/water-table/curve"
	slopeStabilityPath    = "/v1/stability/standard"
	bestFitViscosityPath  = "/v1/stability/best-fit-viscosity"
)

// Client is the HTTP binding to the calculation engine sidecar. All
// operations are plain JSON POSTs; the engine holds no state between
// calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Engine = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) BestFitWaterTable(ctx context.Context, input BestFitInput) (*BestFitResult, error) {
	var result BestFitResult
	if err := c.post(ctx, "best_fit_water_table", bestFitWaterTablePath, input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) WaterTableCurve(ctx context.Context, input CurveInput) ([]float64, error) {
	var result struct {
		Values []float64 `json:"values"`
	}
	if err := c.post(ctx, "water_table_curve", waterTableCurvePath, input, &result); err != nil {
		return nil, err
	}
	return result.Values, nil
}

func (c *Client) SlopeStability(ctx context.Context, input StabilityInput) (*StabilityResult, error) {
	var result StabilityResult
	if err := c.post(ctx, "slope_stability", slopeStabilityPath, input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) BestFitViscosity(ctx context.Context, input ViscosityInput) (*StabilityResult, error) {
	var result StabilityResult
	if err := c.post(ctx, "best_fit_viscosity", bestFitViscosityPath, input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) post(ctx context.Context, operation, path string, input any, output any) error {
	start := time.Now()
	err := c.doPost(ctx, path, input, output)
	metrics.ObserveEngineCall(operation, time.Since(start), err)
	return err
}

func (c *Client) doPost(ctx context.Context, path string, input any, output any) error {
	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to encode engine request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create engine request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("engine request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("engine returned status %d: %s", resp.StatusCode, string(payload))
	}

	if err := json.NewDecoder(resp.Body).Decode(output); err != nil {
		return fmt.Errorf("failed to decode engine response: %w", err)
	}

	return nil
}
