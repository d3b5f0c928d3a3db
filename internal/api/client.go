// Package api is the single HTTP gateway to the packing-assistant
// backend. Every other package's backend calls go through Client so
// that failures surface uniformly.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/idilsaglam/packup/internal/model"
)

// RequestError is a non-2xx response. Its message is the raw response
// body when the backend sent one, so server-side detail is not lost.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	if strings.TrimSpace(e.Body) == "" {
		return "request failed"
	}
	return e.Body
}

// Client talks JSON to the backend.
type Client struct {
	base  string
	token string
	http  *http.Client
	log   *zap.Logger
}

// NewClient builds a client for the given base URL. A zero timeout
// means no timeout. token, when non-empty, is sent as the session
// cookie on every request.
func NewClient(base string, timeout time.Duration, token string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		base:  strings.TrimRight(base, "/"),
		token: token,
		http:  &http.Client{Timeout: timeout},
		log:   log,
	}
}

// do issues one request. body (when non-nil) is JSON-encoded; on 2xx
// the response is decoded into out (when non-nil). Non-2xx responses
// become a *RequestError carrying the body text.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: c.token})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		c.log.Debug("backend rejected request",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return &RequestError{Status: resp.StatusCode, Body: string(text)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Insights fetches today's context, model metrics and history stats.
func (c *Client) Insights(ctx context.Context) (*model.Insights, error) {
	var out model.Insights
	if err := c.do(ctx, http.MethodGet, "/api/insights", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PredictToday fetches the predictions for the current day.
func (c *Client) PredictToday(ctx context.Context) ([]model.PredictedItem, error) {
	var out struct {
		Predictions []model.PredictedItem `json:"predictions"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/predict_today", nil, &out); err != nil {
		return nil, err
	}
	return out.Predictions, nil
}

// UpdateChecklist submits packed/needed statuses as a single batch.
// The response body is not parsed beyond success or failure.
func (c *Client) UpdateChecklist(ctx context.Context, statuses []model.ChecklistStatus) error {
	body := struct {
		Statuses []model.ChecklistStatus `json:"statuses"`
	}{Statuses: statuses}
	return c.do(ctx, http.MethodPost, "/api/checklist_update", body, nil)
}

// TrainModel asks the backend to retrain. No payload either way.
func (c *Client) TrainModel(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/train_model", nil, nil)
}

// SimulatePredict fetches predictions for a hypothetical context.
func (c *Client) SimulatePredict(ctx context.Context, sc model.SimContext) ([]model.PredictedItem, error) {
	var out struct {
		Predictions []model.PredictedItem `json:"predictions"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/simulate_predict", sc, &out); err != nil {
		return nil, err
	}
	return out.Predictions, nil
}
