package mealapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/platoplan/planner/internal/domain"
	"golang.org/x/time/rate"
)

const defaultTimeout = 15 * time.Second

// errorBody is the backend's JSON error envelope. Some endpoints use
// "error", others "message".
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e errorBody) text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// Client handles communication with the planner backend API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	authToken   string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new planner backend client
func NewClient(baseURL, authToken string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	// The backend allows ~60 requests per minute per user
	limiter := rate.NewLimiter(rate.Limit(1), 5) // burst of 5 requests

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     strings.TrimRight(baseURL, "/"),
		authToken:   authToken,
		rateLimiter: limiter,
	}
}

// SetDebug enables or disables verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// exponentialBackoff returns the wait duration before the given retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(1<<(attempt-1)) * 500 * time.Millisecond
}

// doRequest executes an HTTP request with auth headers and rate limiting
func (c *Client) doRequest(ctx context.Context, method, reqURL string) (*http.Response, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return resp, nil
}

// FetchWeeklyPlan retrieves the weekly plan starting at weekStart.
// Returns domain.ErrPlanNotFound when the backend has no plan for that
// week yet.
func (c *Client) FetchWeeklyPlan(ctx context.Context, weekStart string) (*domain.WeeklyPlanResponse, error) {
	if c.debug {
		log.Printf("[MealAPI] FetchWeeklyPlan week=%s", weekStart)
	}

	endpoint := fmt.Sprintf("%s/v1/planificador/semana", c.baseURL)
	if weekStart != "" {
		params := url.Values{}
		params.Add("fecha", weekStart)
		endpoint = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	// Retry transient failures; 404 and recognized domain errors are final
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		resp, err := c.doRequest(ctx, http.MethodGet, endpoint)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return nil, lastErr
			}
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return nil, domain.ErrPlanNotFound
		}
		if resp.StatusCode != http.StatusOK {
			if err := classifyError(resp.StatusCode, body); err != nil {
				return nil, err
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrBackendUnavailable, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		var plan domain.WeeklyPlanResponse
		if err := json.Unmarshal(body, &plan); err != nil {
			return nil, fmt.Errorf("failed to decode weekly plan: %w", err)
		}
		return &plan, nil
	}

	return nil, lastErr
}

// GenerateWeeklySuggestions asks the backend to build a weekly plan
// from the user's recommendation pool. Returns
// domain.ErrNoBaseRecommendations when that pool does not exist yet.
func (c *Client) GenerateWeeklySuggestions(ctx context.Context) (*domain.WeeklyPlanResponse, error) {
	if c.debug {
		log.Printf("[MealAPI] GenerateWeeklySuggestions")
	}

	endpoint := fmt.Sprintf("%s/v1/planificador/semana/generar", c.baseURL)

	resp, err := c.doRequest(ctx, http.MethodPost, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		if err := classifyError(resp.StatusCode, body); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrBackendUnavailable, resp.StatusCode)
	}

	var plan domain.WeeklyPlanResponse
	if err := json.Unmarshal(body, &plan); err != nil {
		return nil, fmt.Errorf("failed to decode generated plan: %w", err)
	}
	return &plan, nil
}

// FetchBaseRecommendations generates up to count base recipe
// recommendations for the user.
func (c *Client) FetchBaseRecommendations(ctx context.Context, count int) ([]domain.WireRecipe, error) {
	if c.debug {
		log.Printf("[MealAPI] FetchBaseRecommendations count=%d", count)
	}

	endpoint := fmt.Sprintf("%s/v1/recetas/sugerencias", c.baseURL)
	if count > 0 {
		params := url.Values{}
		params.Add("cantidad", fmt.Sprintf("%d", count))
		endpoint = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	resp, err := c.doRequest(ctx, http.MethodGet, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		if err := classifyError(resp.StatusCode, body); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrBackendUnavailable, resp.StatusCode)
	}

	var recipes []domain.WireRecipe
	if err := json.Unmarshal(body, &recipes); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations: %w", err)
	}
	return recipes, nil
}

// classifyError maps a recognized backend error payload to a domain
// sentinel. The message wording lives only here, so the rest of the
// system can branch with errors.Is instead of string sniffing.
func classifyError(statusCode int, body []byte) error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return nil
	}

	msg := strings.ToLower(eb.text())
	switch {
	case strings.Contains(msg, "no existe planificación") ||
		strings.Contains(msg, "no hay planificación"):
		return domain.ErrPlanNotFound
	case strings.Contains(msg, "genera recomendaciones") ||
		strings.Contains(msg, "recomendaciones base"):
		return domain.ErrNoBaseRecommendations
	}
	return nil
}
