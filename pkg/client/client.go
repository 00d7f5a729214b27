package client

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sathishrouthu/blog-cli/pkg/config"
	"github.com/sathishrouthu/blog-cli/pkg/logger"
)

var httpClient *resty.Client

// Init initializes the HTTP client
func Init() {
	httpClient = resty.New()

	baseURL := config.GetString("api.base_url")
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second

	httpClient.SetBaseURL(baseURL)
	httpClient.SetTimeout(timeout)
	httpClient.SetHeader("User-Agent", "Blog-CLI/0.1.0")
	httpClient.SetHeader("Content-Type", "application/json")

	// Every request carries the platform API key
	if apiKey := config.GetString("api.key"); apiKey != "" {
		httpClient.SetHeader("X-API-KEY", apiKey)
	}

	// Add request/response logging
	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)
		return nil
	})

	httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response", "status", resp.StatusCode())
		return nil
	})
}

// GetClient returns the HTTP client
func GetClient() *resty.Client {
	if httpClient == nil {
		Init()
	}
	return httpClient
}

// SetBaseURL overrides the API base URL on the active client
func SetBaseURL(baseURL string) {
	if httpClient == nil {
		Init()
	}
	httpClient.SetBaseURL(baseURL)
}

// Reset discards the client so the next request picks up fresh config
func Reset() {
	httpClient = nil
}
