/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	errors2 "github.com/wso2/analytics-event-adapter/internal/system/errors"
	"github.com/wso2/analytics-event-adapter/internal/system/log"
)

// HTTPAnalyticsClient posts payloads to a measurement-protocol style collector.
type HTTPAnalyticsClient struct {
	Endpoint      string
	MeasurementID string
	APISecret     string
	HTTPClient    *http.Client
}

// NewHTTPAnalyticsClient creates an HTTPAnalyticsClient with a pooled transport.
func NewHTTPAnalyticsClient(endpoint, measurementID, apiSecret string, timeout time.Duration) *HTTPAnalyticsClient {

	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	tr := &http.Transport{
		TLSHandshakeTimeout: 10 * time.Second,
		IdleConnTimeout:     60 * time.Second,
		MaxIdleConns:        100,
		MaxConnsPerHost:     100,
	}
	return &HTTPAnalyticsClient{
		Endpoint:      endpoint,
		MeasurementID: measurementID,
		APISecret:     apiSecret,
		HTTPClient: &http.Client{
			Transport: tr,
			Timeout:   timeout,
		},
	}
}

func (c *HTTPAnalyticsClient) LogEvent(ctx context.Context, name string, params map[string]interface{}) error {
	return c.send(ctx, eventPayload(ctx, name, params))
}

func (c *HTTPAnalyticsClient) SetUserProperty(ctx context.Context, name string, value *string) error {
	return c.send(ctx, userPropertyPayload(ctx, name, value))
}

func (c *HTTPAnalyticsClient) SetUserID(ctx context.Context, userID string) error {
	return c.send(ctx, userIDPayload(ctx, userID))
}

func (c *HTTPAnalyticsClient) SetConsent(ctx context.Context, consent map[string]string) error {
	return c.send(ctx, consentPayload(ctx, consent))
}

// Close releases idle connections.
func (c *HTTPAnalyticsClient) Close() error {
	c.HTTPClient.CloseIdleConnections()
	return nil
}

func (c *HTTPAnalyticsClient) collectURL() (string, error) {

	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return "", err
	}
	query := u.Query()
	if c.MeasurementID != "" {
		query.Set("measurement_id", c.MeasurementID)
	}
	if c.APISecret != "" {
		query.Set("api_secret", c.APISecret)
	}
	u.RawQuery = query.Encode()
	return u.String(), nil
}

func (c *HTTPAnalyticsClient) send(ctx context.Context, payload Payload) error {

	logger := log.GetLogger()
	body, err := marshalPayload(payload)
	if err != nil {
		return err
	}

	endpoint, err := c.collectURL()
	if err != nil {
		return forwardError(fmt.Sprintf("Invalid analytics backend endpoint: %s", c.Endpoint), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return forwardError("Failed to create the analytics backend request.", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Debug("Analytics backend request failed", log.Error(err))
		return forwardError(fmt.Sprintf("Failed to send %s payload to the analytics backend.", payload.Kind()), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		errorMsg := fmt.Sprintf("Analytics backend returned status %d. Response: %s",
			resp.StatusCode, strings.TrimSpace(string(bodyBytes)))
		logger.Debug(errorMsg)
		return forwardError(errorMsg, fmt.Errorf("analytics backend non-2xx: %d", resp.StatusCode))
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	logger.Debug("Forwarded payload to the analytics backend", log.String("kind", payload.Kind()))
	return nil
}

func forwardError(description string, cause error) error {
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.FORWARD_TO_BACKEND.Code,
		Message:     errors2.FORWARD_TO_BACKEND.Message,
		Description: description,
	}, cause)
}
