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
	"context"
	"fmt"
	"time"

	"github.com/wso2/analytics-event-adapter/internal/system/config"
	"github.com/wso2/analytics-event-adapter/internal/system/constants"
	"github.com/wso2/analytics-event-adapter/internal/system/log"
)

// AnalyticsClientInterface is the handle to the downstream analytics backend.
// Implementations deliver synchronously and do not retry.
type AnalyticsClientInterface interface {
	// LogEvent forwards a named event with its parameters.
	LogEvent(ctx context.Context, name string, params map[string]interface{}) error
	// SetUserProperty sets a user property. A nil value removes the property.
	SetUserProperty(ctx context.Context, name string, value *string) error
	// SetUserID sets the backend user id.
	SetUserID(ctx context.Context, userID string) error
	// SetConsent forwards a category tag to status map.
	SetConsent(ctx context.Context, consent map[string]string) error
	Close() error
}

// NewAnalyticsClient builds the backend client selected by the configuration.
func NewAnalyticsClient(cfg config.BackendConfig) (AnalyticsClientInterface, error) {

	logger := log.GetLogger()
	switch cfg.Type {
	case constants.BackendTypeHTTP:
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("backend endpoint is required for the %s backend", cfg.Type)
		}
		logger.Info("Using HTTP analytics backend", log.String("endpoint", cfg.Endpoint))
		timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
		return NewHTTPAnalyticsClient(cfg.Endpoint, cfg.MeasurementID, cfg.APISecret, timeout), nil
	case constants.BackendTypeKafka:
		if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.Topic == "" {
			return nil, fmt.Errorf("kafka brokers and topic are required for the %s backend", cfg.Type)
		}
		logger.Info("Using Kafka analytics backend", log.String("topic", cfg.Kafka.Topic),
			log.Any("brokers", cfg.Kafka.Brokers))
		timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
		return NewKafkaAnalyticsClient(cfg.Kafka, timeout), nil
	case constants.BackendTypeLog, "":
		logger.Info("Using log analytics backend")
		return NewLogAnalyticsClient(), nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}
