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

	"github.com/wso2/analytics-event-adapter/internal/system/log"
)

// LogAnalyticsClient writes every payload to the structured log.
type LogAnalyticsClient struct {
	logger *log.Logger
}

// NewLogAnalyticsClient creates a LogAnalyticsClient on the shared logger.
func NewLogAnalyticsClient() *LogAnalyticsClient {
	return &LogAnalyticsClient{logger: log.GetLogger().With(log.String("backend", "log"))}
}

func (c *LogAnalyticsClient) LogEvent(ctx context.Context, name string, params map[string]interface{}) error {
	return c.write(eventPayload(ctx, name, params))
}

func (c *LogAnalyticsClient) SetUserProperty(ctx context.Context, name string, value *string) error {
	return c.write(userPropertyPayload(ctx, name, value))
}

func (c *LogAnalyticsClient) SetUserID(ctx context.Context, userID string) error {
	return c.write(userIDPayload(ctx, userID))
}

func (c *LogAnalyticsClient) SetConsent(ctx context.Context, consent map[string]string) error {
	return c.write(consentPayload(ctx, consent))
}

func (c *LogAnalyticsClient) Close() error {
	return nil
}

func (c *LogAnalyticsClient) write(payload Payload) error {

	body, err := marshalPayload(payload)
	if err != nil {
		return err
	}
	c.logger.Info("Analytics payload", log.String("kind", payload.Kind()), log.String("payload", string(body)))
	return nil
}
