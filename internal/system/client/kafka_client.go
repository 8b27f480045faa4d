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
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/wso2/analytics-event-adapter/internal/system/config"
	"github.com/wso2/analytics-event-adapter/internal/system/log"
)

// messageWriter is the subset of *kafka.Writer used by KafkaAnalyticsClient.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaAnalyticsClient publishes one message per backend call on a topic.
type KafkaAnalyticsClient struct {
	topic  string
	writer messageWriter
}

// NewKafkaAnalyticsClient creates a client writing to the configured topic.
// Writes are bounded by timeout.
func NewKafkaAnalyticsClient(cfg config.KafkaConfig, timeout time.Duration) *KafkaAnalyticsClient {

	log.GetLogger().Info("Kafka analytics writer created",
		log.String("brokers", strings.Join(cfg.Brokers, ",")),
		log.String("topic", cfg.Topic),
		log.Int("batchSize", cfg.BatchSize))
	return &KafkaAnalyticsClient{
		topic:  cfg.Topic,
		writer: newKafkaWriter(cfg, timeout),
	}
}

func newKafkaWriter(cfg config.KafkaConfig, timeout time.Duration) *kafka.Writer {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 1
	}
	batchTimeout := time.Duration(cfg.BatchTimeoutMillis) * time.Millisecond
	if batchTimeout <= 0 {
		batchTimeout = 10 * time.Millisecond
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    batchSize,
		BatchTimeout: batchTimeout,
		WriteTimeout: timeout,
		RequiredAcks: kafka.RequireOne,
	}
}

func (c *KafkaAnalyticsClient) LogEvent(ctx context.Context, name string, params map[string]interface{}) error {
	return c.send(ctx, eventPayload(ctx, name, params))
}

func (c *KafkaAnalyticsClient) SetUserProperty(ctx context.Context, name string, value *string) error {
	return c.send(ctx, userPropertyPayload(ctx, name, value))
}

func (c *KafkaAnalyticsClient) SetUserID(ctx context.Context, userID string) error {
	return c.send(ctx, userIDPayload(ctx, userID))
}

func (c *KafkaAnalyticsClient) SetConsent(ctx context.Context, consent map[string]string) error {
	return c.send(ctx, consentPayload(ctx, consent))
}

// Close flushes and closes the writer.
func (c *KafkaAnalyticsClient) Close() error {
	return c.writer.Close()
}

func (c *KafkaAnalyticsClient) send(ctx context.Context, payload Payload) error {

	body, err := marshalPayload(payload)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(payload.ClientID),
		Value: body,
		Headers: []kafka.Header{
			{Key: "message_id", Value: []byte(uuid.New().String())},
			{Key: "payload_type", Value: []byte(payload.Kind())},
		},
	}
	if err := c.writer.WriteMessages(ctx, msg); err != nil {
		log.GetLogger().Debug("Kafka write failed", log.String("topic", c.topic), log.Error(err))
		return forwardError(fmt.Sprintf("Failed to publish %s payload to topic %s.", payload.Kind(), c.topic), err)
	}
	return nil
}
