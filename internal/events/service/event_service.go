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

package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/wso2/analytics-event-adapter/internal/events/model"
	standardizationModel "github.com/wso2/analytics-event-adapter/internal/standardization/model"
	"github.com/wso2/analytics-event-adapter/internal/standardization/service"
	"github.com/wso2/analytics-event-adapter/internal/system/client"
	"github.com/wso2/analytics-event-adapter/internal/system/constants"
	systemContext "github.com/wso2/analytics-event-adapter/internal/system/context"
	errors2 "github.com/wso2/analytics-event-adapter/internal/system/errors"
	"github.com/wso2/analytics-event-adapter/internal/system/log"
)

type EventsServiceInterface interface {
	LogEvent(ctx context.Context, event model.Event) ([]model.ReportingMessage, error)
	LogScreen(ctx context.Context, screen model.ScreenView) ([]model.ReportingMessage, error)
	LogCommerceEvent(ctx context.Context, event model.CommerceEvent) ([]model.ReportingMessage, error)
}

// EventsService translates events and forwards them to the analytics backend.
type EventsService struct {
	client client.AnalyticsClientInterface
	now    func() time.Time
}

// NewEventsService creates a new instance of EventsService.
func NewEventsService(analyticsClient client.AnalyticsClientInterface) EventsServiceInterface {

	return &EventsService{client: analyticsClient, now: time.Now}
}

// LogEvent forwards a custom event under its backend name.
func (es *EventsService) LogEvent(ctx context.Context, event model.Event) ([]model.ReportingMessage, error) {

	name := backendEventName(event)
	if name == "" {
		return nil, errors2.NewClientErrorWithTraceID(errors2.ErrorMessage{
			Code:        errors2.INVALID_EVENT.Code,
			Message:     errors2.INVALID_EVENT.Message,
			Description: "Event name is empty after standardization.",
		}, http.StatusBadRequest, systemContext.GetTraceID(ctx))
	}

	es.forward(ctx, name, standardizedParams(event.CustomAttributes))
	return []model.ReportingMessage{es.report(constants.ReportingEvent, name)}, nil
}

// LogScreen forwards a screen view.
func (es *EventsService) LogScreen(ctx context.Context, screen model.ScreenView) ([]model.ReportingMessage, error) {

	params := standardizedParams(screen.Attributes)
	params[paramScreenName] = service.StandardizeNameString(screen.ScreenName, standardizationModel.EventScope)
	es.forward(ctx, eventScreenView, params)
	return []model.ReportingMessage{es.report(constants.ReportingScreenView, "")}, nil
}

// LogCommerceEvent forwards a commerce event. Events without a supported
// product action are accepted but not sent.
func (es *EventsService) LogCommerceEvent(ctx context.Context, event model.CommerceEvent) ([]model.ReportingMessage, error) {

	name, ok := commerceEventName(event)
	if !ok {
		log.GetLogger().Debug("Commerce event not forwarded", log.String("productAction", event.ProductAction))
		return []model.ReportingMessage{}, nil
	}

	es.forward(ctx, name, commerceParams(event))
	return []model.ReportingMessage{es.report(constants.ReportingCommerce, name)}, nil
}

func (es *EventsService) forward(ctx context.Context, name string, params map[string]interface{}) {

	if err := es.client.LogEvent(ctx, name, params); err != nil {
		log.GetLogger().Error("Failed to forward event to the analytics backend",
			log.String("event", name), log.String("traceId", systemContext.GetTraceID(ctx)), log.Error(err))
	}
}

func (es *EventsService) report(messageType, eventName string) model.ReportingMessage {
	return model.ReportingMessage{
		MessageType: messageType,
		Timestamp:   es.now().UnixMilli(),
		EventName:   eventName,
	}
}

// backendEventName returns "search" for search events, "view_item" for screen
// events and the standardized event name otherwise.
func backendEventName(event model.Event) string {

	if strings.EqualFold(event.EventType, eventSearch) {
		return eventSearch
	}
	if event.IsScreenEvent {
		return eventViewItem
	}
	return service.StandardizeNameString(event.EventName, standardizationModel.EventScope)
}

func standardizedParams(attributes map[string]string) map[string]interface{} {

	standardized := service.StandardizeAttributes(attributes, standardizationModel.EventScope)
	params := make(map[string]interface{}, len(standardized)+1)
	for key, value := range standardized {
		params[key] = value
	}
	return params
}
