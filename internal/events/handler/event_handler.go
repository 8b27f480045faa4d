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

package handler

import (
	"net/http"

	"github.com/wso2/analytics-event-adapter/internal/events/model"
	"github.com/wso2/analytics-event-adapter/internal/events/service"
	"github.com/wso2/analytics-event-adapter/internal/system/errors"
	"github.com/wso2/analytics-event-adapter/internal/system/security"
	"github.com/wso2/analytics-event-adapter/internal/system/utils"
)

// EventHandler accepts events, screen views and commerce events.
type EventHandler struct {
	service service.EventsServiceInterface
}

// NewEventHandler returns a new EventHandler instance.
func NewEventHandler(eventsService service.EventsServiceInterface) *EventHandler {
	return &EventHandler{service: eventsService}
}

// LogEvent handles POST /events
func (eh *EventHandler) LogEvent(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, "events:send"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	var event model.Event
	if err := utils.DecodeJSONBody(w, r, &event, errors.INVALID_EVENT, "event"); err != nil {
		utils.HandleError(w, r, err)
		return
	}

	messages, err := eh.service.LogEvent(r.Context(), event)
	eh.respond(w, r, messages, err)
}

// LogScreen handles POST /screen-views
func (eh *EventHandler) LogScreen(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, "events:send"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	var screen model.ScreenView
	if err := utils.DecodeJSONBody(w, r, &screen, errors.INVALID_SCREEN_VIEW, "screen view"); err != nil {
		utils.HandleError(w, r, err)
		return
	}

	messages, err := eh.service.LogScreen(r.Context(), screen)
	eh.respond(w, r, messages, err)
}

// LogCommerceEvent handles POST /commerce-events
func (eh *EventHandler) LogCommerceEvent(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, "events:send"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	var event model.CommerceEvent
	if err := utils.DecodeJSONBody(w, r, &event, errors.INVALID_COMMERCE_EVENT, "commerce event"); err != nil {
		utils.HandleError(w, r, err)
		return
	}

	messages, err := eh.service.LogCommerceEvent(r.Context(), event)
	eh.respond(w, r, messages, err)
}

func (eh *EventHandler) respond(w http.ResponseWriter, r *http.Request, messages []model.ReportingMessage, err error) {
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusAccepted, model.ReportingResponse{Messages: messages})
}
