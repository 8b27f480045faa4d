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

package services

import (
	"net/http"

	"github.com/wso2/analytics-event-adapter/internal/events/handler"
	"github.com/wso2/analytics-event-adapter/internal/events/service"
)

type EventService struct {
	handler *handler.EventHandler
	mux     *http.ServeMux
}

func NewEventService(eventsService service.EventsServiceInterface) *EventService {
	s := &EventService{
		handler: handler.NewEventHandler(eventsService),
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc("POST /events", s.handler.LogEvent)
	s.mux.HandleFunc("POST /screen-views", s.handler.LogScreen)
	s.mux.HandleFunc("POST /commerce-events", s.handler.LogCommerceEvent)
	return s
}

// Route handles tenant-aware routing for events, screen views and commerce events
func (s *EventService) Route(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
