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

package provider

import (
	"github.com/wso2/analytics-event-adapter/internal/events/service"
	"github.com/wso2/analytics-event-adapter/internal/system/client"
)

// EventsProviderInterface defines the interface for the events provider.
type EventsProviderInterface interface {
	GetEventsService() service.EventsServiceInterface
}

// EventsProvider is the default implementation of the EventsProviderInterface.
type EventsProvider struct {
	client client.AnalyticsClientInterface
}

// NewEventsProvider creates a new instance of EventsProvider.
func NewEventsProvider(analyticsClient client.AnalyticsClientInterface) EventsProviderInterface {
	return &EventsProvider{client: analyticsClient}
}

// GetEventsService returns the events service instance.
func (ep *EventsProvider) GetEventsService() service.EventsServiceInterface {
	return service.NewEventsService(ep.client)
}
