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

package managers

import (
	"net/http"
	"strings"

	consentProvider "github.com/wso2/analytics-event-adapter/internal/consent/provider"
	eventsProvider "github.com/wso2/analytics-event-adapter/internal/events/provider"
	healthProvider "github.com/wso2/analytics-event-adapter/internal/health_check/provider"
	kitSettingsProvider "github.com/wso2/analytics-event-adapter/internal/kit_settings/provider"
	"github.com/wso2/analytics-event-adapter/internal/system/client"
	"github.com/wso2/analytics-event-adapter/internal/system/constants"
	"github.com/wso2/analytics-event-adapter/internal/system/services"
	"github.com/wso2/analytics-event-adapter/internal/system/utils"
	usersProvider "github.com/wso2/analytics-event-adapter/internal/users/provider"
)

type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

type ServiceManager struct {
	mux    *http.ServeMux
	client client.AnalyticsClientInterface
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, analyticsClient client.AnalyticsClientInterface) ServiceManagerInterface {

	return &ServiceManager{
		mux:    mux,
		client: analyticsClient,
	}
}

func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	utils.RewriteToDefaultTenant(apiBasePath, sm.mux, constants.DefaultTenant)

	kitSettings := kitSettingsProvider.NewKitSettingsProvider().GetKitSettingsService()
	kitSettingsService := services.NewKitSettingsService(kitSettings)
	consentService := services.NewConsentService(
		consentProvider.NewConsentProvider(kitSettings, sm.client).GetConsentService())
	eventService := services.NewEventService(eventsProvider.NewEventsProvider(sm.client).GetEventsService())
	usersService := services.NewUsersService(
		usersProvider.NewUsersProvider(kitSettings, sm.client).GetUsersService())

	healthService := services.NewHealthService(healthProvider.NewHealthCheckProvider().GetHealthCheckService())
	sm.mux.HandleFunc("/health", healthService.Route)
	sm.mux.HandleFunc("/ready", healthService.Route)

	// Single tenant dispatcher for all services
	utils.MountTenantDispatcher(sm.mux, apiBasePath, func(w http.ResponseWriter, r *http.Request) {
		// Internal path after tenant and base path stripping
		path := strings.TrimSuffix(r.URL.Path, "/")

		// Dispatch to correct service based on path
		switch {
		case path == "/kit-settings":
			kitSettingsService.Route(w, r)
		case path == "/consent":
			consentService.Route(w, r)
		case path == "/events", path == "/screen-views", path == "/commerce-events":
			eventService.Route(w, r)
		case strings.HasPrefix(path, "/users/"):
			usersService.Route(w, r)
		default:
			http.NotFound(w, r)
		}
	})
	return nil
}
