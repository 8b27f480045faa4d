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
	"strings"

	"github.com/wso2/analytics-event-adapter/internal/kit_settings/handler"
	"github.com/wso2/analytics-event-adapter/internal/kit_settings/service"
)

type KitSettingsService struct {
	handler *handler.KitSettingsHandler
	mux     *http.ServeMux
}

func NewKitSettingsService(kitSettingsService service.KitSettingsServiceInterface) *KitSettingsService {
	s := &KitSettingsService{
		handler: handler.NewKitSettingsHandler(kitSettingsService),
		mux:     http.NewServeMux(),
	}

	// Register routes with Go 1.22 ServeMux patterns on the service mux
	s.mux.HandleFunc("GET /kit-settings", s.handler.GetKitSettings)
	s.mux.HandleFunc("PUT /kit-settings", s.handler.UpdateKitSettings)
	s.mux.HandleFunc("DELETE /kit-settings", s.handler.DeleteKitSettings)

	return s
}

// Route handles tenant-aware routing for kit settings
func (s *KitSettingsService) Route(w http.ResponseWriter, r *http.Request) {
	// Normalize trailing slashes for consistent matching
	if trimmed := strings.TrimSuffix(r.URL.Path, "/"); trimmed != "" {
		r.URL.Path = trimmed
	}
	s.mux.ServeHTTP(w, r)
}
