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

	"github.com/wso2/analytics-event-adapter/internal/kit_settings/model"
	"github.com/wso2/analytics-event-adapter/internal/kit_settings/service"
	"github.com/wso2/analytics-event-adapter/internal/system/errors"
	"github.com/wso2/analytics-event-adapter/internal/system/security"
	"github.com/wso2/analytics-event-adapter/internal/system/utils"
)

// KitSettingsHandler handles GET, PUT and DELETE operations for kit settings.
type KitSettingsHandler struct {
	service service.KitSettingsServiceInterface
}

// NewKitSettingsHandler returns a new KitSettingsHandler instance.
func NewKitSettingsHandler(settingsService service.KitSettingsServiceInterface) *KitSettingsHandler {
	return &KitSettingsHandler{service: settingsService}
}

// GetKitSettings handles GET /kit-settings
func (h *KitSettingsHandler) GetKitSettings(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, "kit_settings:view"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	orgHandle := utils.ExtractOrgHandleFromPath(r)

	settings, err := h.service.GetKitSettings(orgHandle)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, model.KitSettingsAPI{Settings: settings})
}

// UpdateKitSettings handles PUT /kit-settings
func (h *KitSettingsHandler) UpdateKitSettings(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, "kit_settings:update"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	orgHandle := utils.ExtractOrgHandleFromPath(r)

	var request model.KitSettingsUpdateAPI
	if err := utils.DecodeJSONBody(w, r, &request, errors.INVALID_KIT_SETTINGS, "kit settings"); err != nil {
		utils.HandleError(w, r, err)
		return
	}

	settings, err := h.service.UpdateKitSettings(r.Context(), orgHandle, request.Settings)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, model.KitSettingsAPI{Settings: settings})
}

// DeleteKitSettings handles DELETE /kit-settings
func (h *KitSettingsHandler) DeleteKitSettings(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, "kit_settings:delete"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	orgHandle := utils.ExtractOrgHandleFromPath(r)

	if err := h.service.DeleteKitSettings(r.Context(), orgHandle); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
