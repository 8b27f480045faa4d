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
	"io"
	"net/http"

	"github.com/wso2/analytics-event-adapter/internal/consent/service"
	"github.com/wso2/analytics-event-adapter/internal/system/constants"
	systemContext "github.com/wso2/analytics-event-adapter/internal/system/context"
	"github.com/wso2/analytics-event-adapter/internal/system/errors"
	"github.com/wso2/analytics-event-adapter/internal/system/security"
	"github.com/wso2/analytics-event-adapter/internal/system/utils"
)

// ConsentHandler handles consent state updates.
type ConsentHandler struct {
	service service.ConsentServiceInterface
}

// NewConsentHandler returns a new ConsentHandler instance.
func NewConsentHandler(consentService service.ConsentServiceInterface) *ConsentHandler {
	return &ConsentHandler{service: consentService}
}

// UpdateConsent handles POST /consent
func (h *ConsentHandler) UpdateConsent(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, "consent:update"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	orgHandle := utils.ExtractOrgHandleFromPath(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, constants.MaxRequestBodyBytes))
	if err != nil {
		utils.HandleError(w, r, invalidConsentState(r, utils.HandleDecodeError(err, "consent state")))
		return
	}
	tree, err := service.ParseConsentState(string(body))
	if err != nil {
		utils.HandleError(w, r, invalidConsentState(r, "Consent state must be a JSON object."))
		return
	}

	decisions, err := h.service.UpdateConsentTree(r.Context(), orgHandle, tree)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, decisions)
}

func invalidConsentState(r *http.Request, description string) error {
	return errors.NewClientErrorWithTraceID(errors.ErrorMessage{
		Code:        errors.INVALID_CONSENT_STATE.Code,
		Message:     errors.INVALID_CONSENT_STATE.Message,
		Description: description,
	}, http.StatusBadRequest, systemContext.GetTraceID(r.Context()))
}
