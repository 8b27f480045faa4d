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
	"context"
	"net/http"

	systemContext "github.com/wso2/analytics-event-adapter/internal/system/context"
	"github.com/wso2/analytics-event-adapter/internal/system/errors"
	"github.com/wso2/analytics-event-adapter/internal/system/security"
	"github.com/wso2/analytics-event-adapter/internal/system/utils"
	"github.com/wso2/analytics-event-adapter/internal/users/model"
	"github.com/wso2/analytics-event-adapter/internal/users/service"
)

// UsersHandler handles user attribute and identity requests.
type UsersHandler struct {
	service service.UsersServiceInterface
}

// NewUsersHandler returns a new UsersHandler instance.
func NewUsersHandler(usersService service.UsersServiceInterface) *UsersHandler {
	return &UsersHandler{service: usersService}
}

// SetUserAttribute handles PUT /users/{user}/attributes/{key}
func (h *UsersHandler) SetUserAttribute(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, "users:update"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	var body model.AttributeValue
	if err := utils.DecodeJSONBody(w, r, &body, errors.INVALID_USER_ATTRIBUTE, "user attribute"); err != nil {
		utils.HandleError(w, r, err)
		return
	}

	update, err := h.service.SetUserAttribute(userContext(r), r.PathValue("key"), body.Value)
	respond(w, r, update, err)
}

// RemoveUserAttribute handles DELETE /users/{user}/attributes/{key}
func (h *UsersHandler) RemoveUserAttribute(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, "users:update"); err != nil {
		utils.HandleError(w, r, err)
		return
	}

	update, err := h.service.RemoveUserAttribute(userContext(r), r.PathValue("key"))
	respond(w, r, update, err)
}

// IncrementUserAttribute handles POST /users/{user}/attributes/{key}/increment
func (h *UsersHandler) IncrementUserAttribute(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, "users:update"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	var body model.AttributeIncrement
	if err := utils.DecodeJSONBody(w, r, &body, errors.INVALID_USER_ATTRIBUTE, "user attribute increment"); err != nil {
		utils.HandleError(w, r, err)
		return
	}

	update, err := h.service.IncrementUserAttribute(userContext(r), r.PathValue("key"), body.Value)
	respond(w, r, update, err)
}

// SetAllUserAttributes handles PUT /users/{user}/attributes
func (h *UsersHandler) SetAllUserAttributes(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, "users:update"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	var body model.UserAttributes
	if err := utils.DecodeJSONBody(w, r, &body, errors.INVALID_USER_ATTRIBUTE, "user attributes"); err != nil {
		utils.HandleError(w, r, err)
		return
	}

	update, err := h.service.SetAllUserAttributes(userContext(r), body.Attributes)
	respond(w, r, update, err)
}

// OnIdentityChanged handles POST /users/identity
func (h *UsersHandler) OnIdentityChanged(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, "users:update"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	var change model.IdentityChange
	if err := utils.DecodeJSONBody(w, r, &change, errors.INVALID_IDENTITY_CHANGE, "identity change"); err != nil {
		utils.HandleError(w, r, err)
		return
	}

	update, err := h.service.OnIdentityChanged(r.Context(), utils.ExtractOrgHandleFromPath(r), change)
	respond(w, r, update, err)
}

// userContext binds the {user} path segment as the analytics client id.
func userContext(r *http.Request) context.Context {
	if user := r.PathValue("user"); user != "" {
		return systemContext.WithClientID(r.Context(), user)
	}
	return r.Context()
}

func respond(w http.ResponseWriter, r *http.Request, update *model.UserUpdate, err error) {
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, update)
}
