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

package utils

import (
	"context"
	"encoding/json"
	"errors" // Standard Go errors package
	"net/http"
	"strings"

	"github.com/wso2/analytics-event-adapter/internal/system/constants"
	traceCtx "github.com/wso2/analytics-event-adapter/internal/system/context"
	customerrors "github.com/wso2/analytics-event-adapter/internal/system/errors" // Alias for the custom errors
	"github.com/wso2/analytics-event-adapter/internal/system/log"
)

// HandleError sends an HTTP error response based on the provided error
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	traceID := traceCtx.GetTraceID(r.Context())
	w.Header().Set("Content-Type", "application/json")

	var clientError *customerrors.ClientError
	if ok := errors.As(err, &clientError); ok {
		statusCode := clientError.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		w.WriteHeader(statusCode)
		_ = json.NewEncoder(w).Encode(customerrors.ErrorMessage{
			Code:        clientError.Code,
			Message:     clientError.Message,
			Description: clientError.Description,
			TraceID:     traceID,
		})
		return
	}

	logger := log.GetLogger()
	logger.Error(err.Error(), log.String("trace_id", traceID))
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(customerrors.ErrorMessage{
		Code:    "",
		Message: "Internal server error",
		TraceID: traceID,
	})
}

// WriteJSONResponse writes data as a JSON body with the given status code.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// DecodeJSONBody decodes the request body into target, rejecting unknown fields. Decode
// failures are returned as a bad request client error carrying the given error message.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, target interface{}, errMsg customerrors.ErrorMessage,
	resourceName string) error {

	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxRequestBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return customerrors.NewClientErrorWithTraceID(customerrors.ErrorMessage{
			Code:        errMsg.Code,
			Message:     errMsg.Message,
			Description: HandleDecodeError(err, resourceName),
		}, http.StatusBadRequest, traceCtx.GetTraceID(r.Context()))
	}
	return nil
}

// ExtractOrgHandleFromPath returns the organization handle the tenant dispatcher placed
// in the request context.
func ExtractOrgHandleFromPath(r *http.Request) string {
	orgHandle, ok := r.Context().Value(constants.TenantContextKey).(string)
	if !ok || orgHandle == "" {
		return constants.DefaultTenant
	}
	return orgHandle
}

// RewriteToDefaultTenant redirects `/api/v1/...` to `/t/carbon.super/api/v1/...`
func RewriteToDefaultTenant(apiBasePath string, mux *http.ServeMux, defaultTenant string) {
	mux.HandleFunc(apiBasePath+"/", func(w http.ResponseWriter, r *http.Request) {
		newPath := "/t/" + defaultTenant + r.URL.Path
		http.Redirect(w, r, newPath, http.StatusTemporaryRedirect)
	})
}

// MountTenantDispatcher routes `/t/{tenant}/api/v1/...` requests to handlerFunc with the
// tenant in the request context and the tenant and base path stripped from the URL.
func MountTenantDispatcher(mux *http.ServeMux, apiBasePath string, handlerFunc http.HandlerFunc) {
	mux.HandleFunc("/t/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")

		if !strings.HasPrefix(path, "/t/") {
			http.NotFound(w, r)
			return
		}

		// Split: /t/{tenant}/api/v1/...
		parts := strings.SplitN(path[len("/t/"):], "/", 2)
		if len(parts) != 2 || parts[0] == "" {
			http.Error(w, "Invalid tenant path format", http.StatusBadRequest)
			return
		}

		tenantID := parts[0]
		remainingPath := "/" + parts[1]

		if !strings.HasPrefix(remainingPath, apiBasePath) {
			http.Error(w, "Path must start with "+apiBasePath, http.StatusNotFound)
			return
		}

		relativePath := strings.TrimPrefix(remainingPath, apiBasePath)

		ctx := context.WithValue(r.Context(), constants.TenantContextKey, tenantID)
		r = r.WithContext(ctx)
		r.URL.Path = relativePath

		handlerFunc(w, r)
	})
}
