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

package security

import (
	"net/http"
	"strings"

	"github.com/wso2/analytics-event-adapter/internal/system/authn"
	"github.com/wso2/analytics-event-adapter/internal/system/authz"
	"github.com/wso2/analytics-event-adapter/internal/system/config"
	systemContext "github.com/wso2/analytics-event-adapter/internal/system/context"
	"github.com/wso2/analytics-event-adapter/internal/system/errors"
	"github.com/wso2/analytics-event-adapter/internal/system/log"
	"github.com/wso2/analytics-event-adapter/internal/system/utils"
)

// AuthnAndAuthz performs authentication and authorization for the given HTTP request and operation.
// It is a no-op when auth is disabled in the configuration.
func AuthnAndAuthz(r *http.Request, operation string) error {

	authCfg := config.GetRuntime().Config.Auth
	if !authCfg.Enabled {
		return nil
	}
	orgHandle := utils.ExtractOrgHandleFromPath(r)
	traceID := systemContext.GetTraceID(r.Context())

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		auditFailure(orgHandle, operation, traceID)
		return errors.NewClientErrorWithTraceID(errors.ErrorMessage{
			Code:        errors.UN_AUTHORIZED.Code,
			Message:     errors.UN_AUTHORIZED.Message,
			Description: "Missing or invalid Authorization header",
		}, http.StatusUnauthorized, traceID)
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")

	//  Validate token
	claims, err := authn.ValidateAuthenticationAndReturnClaims(token, orgHandle, authCfg)
	if err != nil {
		auditFailure(orgHandle, operation, traceID)
		return err
	}

	//  Validate authorization
	scope, _ := claims["scope"].(string)
	if !authz.ValidatePermission(scope, operation, authCfg.RequiredScopes) {
		return errors.NewClientErrorWithTraceID(errors.ErrorMessage{
			Code:        errors.FORBIDDEN.Code,
			Message:     errors.FORBIDDEN.Message,
			Description: errors.FORBIDDEN.Description,
		}, http.StatusForbidden, traceID)
	}

	subject, _ := claims["sub"].(string)
	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   subject,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      orgHandle,
		TargetType:    operation,
		ActionID:      log.ActionAuthenticationSuccess,
		TraceID:       traceID,
	})
	return nil
}

func auditFailure(orgHandle, operation, traceID string) {
	log.GetLogger().Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      orgHandle,
		TargetType:    operation,
		ActionID:      log.ActionAuthenticationFailure,
		TraceID:       traceID,
	})
}
