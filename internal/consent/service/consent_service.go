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

package service

import (
	"context"

	"github.com/wso2/analytics-event-adapter/internal/consent/model"
	"github.com/wso2/analytics-event-adapter/internal/system/client"
	systemContext "github.com/wso2/analytics-event-adapter/internal/system/context"
	"github.com/wso2/analytics-event-adapter/internal/system/log"
)

// KitSettingsReader loads the settings bag of an organization.
type KitSettingsReader interface {
	GetKitSettings(orgHandle string) (map[string]string, error)
}

// ConsentServiceInterface defines the service interface.
type ConsentServiceInterface interface {
	UpdateConsent(ctx context.Context, orgHandle string, consentState string) (model.DecisionMap, error)
	UpdateConsentTree(ctx context.Context, orgHandle string, tree *model.ConsentTree) (model.DecisionMap, error)
}

// ConsentService resolves consent updates and forwards them to the backend.
type ConsentService struct {
	settings KitSettingsReader
	client   client.AnalyticsClientInterface
}

// NewConsentService returns a new instance.
func NewConsentService(settings KitSettingsReader, analyticsClient client.AnalyticsClientInterface) ConsentServiceInterface {
	return &ConsentService{settings: settings, client: analyticsClient}
}

// UpdateConsent resolves the serialized consent state against the organization's
// current settings. An empty decision map is returned without contacting the backend.
func (cs *ConsentService) UpdateConsent(ctx context.Context, orgHandle string,
	consentState string) (model.DecisionMap, error) {

	return cs.UpdateConsentTree(ctx, orgHandle, ParseConsentTree(consentState))
}

// UpdateConsentTree resolves an already parsed consent state.
func (cs *ConsentService) UpdateConsentTree(ctx context.Context, orgHandle string,
	tree *model.ConsentTree) (model.DecisionMap, error) {

	logger := log.GetLogger()
	settings, err := cs.settings.GetKitSettings(orgHandle)
	if err != nil {
		return nil, err
	}

	decisions := ResolveConsent(DefaultsFromSettings(settings), MappingFromSettings(settings), tree)
	if len(decisions) == 0 {
		logger.Debug("No consent signal resolved, skipping backend consent update",
			log.String("orgHandle", orgHandle))
		return decisions, nil
	}

	consent := make(map[string]string, len(decisions))
	for category, status := range decisions {
		consent[category.Tag()] = string(status)
	}
	if err := cs.client.SetConsent(ctx, consent); err != nil {
		logger.Error("Failed to forward consent to the analytics backend",
			log.String("orgHandle", orgHandle), log.Error(err))
		return decisions, nil
	}

	logger.Audit(log.AuditEvent{
		InitiatorID:   systemContext.GetClientID(ctx),
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      orgHandle,
		TargetType:    log.TargetTypeConsent,
		ActionID:      log.ActionConsentForwarded,
		TraceID:       systemContext.GetTraceID(ctx),
		Data:          consent,
	})
	return decisions, nil
}
