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
	"fmt"
	"net/http"
	"sort"
	"strings"

	consentService "github.com/wso2/analytics-event-adapter/internal/consent/service"
	"github.com/wso2/analytics-event-adapter/internal/kit_settings/store"
	"github.com/wso2/analytics-event-adapter/internal/system/constants"
	systemContext "github.com/wso2/analytics-event-adapter/internal/system/context"
	errors2 "github.com/wso2/analytics-event-adapter/internal/system/errors"
	"github.com/wso2/analytics-event-adapter/internal/system/log"
)

// KitSettingsServiceInterface defines the service interface.
type KitSettingsServiceInterface interface {
	GetKitSettings(orgHandle string) (map[string]string, error)
	UpdateKitSettings(ctx context.Context, orgHandle string, settings map[string]string) (map[string]string, error)
	DeleteKitSettings(ctx context.Context, orgHandle string) error
}

// KitSettingsService is the default implementation.
type KitSettingsService struct {
	store store.KitSettingsStoreInterface
}

// NewKitSettingsService returns a new instance.
func NewKitSettingsService(settingsStore store.KitSettingsStoreInterface) KitSettingsServiceInterface {
	return &KitSettingsService{store: settingsStore}
}

// GetKitSettings returns the stored settings bag. An organization without
// settings gets an empty bag.
func (s *KitSettingsService) GetKitSettings(orgHandle string) (map[string]string, error) {

	settings, err := s.store.GetKitSettings(orgHandle)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return map[string]string{}, nil
	}
	return settings, nil
}

// UpdateKitSettings validates and upserts the given keys, returning the full bag.
func (s *KitSettingsService) UpdateKitSettings(ctx context.Context, orgHandle string,
	settings map[string]string) (map[string]string, error) {

	traceID := systemContext.GetTraceID(ctx)
	if len(settings) == 0 {
		return nil, invalidSettings("No kit settings provided.", traceID)
	}
	if description := validateKitSettings(settings); description != "" {
		return nil, invalidSettings(description, traceID)
	}

	if err := s.store.UpsertKitSettings(orgHandle, settings); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	log.GetLogger().Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      orgHandle,
		TargetType:    log.TargetTypeKitSettings,
		ActionID:      log.ActionUpdateKitSettings,
		TraceID:       traceID,
		Data:          map[string]interface{}{"keys": keys},
	})
	return s.GetKitSettings(orgHandle)
}

// DeleteKitSettings removes every setting of the organization.
func (s *KitSettingsService) DeleteKitSettings(ctx context.Context, orgHandle string) error {

	if err := s.store.DeleteKitSettings(orgHandle); err != nil {
		return err
	}
	log.GetLogger().Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      orgHandle,
		TargetType:    log.TargetTypeKitSettings,
		ActionID:      log.ActionDeleteKitSettings,
		TraceID:       systemContext.GetTraceID(ctx),
	})
	return nil
}

var defaultConsentKeys = map[string]bool{
	constants.DefaultAdStorageConsentKey:         true,
	constants.DefaultAdUserDataConsentKey:        true,
	constants.DefaultAdPersonalizationConsentKey: true,
	constants.DefaultAnalyticsStorageConsentKey:  true,
}

// validateKitSettings returns a description of the first invalid setting, or
// an empty string.
func validateKitSettings(settings map[string]string) string {

	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := settings[key]
		if !constants.AllowedKitSettingKeys[key] {
			return fmt.Sprintf("Unknown kit setting: %s.", key)
		}
		if value == "" {
			continue
		}
		switch {
		case defaultConsentKeys[key]:
			if !equalsAny(value, constants.ConsentGrantedValue, constants.ConsentDeniedValue,
				constants.ConsentUnspecifiedValue) {
				return fmt.Sprintf("Invalid value '%s' for %s. Allowed values are %s, %s and %s.", value, key,
					constants.ConsentGrantedValue, constants.ConsentDeniedValue, constants.ConsentUnspecifiedValue)
			}
		case key == constants.UserIdFieldKey:
			if !equalsAny(value, constants.UserIdCustomerIdValue, constants.UserIdEmailValue, constants.UserIdMPIDValue) {
				return fmt.Sprintf("Invalid value '%s' for %s. Allowed values are %s, %s and %s.", value, key,
					constants.UserIdCustomerIdValue, constants.UserIdEmailValue, constants.UserIdMPIDValue)
			}
		case key == constants.ConsentMappingKey:
			if err := consentService.ValidateConsentMapping(value); err != nil {
				return fmt.Sprintf("Invalid %s: %s.", key, err.Error())
			}
		}
	}
	return ""
}

func equalsAny(value string, candidates ...string) bool {
	for _, candidate := range candidates {
		if strings.EqualFold(value, candidate) {
			return true
		}
	}
	return false
}

func invalidSettings(description, traceID string) error {
	return errors2.NewClientErrorWithTraceID(errors2.ErrorMessage{
		Code:        errors2.INVALID_KIT_SETTINGS.Code,
		Message:     errors2.INVALID_KIT_SETTINGS.Message,
		Description: description,
	}, http.StatusBadRequest, traceID)
}
