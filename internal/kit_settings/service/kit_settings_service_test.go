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
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	errors2 "github.com/wso2/analytics-event-adapter/internal/system/errors"
	"github.com/wso2/analytics-event-adapter/internal/system/log"
)

type MockKitSettingsStore struct {
	mock.Mock
}

func (m *MockKitSettingsStore) GetKitSettings(orgHandle string) (map[string]string, error) {
	args := m.Called(orgHandle)
	settings, _ := args.Get(0).(map[string]string)
	return settings, args.Error(1)
}

func (m *MockKitSettingsStore) UpsertKitSettings(orgHandle string, settings map[string]string) error {
	return m.Called(orgHandle, settings).Error(0)
}

func (m *MockKitSettingsStore) DeleteKitSettings(orgHandle string) error {
	return m.Called(orgHandle).Error(0)
}

func TestGetKitSettings_EmptyBag(t *testing.T) {
	_ = log.Init("DEBUG")
	mockStore := new(MockKitSettingsStore)
	svc := KitSettingsService{store: mockStore}
	mockStore.On("GetKitSettings", "org1").Return(nil, nil)

	settings, err := svc.GetKitSettings("org1")

	require.NoError(t, err)
	assert.NotNil(t, settings)
	assert.Empty(t, settings)
}

func TestUpdateKitSettings_Valid(t *testing.T) {
	mockStore := new(MockKitSettingsStore)
	svc := KitSettingsService{store: mockStore}
	update := map[string]string{
		"defaultAdStorageConsentSDK":         "granted",
		"defaultAdUserDataConsentSDK":        "DENIED",
		"defaultAdPersonalizationConsentSDK": "Unspecified",
		"defaultAnalyticsStorageConsentSDK":  "",
		"consentMappingSDK":                  `[{"map":"Marketing","value":"ad_storage"}]`,
		"userIdField":                        "CustomerId",
	}
	mockStore.On("UpsertKitSettings", "org1", update).Return(nil)
	mockStore.On("GetKitSettings", "org1").Return(update, nil)

	settings, err := svc.UpdateKitSettings(context.Background(), "org1", update)

	require.NoError(t, err)
	assert.Equal(t, update, settings)
	mockStore.AssertExpectations(t)
}

func TestUpdateKitSettings_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]string
		contains string
	}{
		{"empty", map[string]string{}, "No kit settings"},
		{"unknown key", map[string]string{"apiKey": "x"}, "Unknown kit setting: apiKey"},
		{"bad default", map[string]string{"defaultAdStorageConsentSDK": "Yes"}, "defaultAdStorageConsentSDK"},
		{"bad user id field", map[string]string{"userIdField": "phone"}, "userIdField"},
		{"bad mapping", map[string]string{"consentMappingSDK": `[{"map":"Marketing"}]`}, "consentMappingSDK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(MockKitSettingsStore)
			svc := KitSettingsService{store: mockStore}

			_, err := svc.UpdateKitSettings(context.Background(), "org1", tt.settings)

			require.Error(t, err)
			clientErr, ok := err.(*errors2.ClientError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
			assert.Equal(t, errors2.INVALID_KIT_SETTINGS.Code, clientErr.Code)
			assert.Contains(t, clientErr.Description, tt.contains)
			mockStore.AssertNotCalled(t, "UpsertKitSettings", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateKitSettings_StoreFailure(t *testing.T) {
	mockStore := new(MockKitSettingsStore)
	svc := KitSettingsService{store: mockStore}
	mockStore.On("UpsertKitSettings", "org1", mock.Anything).Return(errors.New("db down"))

	_, err := svc.UpdateKitSettings(context.Background(), "org1", map[string]string{"userIdField": "email"})

	assert.EqualError(t, err, "db down")
}

func TestDeleteKitSettings(t *testing.T) {
	mockStore := new(MockKitSettingsStore)
	svc := KitSettingsService{store: mockStore}
	mockStore.On("DeleteKitSettings", "org1").Return(nil).Once()
	mockStore.On("DeleteKitSettings", "org2").Return(errors.New("db down")).Once()

	assert.NoError(t, svc.DeleteKitSettings(context.Background(), "org1"))
	assert.Error(t, svc.DeleteKitSettings(context.Background(), "org2"))
	mockStore.AssertExpectations(t)
}
