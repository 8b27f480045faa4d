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

package provider

import (
	"github.com/wso2/analytics-event-adapter/internal/kit_settings/service"
	"github.com/wso2/analytics-event-adapter/internal/kit_settings/store"
	dbProvider "github.com/wso2/analytics-event-adapter/internal/system/database/provider"
)

// KitSettingsProviderInterface defines the interface for the kit settings provider.
type KitSettingsProviderInterface interface {
	GetKitSettingsService() service.KitSettingsServiceInterface
}

// KitSettingsProvider is the default implementation of the KitSettingsProviderInterface.
type KitSettingsProvider struct{}

// NewKitSettingsProvider creates a new instance of KitSettingsProvider.
func NewKitSettingsProvider() KitSettingsProviderInterface {
	return &KitSettingsProvider{}
}

// GetKitSettingsService returns a kit settings service backed by the Postgres store.
func (kp *KitSettingsProvider) GetKitSettingsService() service.KitSettingsServiceInterface {
	return service.NewKitSettingsService(store.NewKitSettingsStore(dbProvider.NewDBProvider()))
}
