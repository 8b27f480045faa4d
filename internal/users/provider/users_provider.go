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
	"github.com/wso2/analytics-event-adapter/internal/system/client"
	"github.com/wso2/analytics-event-adapter/internal/users/service"
)

type UsersProviderInterface interface {
	GetUsersService() service.UsersServiceInterface
}

// UsersProvider is the default implementation of the UsersProviderInterface.
type UsersProvider struct {
	settings service.KitSettingsReader
	client   client.AnalyticsClientInterface
}

// NewUsersProvider creates a new instance of UsersProvider.
func NewUsersProvider(settings service.KitSettingsReader,
	analyticsClient client.AnalyticsClientInterface) UsersProviderInterface {
	return &UsersProvider{settings: settings, client: analyticsClient}
}

// GetUsersService returns the users service instance.
func (up *UsersProvider) GetUsersService() service.UsersServiceInterface {
	return service.NewUsersService(up.settings, up.client)
}
