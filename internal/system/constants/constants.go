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

package constants

type contextKey string

const (
	ApiBasePath         = "/api/v1"
	DefaultTenant       = "carbon.super"
	TenantContextKey    = contextKey("tenant")
	TraceIDContextKey   = contextKey("trace_id")
	ClientIDContextKey  = contextKey("client_id")
	TraceIDHeader       = "X-Trace-Id"
	ClientIDHeader      = "X-Client-Id"
	DefaultConfigFile   = "repository/conf/deployment.yaml"
	DefaultEnvFileDir   = "repository/conf"
	DefaultCurrency     = "USD"
	ConsentedField      = "consented"
	MaxRequestBodyBytes = 1 << 20
	ReportingScreenView = "screen_view"
	ReportingEvent      = "event"
	ReportingCommerce   = "commerce_event"
)

// Kit setting keys of the host settings bag.
const (
	DefaultAdStorageConsentKey         = "defaultAdStorageConsentSDK"
	DefaultAdUserDataConsentKey        = "defaultAdUserDataConsentSDK"
	DefaultAdPersonalizationConsentKey = "defaultAdPersonalizationConsentSDK"
	DefaultAnalyticsStorageConsentKey  = "defaultAnalyticsStorageConsentSDK"
	ConsentMappingKey                  = "consentMappingSDK"
	UserIdFieldKey                     = "userIdField"
)

// Values accepted for the userIdField setting.
const (
	UserIdCustomerIdValue = "customerId"
	UserIdEmailValue      = "email"
	UserIdMPIDValue       = "mpid"
)

// Default consent setting values.
const (
	ConsentGrantedValue     = "Granted"
	ConsentDeniedValue      = "Denied"
	ConsentUnspecifiedValue = "Unspecified"
)

// AllowedKitSettingKeys lists the keys accepted by the kit settings API.
var AllowedKitSettingKeys = map[string]bool{
	DefaultAdStorageConsentKey:         true,
	DefaultAdUserDataConsentKey:        true,
	DefaultAdPersonalizationConsentKey: true,
	DefaultAnalyticsStorageConsentKey:  true,
	ConsentMappingKey:                  true,
	UserIdFieldKey:                     true,
}

// Custom flags understood on commerce events.
const (
	CommerceEventTypeFlag = "Firebase.CommerceEventType"
	PaymentTypeFlag       = "Firebase.PaymentType"
	ShippingTierFlag      = "Firebase.ShippingTier"
)

// Backend client types.
const (
	BackendTypeHTTP  = "http"
	BackendTypeKafka = "kafka"
	BackendTypeLog   = "log"
)
