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

package model

import "strings"

// ConsentCategory is one of the backend's fixed consent dimensions.
type ConsentCategory string

const (
	AdStorage         ConsentCategory = "AD_STORAGE"
	AdUserData        ConsentCategory = "AD_USER_DATA"
	AdPersonalization ConsentCategory = "AD_PERSONALIZATION"
	AnalyticsStorage  ConsentCategory = "ANALYTICS_STORAGE"
)

// Categories lists every consent category in a stable order.
var Categories = []ConsentCategory{AdStorage, AdUserData, AdPersonalization, AnalyticsStorage}

// Tag returns the lower-case tag used by mapping rules to address the category.
func (c ConsentCategory) Tag() string {
	return strings.ToLower(string(c))
}

// CategoryForTag returns the category addressed by a mapping rule tag. Tags are
// matched exactly.
func CategoryForTag(tag string) (ConsentCategory, bool) {
	for _, category := range Categories {
		if category.Tag() == tag {
			return category, true
		}
	}
	return "", false
}

// ConsentStatus is the decision forwarded to the backend for a category.
type ConsentStatus string

const (
	Granted ConsentStatus = "GRANTED"
	Denied  ConsentStatus = "DENIED"
)

// StatusOf converts a consented flag into a ConsentStatus.
func StatusOf(consented bool) ConsentStatus {
	if consented {
		return Granted
	}
	return Denied
}

// DecisionMap holds the resolved status per category. A category is only
// present when a default or an override produced a signal for it.
type DecisionMap map[ConsentCategory]ConsentStatus

// DefaultConsentSettings holds the raw configured default per category.
// Missing entries mean no default was configured.
type DefaultConsentSettings map[ConsentCategory]string
