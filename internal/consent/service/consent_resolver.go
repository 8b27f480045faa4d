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
	"strings"

	"github.com/wso2/analytics-event-adapter/internal/consent/model"
	"github.com/wso2/analytics-event-adapter/internal/system/constants"
	"github.com/wso2/analytics-event-adapter/internal/system/log"
)

var defaultSettingKeys = map[model.ConsentCategory]string{
	model.AdStorage:         constants.DefaultAdStorageConsentKey,
	model.AdUserData:        constants.DefaultAdUserDataConsentKey,
	model.AdPersonalization: constants.DefaultAdPersonalizationConsentKey,
	model.AnalyticsStorage:  constants.DefaultAnalyticsStorageConsentKey,
}

// DefaultsFromSettings picks the per-category defaults out of the kit settings.
func DefaultsFromSettings(settings map[string]string) model.DefaultConsentSettings {

	defaults := model.DefaultConsentSettings{}
	for category, key := range defaultSettingKeys {
		if value, ok := settings[key]; ok {
			defaults[category] = value
		}
	}
	return defaults
}

// MappingFromSettings parses the consent mapping held in the kit settings.
func MappingFromSettings(settings map[string]string) *model.ConsentMapping {

	raw, ok := settings[constants.ConsentMappingKey]
	if !ok {
		return ParseConsentMapping(nil)
	}
	return ParseConsentMapping(&raw)
}

// ResolveConsent applies the configured defaults and then overrides each
// category addressed by a mapping rule whose purpose is found in the tree with
// a boolean "consented" field.
func ResolveConsent(defaults model.DefaultConsentSettings, mapping *model.ConsentMapping,
	tree *model.ConsentTree) model.DecisionMap {

	logger := log.GetLogger()
	decisions := model.DecisionMap{}

	for _, category := range model.Categories {
		value := defaults[category]
		switch {
		case strings.EqualFold(value, constants.ConsentGrantedValue):
			decisions[category] = model.Granted
		case strings.EqualFold(value, constants.ConsentDeniedValue):
			decisions[category] = model.Denied
		}
	}

	for _, rule := range mapping.Rules() {
		category, ok := model.CategoryForTag(rule.CategoryTag)
		if !ok {
			logger.Debug("Ignoring consent mapping with an unknown category",
				log.String("purpose", rule.Purpose), log.String("category", rule.CategoryTag))
			continue
		}
		found, ok := SearchKeyInNestedMap(tree, rule.Purpose)
		if !ok {
			continue
		}
		purpose, ok := found.(*model.ConsentTree)
		if !ok {
			continue
		}
		consented, ok := purpose.Consented()
		if !ok {
			continue
		}
		decisions[category] = model.StatusOf(consented)
	}
	return decisions
}
