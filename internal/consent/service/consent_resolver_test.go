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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wso2/analytics-event-adapter/internal/consent/model"
)

const scenarioMapping = `[{"map":"Performance","value":"ad_user_data"},` +
	`{"map":"Marketing","value":"ad_personalization"},` +
	`{"map":"testconsent","value":"ad_storage"}]`

func mappingOf(raw string) *model.ConsentMapping {
	return ParseConsentMapping(&raw)
}

func TestResolveConsent_DefaultsOnly(t *testing.T) {
	defaults := model.DefaultConsentSettings{
		model.AdStorage:         "granted",
		model.AdUserData:        "DENIED",
		model.AdPersonalization: "Unspecified",
		model.AnalyticsStorage:  "maybe",
	}

	decisions := ResolveConsent(defaults, nil, nil)

	assert.Equal(t, model.DecisionMap{
		model.AdStorage:  model.Granted,
		model.AdUserData: model.Denied,
	}, decisions)
}

func TestResolveConsent_OverrideWinsOverDefault(t *testing.T) {
	defaults := model.DefaultConsentSettings{
		model.AdStorage:         "Granted",
		model.AnalyticsStorage:  "Granted",
		model.AdUserData:        "Denied",
		model.AdPersonalization: "Denied",
	}
	tree := ParseConsentTree(`{"GDPR":{"Marketing":{"consented":true,"document":"v1","location":"17 Cherry Tree Lane"}}}`)

	decisions := ResolveConsent(defaults, mappingOf(scenarioMapping), tree)

	assert.Equal(t, model.DecisionMap{
		model.AdPersonalization: model.Granted,
		model.AdUserData:        model.Denied,
		model.AnalyticsStorage:  model.Granted,
		model.AdStorage:         model.Granted,
	}, decisions)
}

func TestResolveConsent_NoDefaults(t *testing.T) {
	tree := ParseConsentTree(`{"GDPR":{"Marketing":{"consented":true},"Performance":{"consented":true}}}`)

	decisions := ResolveConsent(model.DefaultConsentSettings{}, mappingOf(scenarioMapping), tree)

	assert.Equal(t, model.DecisionMap{
		model.AdPersonalization: model.Granted,
		model.AdUserData:        model.Granted,
	}, decisions)
}

func TestResolveConsent_NoDefaultsNoMapping(t *testing.T) {
	tree := ParseConsentTree(`{"GDPR":{"Marketing":{"consented":true},"Performance":{"consented":true}}}`)

	decisions := ResolveConsent(nil, mappingOf(""), tree)

	assert.Empty(t, decisions)
}

func TestResolveConsent_UnspecifiedDefaultsWithOverrides(t *testing.T) {
	defaults := model.DefaultConsentSettings{
		model.AdStorage:         "Unspecified",
		model.AdUserData:        "Unspecified",
		model.AdPersonalization: "Unspecified",
		model.AnalyticsStorage:  "Unspecified",
	}
	mapping := mappingOf(`[{"map":"Marketing","value":"ad_personalization"},{"map":"Performance","value":"ad_user_data"}]`)
	tree := ParseConsentTree(`{"GDPR":{"Marketing":{"consented":true},"Performance":{"consented":false}}}`)

	decisions := ResolveConsent(defaults, mapping, tree)

	assert.Equal(t, model.DecisionMap{
		model.AdPersonalization: model.Granted,
		model.AdUserData:        model.Denied,
	}, decisions)
}

func TestResolveConsent_IgnoredOverrides(t *testing.T) {
	defaults := model.DefaultConsentSettings{model.AdStorage: "Denied"}
	mapping := mappingOf(`[{"map":"Marketing","value":"ad_storage"},` +
		`{"map":"Scalar","value":"ad_user_data"},` +
		`{"map":"Text","value":"ad_personalization"},` +
		`{"map":"Performance","value":"functionality_storage"},` +
		`{"map":"Upper","value":"ANALYTICS_STORAGE"}]`)
	tree := ParseConsentTree(`{"Scalar":true,"Text":{"consented":"true"},"Performance":{"consented":true},` +
		`"Upper":{"consented":true}}`)

	decisions := ResolveConsent(defaults, mapping, tree)

	assert.Equal(t, model.DecisionMap{model.AdStorage: model.Denied}, decisions)
}

func TestDefaultsAndMappingFromSettings(t *testing.T) {
	settings := map[string]string{
		"defaultAdStorageConsentSDK":        "Granted",
		"defaultAnalyticsStorageConsentSDK": "Denied",
		"consentMappingSDK":                 `[{"map":"Marketing","value":"ad_storage"}]`,
		"userIdField":                       "email",
	}

	assert.Equal(t, model.DefaultConsentSettings{
		model.AdStorage:        "Granted",
		model.AnalyticsStorage: "Denied",
	}, DefaultsFromSettings(settings))
	assert.Equal(t, 1, MappingFromSettings(settings).Len())
	assert.Equal(t, 0, MappingFromSettings(nil).Len())
}
