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

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wso2/analytics-event-adapter/internal/consent/model"
	"github.com/wso2/analytics-event-adapter/internal/system/config"
	"github.com/wso2/analytics-event-adapter/internal/system/constants"
	errors2 "github.com/wso2/analytics-event-adapter/internal/system/errors"
)

type MockConsentService struct {
	mock.Mock
}

func (m *MockConsentService) UpdateConsent(ctx context.Context, orgHandle string,
	consentState string) (model.DecisionMap, error) {
	args := m.Called(orgHandle, consentState)
	decisions, _ := args.Get(0).(model.DecisionMap)
	return decisions, args.Error(1)
}

func (m *MockConsentService) UpdateConsentTree(ctx context.Context, orgHandle string,
	tree *model.ConsentTree) (model.DecisionMap, error) {
	args := m.Called(orgHandle, tree)
	decisions, _ := args.Get(0).(model.DecisionMap)
	return decisions, args.Error(1)
}

func treeWithKeys(keys ...string) interface{} {
	return mock.MatchedBy(func(tree *model.ConsentTree) bool {
		entries := tree.Entries()
		if len(entries) != len(keys) {
			return false
		}
		for i, entry := range entries {
			if entry.Key != keys[i] {
				return false
			}
		}
		return true
	})
}

func newConsentRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/consent", strings.NewReader(body))
	return r.WithContext(context.WithValue(r.Context(), constants.TenantContextKey, "acme"))
}

func TestUpdateConsentHandler(t *testing.T) {
	config.OverrideRuntime(config.Config{})
	svc := new(MockConsentService)
	h := NewConsentHandler(svc)
	state := `{"gdpr":{"marketing":{"consented":true}}}`
	svc.On("UpdateConsentTree", "acme", treeWithKeys("gdpr")).Return(model.DecisionMap{
		model.AdStorage: model.Granted,
	}, nil)

	w := httptest.NewRecorder()
	h.UpdateConsent(w, newConsentRequest(state))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"AD_STORAGE":"GRANTED"}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestUpdateConsentHandler_InvalidState(t *testing.T) {
	config.OverrideRuntime(config.Config{})
	svc := new(MockConsentService)
	h := NewConsentHandler(svc)

	for _, body := range []string{``, `[]`, `{"gdpr":`, `"text"`} {
		w := httptest.NewRecorder()
		h.UpdateConsent(w, newConsentRequest(body))

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		var got errors2.ErrorMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, errors2.INVALID_CONSENT_STATE.Code, got.Code)
	}
	svc.AssertNotCalled(t, "UpdateConsentTree", mock.Anything, mock.Anything)
}

func TestUpdateConsentHandler_SettingsFailure(t *testing.T) {
	config.OverrideRuntime(config.Config{})
	svc := new(MockConsentService)
	h := NewConsentHandler(svc)
	svc.On("UpdateConsentTree", "acme", treeWithKeys()).Return(nil, errors2.NewServerError(errors2.GET_KIT_SETTINGS, assert.AnError))

	w := httptest.NewRecorder()
	h.UpdateConsent(w, newConsentRequest(`{}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
