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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	errors2 "github.com/wso2/analytics-event-adapter/internal/system/errors"
	"github.com/wso2/analytics-event-adapter/internal/users/model"
)

type MockKitSettingsReader struct {
	mock.Mock
}

func (m *MockKitSettingsReader) GetKitSettings(orgHandle string) (map[string]string, error) {
	args := m.Called(orgHandle)
	settings, _ := args.Get(0).(map[string]string)
	return settings, args.Error(1)
}

type MockAnalyticsClient struct {
	mock.Mock
}

func (m *MockAnalyticsClient) LogEvent(ctx context.Context, name string, params map[string]interface{}) error {
	return m.Called(name, params).Error(0)
}

func (m *MockAnalyticsClient) SetUserProperty(ctx context.Context, name string, value *string) error {
	return m.Called(name, value).Error(0)
}

func (m *MockAnalyticsClient) SetUserID(ctx context.Context, userID string) error {
	return m.Called(userID).Error(0)
}

func (m *MockAnalyticsClient) SetConsent(ctx context.Context, consent map[string]string) error {
	return m.Called(consent).Error(0)
}

func (m *MockAnalyticsClient) Close() error {
	return m.Called().Error(0)
}

func ptr(s string) *string { return &s }

func assertClientError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	clientErr, ok := err.(*errors2.ClientError)
	require.True(t, ok)
	assert.Equal(t, code, clientErr.Code)
}

func TestSetUserAttribute(t *testing.T) {
	analytics := new(MockAnalyticsClient)
	svc := NewUsersService(new(MockKitSettingsReader), analytics)
	analytics.On("SetUserProperty", "Favorite_Color_", ptr("abcdefghijklmnopqrstuvwxyz0123456789")).Return(nil)

	update, err := svc.SetUserAttribute(context.Background(), "google_Favorite Color!",
		"abcdefghijklmnopqrstuvwxyz0123456789-overflow")

	require.NoError(t, err)
	assert.Equal(t, map[string]*string{"Favorite_Color_": ptr("abcdefghijklmnopqrstuvwxyz0123456789")},
		update.UserProperties)
	analytics.AssertExpectations(t)
}

func TestSetUserAttribute_CoercesScalars(t *testing.T) {
	analytics := new(MockAnalyticsClient)
	svc := NewUsersService(new(MockKitSettingsReader), analytics)
	analytics.On("SetUserProperty", "age", ptr("42")).Return(nil)
	analytics.On("SetUserProperty", "vip", ptr("true")).Return(nil)

	_, err := svc.SetUserAttribute(context.Background(), "age", 42.0)
	require.NoError(t, err)
	_, err = svc.SetUserAttribute(context.Background(), "vip", true)
	require.NoError(t, err)
	analytics.AssertExpectations(t)
}

func TestSetUserAttribute_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"list value", "tags", []interface{}{"a", "b"}},
		{"object value", "address", map[string]interface{}{"city": "Colombo"}},
		{"null value", "plan", nil},
		{"name without letters", "123", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analytics := new(MockAnalyticsClient)
			svc := NewUsersService(new(MockKitSettingsReader), analytics)

			_, err := svc.SetUserAttribute(context.Background(), tt.key, tt.value)

			assertClientError(t, err, errors2.INVALID_USER_ATTRIBUTE.Code)
			analytics.AssertNotCalled(t, "SetUserProperty", mock.Anything, mock.Anything)
		})
	}
}

func TestRemoveAndIncrementUserAttribute(t *testing.T) {
	analytics := new(MockAnalyticsClient)
	svc := NewUsersService(new(MockKitSettingsReader), analytics)
	analytics.On("SetUserProperty", "plan", (*string)(nil)).Return(nil)
	analytics.On("SetUserProperty", "login_count", ptr("value kept exactly as given by the host app")).Return(nil)

	update, err := svc.RemoveUserAttribute(context.Background(), "plan")
	require.NoError(t, err)
	assert.Contains(t, update.UserProperties, "plan")
	assert.Nil(t, update.UserProperties["plan"])

	_, err = svc.IncrementUserAttribute(context.Background(), "login count",
		"value kept exactly as given by the host app")
	require.NoError(t, err)
	analytics.AssertExpectations(t)

	_, err = svc.RemoveUserAttribute(context.Background(), "!!")
	assertClientError(t, err, errors2.INVALID_USER_ATTRIBUTE.Code)
}

func TestSetAllUserAttributes(t *testing.T) {
	analytics := new(MockAnalyticsClient)
	svc := NewUsersService(new(MockKitSettingsReader), analytics)
	analytics.On("SetUserProperty", "first_name", ptr("Ada")).Return(nil)
	analytics.On("SetUserProperty", "age", ptr("36")).Return(assert.AnError)

	update, err := svc.SetAllUserAttributes(context.Background(), map[string]interface{}{
		"first name": "Ada",
		"ga_age":     36.0,
		"###":        "dropped",
	})

	require.NoError(t, err)
	assert.Len(t, update.UserProperties, 2)
	analytics.AssertExpectations(t)

	_, err = svc.SetAllUserAttributes(context.Background(), map[string]interface{}{"tags": []interface{}{"x"}})
	assertClientError(t, err, errors2.INVALID_USER_ATTRIBUTE.Code)
}

func TestOnIdentityChanged_Login(t *testing.T) {
	settings := new(MockKitSettingsReader)
	analytics := new(MockAnalyticsClient)
	svc := NewUsersService(settings, analytics)
	settings.On("GetKitSettings", "acme").Return(map[string]string{"userIdField": "Email"}, nil)
	analytics.On("SetUserID", "ada@example.com").Return(nil)
	analytics.On("SetUserProperty", "plan", ptr("gold")).Return(nil)

	update, err := svc.OnIdentityChanged(context.Background(), "acme", model.IdentityChange{
		Kind: "login",
		User: model.User{
			MPID:           42,
			Identities:     map[string]string{"email": "ada@example.com", "customer_id": "c-1"},
			Attributes:     map[string]string{"plan": "gold"},
			AttributeLists: map[string][]string{"tags": {"a"}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", update.UserID)
	assert.Equal(t, map[string]*string{"plan": ptr("gold")}, update.UserProperties)
	analytics.AssertExpectations(t)
}

func TestOnIdentityChanged_LogoutSkipsAttributes(t *testing.T) {
	settings := new(MockKitSettingsReader)
	analytics := new(MockAnalyticsClient)
	svc := NewUsersService(settings, analytics)
	settings.On("GetKitSettings", "acme").Return(map[string]string{"userIdField": "mpid"}, nil)
	analytics.On("SetUserID", "42").Return(nil)

	update, err := svc.OnIdentityChanged(context.Background(), "acme", model.IdentityChange{
		Kind: "Logout",
		User: model.User{MPID: 42, Attributes: map[string]string{"plan": "gold"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "42", update.UserID)
	assert.Empty(t, update.UserProperties)
	analytics.AssertNotCalled(t, "SetUserProperty", mock.Anything, mock.Anything)
}

func TestOnIdentityChanged_NoUserID(t *testing.T) {
	settings := new(MockKitSettingsReader)
	analytics := new(MockAnalyticsClient)
	svc := NewUsersService(settings, analytics)
	settings.On("GetKitSettings", "acme").Return(map[string]string{"userIdField": "customerId"}, nil)

	update, err := svc.OnIdentityChanged(context.Background(), "acme", model.IdentityChange{
		Kind: "identify",
		User: model.User{Identities: map[string]string{"email": "ada@example.com"}},
	})

	require.NoError(t, err)
	assert.Empty(t, update.UserID)
	analytics.AssertNotCalled(t, "SetUserID", mock.Anything)
}

func TestOnIdentityChanged_Errors(t *testing.T) {
	settings := new(MockKitSettingsReader)
	svc := NewUsersService(settings, new(MockAnalyticsClient))

	_, err := svc.OnIdentityChanged(context.Background(), "acme", model.IdentityChange{Kind: "alias"})
	assertClientError(t, err, errors2.INVALID_IDENTITY_CHANGE.Code)

	settings.On("GetKitSettings", "acme").Return(nil, assert.AnError)
	_, err = svc.OnIdentityChanged(context.Background(), "acme", model.IdentityChange{Kind: "modify"})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSelectUserID(t *testing.T) {
	user := model.User{
		MPID:       7,
		Identities: map[string]string{"customer_id": "c-1", "email": "ada@example.com"},
	}

	tests := []struct {
		field    string
		user     model.User
		expected string
	}{
		{"customerId", user, "c-1"},
		{"CUSTOMERID", user, "c-1"},
		{"email", user, "ada@example.com"},
		{"mpid", user, "7"},
		{"mpid", model.User{}, ""},
		{"", user, ""},
		{"other", user, ""},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.expected, SelectUserID(tt.field, tt.user))
		})
	}
}
