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
	"net/http"
	"strconv"
	"strings"

	standardizationModel "github.com/wso2/analytics-event-adapter/internal/standardization/model"
	"github.com/wso2/analytics-event-adapter/internal/standardization/service"
	"github.com/wso2/analytics-event-adapter/internal/system/client"
	"github.com/wso2/analytics-event-adapter/internal/system/constants"
	systemContext "github.com/wso2/analytics-event-adapter/internal/system/context"
	errors2 "github.com/wso2/analytics-event-adapter/internal/system/errors"
	"github.com/wso2/analytics-event-adapter/internal/system/log"
	"github.com/wso2/analytics-event-adapter/internal/system/utils"
	"github.com/wso2/analytics-event-adapter/internal/users/model"
)

// KitSettingsReader loads the settings bag of an organization.
type KitSettingsReader interface {
	GetKitSettings(orgHandle string) (map[string]string, error)
}

type UsersServiceInterface interface {
	SetUserAttribute(ctx context.Context, key string, value interface{}) (*model.UserUpdate, error)
	RemoveUserAttribute(ctx context.Context, key string) (*model.UserUpdate, error)
	IncrementUserAttribute(ctx context.Context, key string, value string) (*model.UserUpdate, error)
	SetAllUserAttributes(ctx context.Context, attributes map[string]interface{}) (*model.UserUpdate, error)
	OnIdentityChanged(ctx context.Context, orgHandle string, change model.IdentityChange) (*model.UserUpdate, error)
}

// UsersService forwards user properties and user ids to the analytics backend.
type UsersService struct {
	settings KitSettingsReader
	client   client.AnalyticsClientInterface
}

// NewUsersService creates a new instance of UsersService.
func NewUsersService(settings KitSettingsReader, analyticsClient client.AnalyticsClientInterface) UsersServiceInterface {
	return &UsersService{settings: settings, client: analyticsClient}
}

// SetUserAttribute sets a single user property. Lists and objects are rejected.
func (us *UsersService) SetUserAttribute(ctx context.Context, key string, value interface{}) (*model.UserUpdate, error) {

	name, err := attributeName(ctx, key)
	if err != nil {
		return nil, err
	}
	raw, err := utils.CoerceToString(value)
	if err != nil || raw == nil {
		return nil, invalidAttribute(ctx, "Value of '"+key+"' must be a string, number or boolean.")
	}
	standardized := service.StandardizeValue(raw, standardizationModel.AttributeScope)

	update := newUpdate()
	us.setProperty(ctx, update, name, &standardized)
	return update, nil
}

// RemoveUserAttribute clears a user property.
func (us *UsersService) RemoveUserAttribute(ctx context.Context, key string) (*model.UserUpdate, error) {

	name, err := attributeName(ctx, key)
	if err != nil {
		return nil, err
	}
	update := newUpdate()
	us.setProperty(ctx, update, name, nil)
	return update, nil
}

// IncrementUserAttribute sets the property to the already incremented value as given.
func (us *UsersService) IncrementUserAttribute(ctx context.Context, key string, value string) (*model.UserUpdate, error) {

	name, err := attributeName(ctx, key)
	if err != nil {
		return nil, err
	}
	update := newUpdate()
	us.setProperty(ctx, update, name, &value)
	return update, nil
}

// SetAllUserAttributes standardizes and forwards every attribute. Attributes whose
// name standardizes to empty are dropped.
func (us *UsersService) SetAllUserAttributes(ctx context.Context,
	attributes map[string]interface{}) (*model.UserUpdate, error) {

	values, err := utils.CoerceMapToStrings(attributes)
	if err != nil {
		return nil, invalidAttribute(ctx, err.Error())
	}
	update := newUpdate()
	us.forwardAttributes(ctx, update, values)
	return update, nil
}

// OnIdentityChanged updates the backend user id after an identity change and,
// except for logouts, forwards the user's attributes.
func (us *UsersService) OnIdentityChanged(ctx context.Context, orgHandle string,
	change model.IdentityChange) (*model.UserUpdate, error) {

	kind := strings.ToLower(change.Kind)
	switch kind {
	case model.IdentityIdentify, model.IdentityLogin, model.IdentityModify, model.IdentityLogout:
	default:
		return nil, errors2.NewClientErrorWithTraceID(errors2.ErrorMessage{
			Code:        errors2.INVALID_IDENTITY_CHANGE.Code,
			Message:     errors2.INVALID_IDENTITY_CHANGE.Message,
			Description: "Identity change kind must be one of identify, login, modify or logout.",
		}, http.StatusBadRequest, systemContext.GetTraceID(ctx))
	}

	settings, err := us.settings.GetKitSettings(orgHandle)
	if err != nil {
		return nil, err
	}

	logger := log.GetLogger()
	update := newUpdate()
	if userID := SelectUserID(settings[constants.UserIdFieldKey], change.User); userID != "" {
		if err := us.client.SetUserID(ctx, userID); err != nil {
			logger.Error("Failed to forward user id to the analytics backend",
				log.String("orgHandle", orgHandle), log.Error(err))
		} else {
			update.UserID = userID
			logger.Audit(log.AuditEvent{
				InitiatorID:   systemContext.GetClientID(ctx),
				InitiatorType: log.InitiatorTypeUser,
				TargetID:      orgHandle,
				TargetType:    log.TargetTypeUser,
				ActionID:      log.ActionUserIDForwarded,
				TraceID:       systemContext.GetTraceID(ctx),
				Data:          map[string]string{"kind": kind},
			})
		}
	}

	if kind == model.IdentityLogout {
		return update, nil
	}
	if len(change.User.AttributeLists) > 0 {
		logger.Debug("Ignoring user attribute lists on identity change",
			log.Int("count", len(change.User.AttributeLists)))
	}
	us.forwardAttributes(ctx, update, change.User.Attributes)
	return update, nil
}

// SelectUserID picks the backend user id according to the userIdField setting.
// An empty result means no user id is set.
func SelectUserID(userIDField string, user model.User) string {

	switch {
	case strings.EqualFold(userIDField, constants.UserIdCustomerIdValue):
		return user.Identities[model.IdentityTypeCustomerID]
	case strings.EqualFold(userIDField, constants.UserIdEmailValue):
		return user.Identities[model.IdentityTypeEmail]
	case strings.EqualFold(userIDField, constants.UserIdMPIDValue):
		if user.MPID == 0 {
			return ""
		}
		return strconv.FormatInt(user.MPID, 10)
	default:
		return ""
	}
}

func (us *UsersService) forwardAttributes(ctx context.Context, update *model.UserUpdate, attributes map[string]string) {
	for name, value := range service.StandardizeAttributes(attributes, standardizationModel.AttributeScope) {
		v := value
		us.setProperty(ctx, update, name, &v)
	}
}

func (us *UsersService) setProperty(ctx context.Context, update *model.UserUpdate, name string, value *string) {

	update.UserProperties[name] = value
	if err := us.client.SetUserProperty(ctx, name, value); err != nil {
		log.GetLogger().Error("Failed to forward user property to the analytics backend",
			log.String("property", name), log.String("traceId", systemContext.GetTraceID(ctx)), log.Error(err))
	}
}

func newUpdate() *model.UserUpdate {
	return &model.UserUpdate{UserProperties: map[string]*string{}}
}

func attributeName(ctx context.Context, key string) (string, error) {
	name := service.StandardizeNameString(key, standardizationModel.AttributeScope)
	if name == "" {
		return "", invalidAttribute(ctx, "Attribute name '"+key+"' is empty after standardization.")
	}
	return name, nil
}

func invalidAttribute(ctx context.Context, description string) error {
	return errors2.NewClientErrorWithTraceID(errors2.ErrorMessage{
		Code:        errors2.INVALID_USER_ATTRIBUTE.Code,
		Message:     errors2.INVALID_USER_ATTRIBUTE.Message,
		Description: description,
	}, http.StatusBadRequest, systemContext.GetTraceID(ctx))
}
