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

package client

import (
	"context"
	"encoding/json"
	"fmt"

	systemContext "github.com/wso2/analytics-event-adapter/internal/system/context"
	errors2 "github.com/wso2/analytics-event-adapter/internal/system/errors"
)

// Payload is the measurement-protocol style envelope shared by every backend.
type Payload struct {
	ClientID       string                   `json:"client_id"`
	UserID         string                   `json:"user_id,omitempty"`
	Events         []EventPayload           `json:"events,omitempty"`
	UserProperties map[string]PropertyValue `json:"user_properties,omitempty"`
	Consent        map[string]string        `json:"consent,omitempty"`
}

// EventPayload is a single backend event.
type EventPayload struct {
	Name   string                 `json:"name"`
	Params map[string]interface{} `json:"params,omitempty"`
}

// PropertyValue wraps a user property value. A null value clears the property.
type PropertyValue struct {
	Value *string `json:"value"`
}

// Kind names the payload for transports that tag messages.
func (p Payload) Kind() string {
	switch {
	case len(p.Events) > 0:
		return "event"
	case len(p.UserProperties) > 0:
		return "user_property"
	case p.Consent != nil:
		return "consent"
	default:
		return "user_id"
	}
}

func newPayload(ctx context.Context) Payload {
	return Payload{ClientID: systemContext.GetClientID(ctx)}
}

func eventPayload(ctx context.Context, name string, params map[string]interface{}) Payload {
	payload := newPayload(ctx)
	payload.Events = []EventPayload{{Name: name, Params: params}}
	return payload
}

func userPropertyPayload(ctx context.Context, name string, value *string) Payload {
	payload := newPayload(ctx)
	payload.UserProperties = map[string]PropertyValue{name: {Value: value}}
	return payload
}

func userIDPayload(ctx context.Context, userID string) Payload {
	payload := newPayload(ctx)
	payload.UserID = userID
	return payload
}

func consentPayload(ctx context.Context, consent map[string]string) Payload {
	payload := newPayload(ctx)
	payload.Consent = consent
	return payload
}

func marshalPayload(payload Payload) ([]byte, error) {

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.MARSHAL_JSON.Code,
			Message:     errors2.MARSHAL_JSON.Message,
			Description: fmt.Sprintf("Failed to marshal %s payload for the analytics backend.", payload.Kind()),
		}, err)
	}
	return body, nil
}
