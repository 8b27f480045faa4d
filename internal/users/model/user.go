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

// Identity change kinds reported by the host.
const (
	IdentityIdentify = "identify"
	IdentityLogin    = "login"
	IdentityModify   = "modify"
	IdentityLogout   = "logout"
)

// Identity types read from User.Identities.
const (
	IdentityTypeCustomerID = "customer_id"
	IdentityTypeEmail      = "email"
)

// AttributeValue is the body of a single attribute update.
type AttributeValue struct {
	Value interface{} `json:"value"`
}

// AttributeIncrement carries the value of an attribute after the host applied the increment.
type AttributeIncrement struct {
	IncrementBy float64 `json:"increment_by"`
	Value       string  `json:"value"`
}

type UserAttributes struct {
	Attributes map[string]interface{} `json:"attributes"`
}

// User is the identified user as seen by the host.
type User struct {
	MPID           int64               `json:"mpid,omitempty"`
	Identities     map[string]string   `json:"identities,omitempty"`
	Attributes     map[string]string   `json:"attributes,omitempty"`
	AttributeLists map[string][]string `json:"attribute_lists,omitempty"`
}

// IdentityChange notifies a completed identify, login, modify or logout.
type IdentityChange struct {
	Kind string `json:"kind"`
	User User   `json:"user"`
}

// UserUpdate reports what was forwarded to the analytics backend.
type UserUpdate struct {
	UserID         string             `json:"user_id,omitempty"`
	UserProperties map[string]*string `json:"user_properties"`
}
