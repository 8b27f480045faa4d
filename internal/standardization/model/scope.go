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

// Scope selects which length bounds apply when standardizing names and values.
type Scope int

const (
	// EventScope applies to event names and event parameters.
	EventScope Scope = iota
	// AttributeScope applies to user property names and values.
	AttributeScope
)

const (
	eventNameMaxLength      = 40
	attributeNameMaxLength  = 24
	eventValueMaxLength     = 100
	attributeValueMaxLength = 36
)

// NameMaxLength returns the maximum length of a standardized name in this scope.
func (s Scope) NameMaxLength() int {
	if s == EventScope {
		return eventNameMaxLength
	}
	return attributeNameMaxLength
}

// ValueMaxLength returns the maximum length of a standardized value in this scope.
func (s Scope) ValueMaxLength() int {
	if s == EventScope {
		return eventValueMaxLength
	}
	return attributeValueMaxLength
}

func (s Scope) String() string {
	if s == EventScope {
		return "event"
	}
	return "attribute"
}
