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

// MappingRule routes a purpose of the runtime consent state to a category tag.
type MappingRule struct {
	Purpose     string `json:"map"`
	CategoryTag string `json:"value"`
}

// ConsentMapping is an ordered set of mapping rules keyed by purpose.
// Re-adding a purpose replaces its category tag in place.
type ConsentMapping struct {
	rules []MappingRule
	index map[string]int
}

// NewConsentMapping returns an empty mapping.
func NewConsentMapping() *ConsentMapping {
	return &ConsentMapping{index: map[string]int{}}
}

// Put adds a rule, overwriting the tag of an existing rule for the same purpose.
func (m *ConsentMapping) Put(purpose, categoryTag string) {
	if m.index == nil {
		m.index = map[string]int{}
	}
	if i, ok := m.index[purpose]; ok {
		m.rules[i].CategoryTag = categoryTag
		return
	}
	m.index[purpose] = len(m.rules)
	m.rules = append(m.rules, MappingRule{Purpose: purpose, CategoryTag: categoryTag})
}

// Get returns the category tag mapped to a purpose.
func (m *ConsentMapping) Get(purpose string) (string, bool) {
	if m == nil {
		return "", false
	}
	i, ok := m.index[purpose]
	if !ok {
		return "", false
	}
	return m.rules[i].CategoryTag, true
}

// Rules returns a copy of the rules in insertion order.
func (m *ConsentMapping) Rules() []MappingRule {
	if m == nil {
		return nil
	}
	rules := make([]MappingRule, len(m.rules))
	copy(rules, m.rules)
	return rules
}

// Len returns the number of distinct purposes.
func (m *ConsentMapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.rules)
}
