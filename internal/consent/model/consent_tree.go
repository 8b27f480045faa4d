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

import "github.com/wso2/analytics-event-adapter/internal/system/constants"

// TreeEntry is one key of a ConsentTree. Value holds either a scalar
// (string, float64, bool, nil or []interface{}) or a nested *ConsentTree.
type TreeEntry struct {
	Key   string
	Value interface{}
}

// ConsentTree is a nested mapping that keeps the key order of its source
// document, so searches over it are deterministic.
type ConsentTree struct {
	entries []TreeEntry
	index   map[string]int
}

// NewConsentTree returns an empty tree.
func NewConsentTree() *ConsentTree {
	return &ConsentTree{index: map[string]int{}}
}

// Set stores a value under key. An existing key keeps its position.
func (t *ConsentTree) Set(key string, value interface{}) *ConsentTree {
	if t.index == nil {
		t.index = map[string]int{}
	}
	if i, ok := t.index[key]; ok {
		t.entries[i].Value = value
		return t
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, TreeEntry{Key: key, Value: value})
	return t
}

// Get returns the value stored under the exact key.
func (t *ConsentTree) Get(key string) (interface{}, bool) {
	if t == nil {
		return nil, false
	}
	i, ok := t.index[key]
	if !ok {
		return nil, false
	}
	return t.entries[i].Value, true
}

// Entries returns a copy of the entries in document order. Nested trees are
// shared with the receiver.
func (t *ConsentTree) Entries() []TreeEntry {
	if t == nil {
		return nil
	}
	entries := make([]TreeEntry, len(t.entries))
	copy(entries, t.entries)
	return entries
}

// Len returns the number of keys at this level.
func (t *ConsentTree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// IsEmpty reports whether the tree is absent or has no keys.
func (t *ConsentTree) IsEmpty() bool {
	return t.Len() == 0
}

// Consented returns the boolean "consented" field of a purpose node. The
// second result is false when the field is missing or not a boolean.
func (t *ConsentTree) Consented() (bool, bool) {
	value, ok := t.Get(constants.ConsentedField)
	if !ok {
		return false, false
	}
	consented, ok := value.(bool)
	return consented, ok
}
