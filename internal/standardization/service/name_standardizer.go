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
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/wso2/analytics-event-adapter/internal/standardization/model"
)

// forbiddenPrefixes are reserved by the backend. Order matters: each prefix is checked
// once, in this order, against the name as left by the previous check.
var forbiddenPrefixes = []string{"google_", "firebase_", "ga_"}

// StandardizeName turns an arbitrary string into a backend-legal name for the given
// scope. A nil input yields nil; every other input yields a (possibly empty) name made
// of [A-Za-z0-9_] that starts with a letter.
func StandardizeName(name *string, scope model.Scope) *string {
	if name == nil {
		return nil
	}
	standardized := standardizeName(*name, scope)
	return &standardized
}

// StandardizeNameString is StandardizeName for inputs that are always present.
func StandardizeNameString(name string, scope model.Scope) string {
	return standardizeName(name, scope)
}

func standardizeName(name string, scope model.Scope) string {
	name = replaceIllegalCharacters(name)
	name = collapseWhitespace(name)
	name = stripForbiddenPrefixes(name)
	name = stripLeadingNonLetters(name)
	return truncate(name, scope.NameMaxLength())
}

// StandardizeValue truncates the value to the scope's maximum value length. A nil input
// yields the empty string. Values are never filtered.
func StandardizeValue(value *string, scope model.Scope) string {
	if value == nil {
		return ""
	}
	return truncate(*value, scope.ValueMaxLength())
}

// StandardizeValueString is StandardizeValue for inputs that are always present.
func StandardizeValueString(value string, scope model.Scope) string {
	return truncate(value, scope.ValueMaxLength())
}

// StandardizeAttributes standardizes every key and value of the map. Pairs whose key
// standardizes to an empty name are dropped. When two keys collide after
// standardization the one that sorts last wins, so the outcome is deterministic.
func StandardizeAttributes(attributes map[string]string, scope model.Scope) map[string]string {
	if attributes == nil {
		return nil
	}
	keys := make([]string, 0, len(attributes))
	for key := range attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	standardized := make(map[string]string, len(attributes))
	for _, key := range keys {
		name := standardizeName(key, scope)
		if name == "" {
			continue
		}
		standardized[name] = StandardizeValueString(attributes[key], scope)
	}
	return standardized
}

func isLegalNameChar(r rune) bool {
	return isASCIILetter(r) || (r >= '0' && r <= '9') || r == '_'
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isNameWhitespace matches the ASCII whitespace class: space, \t, \n, \v, \f, \r.
func isNameWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func replaceIllegalCharacters(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if isLegalNameChar(r) || isNameWhitespace(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(' ')
	}
	return b.String()
}

func collapseWhitespace(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	inRun := false
	for _, r := range name {
		if isNameWhitespace(r) {
			if !inRun {
				b.WriteByte('_')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

func stripForbiddenPrefixes(name string) string {
	for _, prefix := range forbiddenPrefixes {
		if strings.HasPrefix(name, prefix) {
			name = strings.Replace(name, prefix, "", 1)
		}
	}
	return name
}

func stripLeadingNonLetters(name string) string {
	for name != "" {
		r, size := utf8.DecodeRuneInString(name)
		if isASCIILetter(r) {
			break
		}
		name = name[size:]
	}
	return name
}

// truncate keeps at most maxLength characters. Multi-byte characters are never split.
func truncate(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	count := 0
	for i := range s {
		if count == maxLength {
			return s[:i]
		}
		count++
	}
	return s
}
