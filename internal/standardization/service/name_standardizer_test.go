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
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/analytics-event-adapter/internal/standardization/model"
)

var legalName = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_]*)?$`)

func strPtr(s string) *string {
	return &s
}

func TestStandardizeName_Nil(t *testing.T) {
	assert.Nil(t, StandardizeName(nil, model.EventScope))
	assert.Nil(t, StandardizeName(nil, model.AttributeScope))
}

func TestStandardizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		scope    model.Scope
		expected string
	}{
		{"plain name", "event_name", model.EventScope, "event_name"},
		{"internal and trailing whitespace", "event  name ", model.EventScope, "event_name_"},
		{"tabs and newlines collapse", "event\t\n name", model.EventScope, "event_name"},
		{"leading punctuation", "!@#$%^&*()_+=[]{}|'\"?><:;event_name", model.EventScope, "event_name"},
		{"firebase prefix", "firebase_event_name", model.AttributeScope, "event_name"},
		{"google prefix", "google_event_name", model.AttributeScope, "event_name"},
		{"ga prefix", "ga_event_name", model.AttributeScope, "event_name"},
		{"prefixes are case sensitive", "Google_event", model.EventScope, "Google_event"},
		{"prefix checks run in list order", "google_firebase_ga_x", model.EventScope, "x"},
		{"earlier prefix does not re-match", "firebase_google_x", model.EventScope, "google_x"},
		{"prefix only stripped at the start", "my_google_event", model.EventScope, "my_google_event"},
		{"leading digits", "123abc", model.EventScope, "abc"},
		{"only illegal characters", "1234_!!", model.EventScope, ""},
		{"empty input", "", model.EventScope, ""},
		{"non ascii letters replaced", "café au lait", model.EventScope, "caf_au_lait"},
		{"leading non ascii", "événement", model.EventScope, "v_nement"},
		{"dash becomes underscore", "add-to-cart", model.EventScope, "add_to_cart"},
		{
			"truncated to event length",
			"abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz",
			model.EventScope,
			"abcdefghijklmnopqrstuvwxyzabcdefghijklmn",
		},
		{
			"truncated to attribute length",
			"abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz",
			model.AttributeScope,
			"abcdefghijklmnopqrstuvwx",
		},
		{
			"truncation after prefix strip",
			"firebase_" + strings.Repeat("a", 30),
			model.AttributeScope,
			strings.Repeat("a", 24),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StandardizeName(strPtr(tt.input), tt.scope)
			require.NotNil(t, result)
			assert.Equal(t, tt.expected, *result)
			assert.Equal(t, tt.expected, StandardizeNameString(tt.input, tt.scope))
		})
	}
}

func TestStandardizeName_ForbiddenPrefixesAreEquivalent(t *testing.T) {
	expected := StandardizeNameString("firebase_event_name", model.AttributeScope)
	assert.Equal(t, "event_name", expected)
	assert.Equal(t, expected, StandardizeNameString("google_event_name", model.AttributeScope))
	assert.Equal(t, expected, StandardizeNameString("ga_event_name", model.AttributeScope))
}

func TestStandardizeName_Properties(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"__--__",
		"9lives",
		"Hello World!",
		"google_",
		"ga_ga_ga_value",
		strings.Repeat("x y ", 50),
		"日本語 name",
		"emoji \U0001F600 name",
		"\x00\x01control",
	}

	for _, input := range inputs {
		for _, scope := range []model.Scope{model.EventScope, model.AttributeScope} {
			result := StandardizeNameString(input, scope)
			assert.LessOrEqual(t, len(result), scope.NameMaxLength(), "input %q", input)
			assert.Regexp(t, legalName, result, "input %q", input)
			assert.NotContains(t, result, " ")
		}
	}
}

func TestStandardizeValue(t *testing.T) {
	long := strings.Repeat("v", 150)

	assert.Equal(t, "", StandardizeValue(nil, model.EventScope))
	assert.Equal(t, "", StandardizeValue(nil, model.AttributeScope))
	assert.Equal(t, "short value", StandardizeValue(strPtr("short value"), model.EventScope))
	assert.Equal(t, "!@# kept as is", StandardizeValue(strPtr("!@# kept as is"), model.AttributeScope))

	event := StandardizeValue(&long, model.EventScope)
	assert.Len(t, event, 100)
	assert.True(t, strings.HasPrefix(long, event))

	attribute := StandardizeValueString(long, model.AttributeScope)
	assert.Len(t, attribute, 36)
	assert.True(t, strings.HasPrefix(long, attribute))
}

func TestStandardizeValue_MultiByteNotSplit(t *testing.T) {
	value := strings.Repeat("é", 40)

	result := StandardizeValueString(value, model.AttributeScope)

	assert.Equal(t, 36, len([]rune(result)))
	assert.True(t, strings.HasPrefix(value, result))
}

func TestStandardizeValue_NonBMPCountsAsOneCharacter(t *testing.T) {
	value := strings.Repeat("😀", 36) + "tail"

	result := StandardizeValueString(value, model.AttributeScope)

	assert.Equal(t, strings.Repeat("😀", 36), result)
	assert.Equal(t, 36, len([]rune(result)))

	event := StandardizeValueString(strings.Repeat("a", 99)+"😀😀", model.EventScope)
	assert.Equal(t, strings.Repeat("a", 99)+"😀", event)
}

func TestStandardizeAttributes(t *testing.T) {
	assert.Nil(t, StandardizeAttributes(nil, model.EventScope))

	result := StandardizeAttributes(map[string]string{
		"firebase_color": "blue",
		"item count":     "3",
		"!!!":            "dropped",
		"description":    strings.Repeat("d", 120),
	}, model.EventScope)

	assert.Equal(t, map[string]string{
		"color":       "blue",
		"item_count":  "3",
		"description": strings.Repeat("d", 100),
	}, result)
}

func TestStandardizeAttributes_CollisionIsDeterministic(t *testing.T) {
	for i := 0; i < 20; i++ {
		result := StandardizeAttributes(map[string]string{
			"item count": "from space",
			"item_count": "from underscore",
		}, model.AttributeScope)

		assert.Equal(t, map[string]string{"item_count": "from underscore"}, result)
	}
}
