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

package utils

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceToString(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"string to string", "hello", "hello"},
		{"int to string", 42, "42"},
		{"int64 to string", int64(-7), "-7"},
		{"float to string (integer)", 42.0, "42"},
		{"float to string (decimal)", 42.5, "42.5"},
		{"bool true to string", true, "true"},
		{"bool false to string", false, "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CoerceToString(tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.expected, *result)
		})
	}
}

func TestCoerceToString_Rejected(t *testing.T) {
	result, err := CoerceToString(nil)
	assert.NoError(t, err)
	assert.Nil(t, result)

	_, err = CoerceToString([]interface{}{"a", "b"})
	assert.ErrorIs(t, err, ErrListValue)

	_, err = CoerceToString(map[string]interface{}{"a": 1.0})
	assert.ErrorIs(t, err, ErrObjectValue)

	_, err = CoerceToString(struct{}{})
	assert.Error(t, err)
}

func TestCoerceMapToStrings(t *testing.T) {
	result, err := CoerceMapToStrings(map[string]interface{}{
		"plan":  "gold",
		"age":   30.0,
		"gone":  nil,
		"admin": false,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"plan": "gold", "age": "30", "admin": "false"}, result)

	_, err = CoerceMapToStrings(map[string]interface{}{"tags": []interface{}{"x"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrListValue))
	assert.Contains(t, err.Error(), "attribute 'tags'")
}
