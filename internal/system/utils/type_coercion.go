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
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrListValue is returned for JSON arrays, which user properties cannot hold.
	ErrListValue = errors.New("list values are not supported")
	// ErrObjectValue is returned for nested JSON objects.
	ErrObjectValue = errors.New("object values are not supported")
)

// CoerceToString converts a decoded JSON scalar to its string representation.
// A nil value is returned as nil.
func CoerceToString(value interface{}) (*string, error) {
	var s string
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		s = v
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	case float64:
		// Check if it's an integer stored as float
		if v == float64(int64(v)) {
			s = strconv.FormatInt(int64(v), 10)
		} else {
			s = strconv.FormatFloat(v, 'f', -1, 64)
		}
	case bool:
		s = strconv.FormatBool(v)
	case []interface{}, []string:
		return nil, ErrListValue
	case map[string]interface{}:
		return nil, ErrObjectValue
	default:
		return nil, errors.Errorf("unsupported value type %T", v)
	}
	return &s, nil
}

// CoerceMapToStrings converts every value of a decoded JSON object. The first failing
// key is reported in the error.
func CoerceMapToStrings(values map[string]interface{}) (map[string]string, error) {
	result := make(map[string]string, len(values))
	for key, value := range values {
		s, err := CoerceToString(value)
		if err != nil {
			return nil, errors.Wrapf(err, "attribute '%s'", key)
		}
		if s != nil {
			result[key] = *s
		}
	}
	return result, nil
}
