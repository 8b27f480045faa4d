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
	"fmt"
	"strings"

	"github.com/wso2/analytics-event-adapter/internal/consent/model"
	"github.com/wso2/analytics-event-adapter/internal/system/log"
)

// SearchKeyInNestedMap looks up key case-insensitively, depth first in tree
// order. At each entry the key is compared before descending into its value,
// and the first match wins.
func SearchKeyInNestedMap(tree *model.ConsentTree, key string) (value interface{}, found bool) {

	if tree.IsEmpty() {
		return nil, false
	}
	defer func() {
		if r := recover(); r != nil {
			log.GetLogger().Error("Failed to search the consent state for the configured purpose",
				log.String("purpose", key), log.String("cause", fmt.Sprint(r)))
			value, found = nil, false
		}
	}()
	return searchTree(tree, key)
}

func searchTree(tree *model.ConsentTree, key string) (interface{}, bool) {

	for _, entry := range tree.Entries() {
		if strings.EqualFold(entry.Key, key) {
			return entry.Value, true
		}
		if nested, ok := entry.Value.(*model.ConsentTree); ok {
			if value, found := searchTree(nested, key); found {
				return value, true
			}
		}
	}
	return nil, false
}
