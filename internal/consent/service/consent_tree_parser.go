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
	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
	"github.com/wso2/analytics-event-adapter/internal/consent/model"
	"github.com/wso2/analytics-event-adapter/internal/system/log"
)

// ParseConsentTree converts a serialized consent state into an ordered tree.
// Unparsable input is logged and yields an empty tree.
func ParseConsentTree(raw string) *model.ConsentTree {

	tree, err := parseTree(raw)
	if err != nil {
		log.GetLogger().Error("Unable to parse the user's consent state, consent may not be forwarded correctly",
			log.Error(err))
		return model.NewConsentTree()
	}
	return tree
}

// ParseConsentState converts a serialized consent state into an ordered tree
// and reports input that is not a JSON object.
func ParseConsentState(raw string) (*model.ConsentTree, error) {
	return parseTree(raw)
}

func parseTree(raw string) (*model.ConsentTree, error) {

	parser := parserPool.Get()
	defer parserPool.Put(parser)

	value, err := parser.Parse(raw)
	if err != nil {
		return nil, errors.Wrap(err, "malformed consent state")
	}
	obj, err := value.Object()
	if err != nil {
		return nil, errors.Wrap(err, "consent state is not an object")
	}
	// Values are copied out before the parser goes back to the pool.
	return treeFromObject(obj), nil
}

func treeFromObject(obj *fastjson.Object) *model.ConsentTree {

	tree := model.NewConsentTree()
	obj.Visit(func(key []byte, v *fastjson.Value) {
		tree.Set(string(key), convertValue(v))
	})
	return tree
}

func convertValue(v *fastjson.Value) interface{} {

	switch v.Type() {
	case fastjson.TypeObject:
		return treeFromObject(v.GetObject())
	case fastjson.TypeArray:
		elements := v.GetArray()
		items := make([]interface{}, 0, len(elements))
		for _, element := range elements {
			items = append(items, convertValue(element))
		}
		return items
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		return v.GetFloat64()
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	default:
		return nil
	}
}
