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
	"strings"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
	"github.com/wso2/analytics-event-adapter/internal/consent/model"
	"github.com/wso2/analytics-event-adapter/internal/system/log"
)

var parserPool fastjson.ParserPool

// ParseConsentMapping parses the serialized purpose to category rules. It never
// fails: absent, empty or malformed input yields an empty mapping.
func ParseConsentMapping(raw *string) *model.ConsentMapping {

	if raw == nil || *raw == "" {
		return model.NewConsentMapping()
	}
	mapping, err := parseMappingRules(*raw)
	if err != nil {
		log.GetLogger().Warn("Unable to parse the consent purpose mapping, no consent overrides will be applied",
			log.Error(err))
		return model.NewConsentMapping()
	}
	return mapping
}

// ValidateConsentMapping reports why a serialized mapping would be ignored.
func ValidateConsentMapping(raw string) error {
	_, err := parseMappingRules(raw)
	return err
}

func parseMappingRules(raw string) (*model.ConsentMapping, error) {

	parser := parserPool.Get()
	defer parserPool.Put(parser)

	value, err := parser.Parse(strings.ReplaceAll(raw, `\`, ""))
	if err != nil {
		return nil, errors.Wrap(err, "malformed consent mapping")
	}
	items, err := value.Array()
	if err != nil {
		return nil, errors.Wrap(err, "consent mapping is not an array")
	}

	mapping := model.NewConsentMapping()
	for i, item := range items {
		if item.Type() != fastjson.TypeObject {
			return nil, errors.Errorf("consent mapping entry %d is not an object", i)
		}
		purpose, err := stringField(item, "map")
		if err != nil {
			return nil, errors.Wrapf(err, "consent mapping entry %d", i)
		}
		categoryTag, err := stringField(item, "value")
		if err != nil {
			return nil, errors.Wrapf(err, "consent mapping entry %d", i)
		}
		mapping.Put(purpose, categoryTag)
	}
	return mapping, nil
}

func stringField(item *fastjson.Value, field string) (string, error) {

	value := item.Get(field)
	if value == nil {
		return "", errors.Errorf("missing field %q", field)
	}
	b, err := value.StringBytes()
	if err != nil {
		return "", errors.Wrapf(err, "field %q", field)
	}
	return string(b), nil
}
