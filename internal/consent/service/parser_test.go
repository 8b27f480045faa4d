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
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/analytics-event-adapter/internal/consent/model"
)

func TestParseConsentMapping_Empty(t *testing.T) {
	empty := ""
	malformed := `[{"map": "Marketing", "value": `
	notArray := `{"map": "Marketing", "value": "ad_storage"}`
	missingValue := `[{"map": "Marketing"}]`
	numericValue := `[{"map": "Marketing", "value": 3}]`
	notObject := `["Marketing"]`

	for _, raw := range []*string{nil, &empty, &malformed, &notArray, &missingValue, &numericValue, &notObject} {
		mapping := ParseConsentMapping(raw)
		require.NotNil(t, mapping)
		assert.Equal(t, 0, mapping.Len())
	}
}

func TestParseConsentMapping(t *testing.T) {
	raw := `[{"jsmap":null,"map":"Performance","maptype":"ConsentPurposes","value":"ad_user_data"},` +
		`{"jsmap":null,"map":"Marketing","maptype":"ConsentPurposes","value":"ad_personalization"},` +
		`{"jsmap":null,"map":"testconsent","maptype":"ConsentPurposes","value":"ad_storage"}]`

	mapping := ParseConsentMapping(&raw)

	assert.Equal(t, []model.MappingRule{
		{Purpose: "Performance", CategoryTag: "ad_user_data"},
		{Purpose: "Marketing", CategoryTag: "ad_personalization"},
		{Purpose: "testconsent", CategoryTag: "ad_storage"},
	}, mapping.Rules())
}

func TestParseConsentMapping_StripsBackslashes(t *testing.T) {
	raw := `[{\"map\":\"Marketing\",\"value\":\"ad_storage\"}]`

	mapping := ParseConsentMapping(&raw)

	tag, ok := mapping.Get("Marketing")
	assert.True(t, ok)
	assert.Equal(t, "ad_storage", tag)
}

func TestParseConsentMapping_LastWriteWins(t *testing.T) {
	raw := `[{"map":"Marketing","value":"ad_storage"},{"map":"Marketing","value":"analytics_storage"}]`

	mapping := ParseConsentMapping(&raw)

	assert.Equal(t, 1, mapping.Len())
	tag, _ := mapping.Get("Marketing")
	assert.Equal(t, "analytics_storage", tag)
}

func TestValidateConsentMapping(t *testing.T) {
	assert.NoError(t, ValidateConsentMapping(`[]`))
	assert.NoError(t, ValidateConsentMapping(`[{"map":"a","value":"ad_storage"}]`))
	assert.ErrorContains(t, ValidateConsentMapping(`[{"map":"a"}]`), `"value"`)
	assert.Error(t, ValidateConsentMapping(`nope`))
}

func TestParseConsentTree(t *testing.T) {
	raw := `{"GDPR":{"marketing":{"consented":true,"timestamp":1700000000,"document":"v2"},` +
		`"performance":{"consented":false}},"CCPA":{"consented":false},"tags":["a",1],"missing":null}`

	tree := ParseConsentTree(raw)

	require.Equal(t, 4, tree.Len())
	keys := []string{}
	for _, entry := range tree.Entries() {
		keys = append(keys, entry.Key)
	}
	assert.Equal(t, []string{"GDPR", "CCPA", "tags", "missing"}, keys)

	gdpr, _ := tree.Get("GDPR")
	marketing, _ := gdpr.(*model.ConsentTree).Get("marketing")
	consented, ok := marketing.(*model.ConsentTree).Consented()
	assert.True(t, ok)
	assert.True(t, consented)
	timestamp, _ := marketing.(*model.ConsentTree).Get("timestamp")
	assert.Equal(t, float64(1700000000), timestamp)

	tags, _ := tree.Get("tags")
	assert.Equal(t, []interface{}{"a", float64(1)}, tags)
	missing, ok := tree.Get("missing")
	assert.True(t, ok)
	assert.Nil(t, missing)
}

func TestParseConsentTree_Invalid(t *testing.T) {
	for _, raw := range []string{"", "not json", "[1,2]", `"string"`} {
		tree := ParseConsentTree(raw)
		require.NotNil(t, tree)
		assert.True(t, tree.IsEmpty())
		_, err := ParseConsentState(raw)
		assert.Error(t, err)
	}
	tree, err := ParseConsentState(`{}`)
	assert.NoError(t, err)
	assert.True(t, tree.IsEmpty())
}

func TestParseConsentState_LargeFlatObject(t *testing.T) {
	const keys = 110000
	var b strings.Builder
	b.WriteByte('{')
	for i := 0; i < keys; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(`"k`)
		b.WriteString(strconv.Itoa(i))
		b.WriteString(`":1`)
	}
	b.WriteByte('}')

	start := time.Now()
	tree, err := ParseConsentState(b.String())
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, keys, tree.Len())
	assert.Equal(t, "k0", tree.Entries()[0].Key)
	value, ok := tree.Get("k109999")
	assert.True(t, ok)
	assert.Equal(t, 1.0, value)
	assert.Less(t, elapsed, 3*time.Second)
}
