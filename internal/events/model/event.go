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

// Event is a custom analytics event.
type Event struct {
	EventName        string            `json:"event_name"`
	EventType        string            `json:"event_type,omitempty"`
	CustomAttributes map[string]string `json:"custom_attributes,omitempty"`
	IsScreenEvent    bool              `json:"is_screen_event,omitempty"`
}

// ScreenView reports that a screen was shown.
type ScreenView struct {
	ScreenName string            `json:"screen_name"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// ReportingMessage acknowledges a forwarded event.
type ReportingMessage struct {
	MessageType string `json:"message_type"`
	Timestamp   int64  `json:"timestamp"`
	EventName   string `json:"event_name,omitempty"`
}

type ReportingResponse struct {
	Messages []ReportingMessage `json:"messages"`
}
