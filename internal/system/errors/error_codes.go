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

package errors

const errorPrefix = "EAA-"

var (
	// Server error codes

	GET_KIT_SETTINGS = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while fetching kit settings.",
	}

	UPDATE_KIT_SETTINGS = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while updating kit settings.",
	}

	DELETE_KIT_SETTINGS = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while deleting kit settings.",
	}

	FORWARD_TO_BACKEND = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while forwarding payload to the analytics backend.",
	}

	MARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while marshalling JSON.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while parsing the token.",
	}

	// Client error codes

	INVALID_EVENT = ErrorMessage{
		Code:    errorPrefix + "10002",
		Message: "Invalid event.",
	}

	INVALID_COMMERCE_EVENT = ErrorMessage{
		Code:    errorPrefix + "10003",
		Message: "Invalid commerce event.",
	}

	INVALID_SCREEN_VIEW = ErrorMessage{
		Code:    errorPrefix + "10004",
		Message: "Invalid screen view.",
	}

	INVALID_USER_ATTRIBUTE = ErrorMessage{
		Code:    errorPrefix + "10005",
		Message: "Invalid user attribute.",
	}

	INVALID_IDENTITY_CHANGE = ErrorMessage{
		Code:    errorPrefix + "10006",
		Message: "Invalid identity change notification.",
	}

	INVALID_CONSENT_STATE = ErrorMessage{
		Code:    errorPrefix + "10007",
		Message: "Invalid consent state.",
	}

	INVALID_KIT_SETTINGS = ErrorMessage{
		Code:    errorPrefix + "10008",
		Message: "Invalid kit settings.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "10401",
		Message:     "Unauthorized.",
		Description: "Missing or invalid access token.",
	}

	FORBIDDEN = ErrorMessage{
		Code:        errorPrefix + "10403",
		Message:     "Forbidden.",
		Description: "You do not have permission to perform this operation.",
	}
)
