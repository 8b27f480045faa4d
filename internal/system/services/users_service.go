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

package services

import (
	"net/http"

	"github.com/wso2/analytics-event-adapter/internal/users/handler"
	"github.com/wso2/analytics-event-adapter/internal/users/service"
)

type UsersService struct {
	handler *handler.UsersHandler
	mux     *http.ServeMux
}

func NewUsersService(usersService service.UsersServiceInterface) *UsersService {
	s := &UsersService{
		handler: handler.NewUsersHandler(usersService),
		mux:     http.NewServeMux(),
	}

	s.mux.HandleFunc("POST /users/identity", s.handler.OnIdentityChanged)
	s.mux.HandleFunc("PUT /users/{user}/attributes", s.handler.SetAllUserAttributes)
	s.mux.HandleFunc("PUT /users/{user}/attributes/{key}", s.handler.SetUserAttribute)
	s.mux.HandleFunc("DELETE /users/{user}/attributes/{key}", s.handler.RemoveUserAttribute)
	s.mux.HandleFunc("POST /users/{user}/attributes/{key}/increment", s.handler.IncrementUserAttribute)

	return s
}

// Route handles tenant-aware routing for user attributes and identity changes
func (s *UsersService) Route(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
