// Copyright 2026 Northern.tech AS
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	app_mocks "github.com/fleetkeeper/devicereport/app/mocks"
)

func TestAlive(t *testing.T) {
	router, _ := NewRouter(nil, nil)

	req, _ := http.NewRequest("GET", APIURLInternalAlive, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHealth(t *testing.T) {
	testCases := []struct {
		Name string

		HealthCheckError error

		HTTPStatus int
	}{
		{
			Name:       "ok",
			HTTPStatus: http.StatusNoContent,
		},
		{
			Name:             "ko",
			HealthCheckError: errors.New("connection refused"),
			HTTPStatus:       http.StatusServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			app := &app_mocks.App{}
			defer app.AssertExpectations(t)

			app.On("HealthCheck",
				mock.MatchedBy(func(_ context.Context) bool {
					return true
				}),
			).Return(tc.HealthCheckError)

			router, _ := NewRouter(app, nil)

			req, _ := http.NewRequest("GET", APIURLInternalHealth, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.HTTPStatus, w.Code)
		})
	}
}
