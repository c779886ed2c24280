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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	app_mocks "github.com/fleetkeeper/devicereport/app/mocks"
)

func TestInternalProvision(t *testing.T) {
	testCases := []struct {
		Name string
		Body string

		ProvisionError error
		NoCall         bool

		HTTPStatus int
	}{
		{
			Name:       "ok",
			Body:       `{"device_id": "1234"}`,
			HTTPStatus: http.StatusCreated,
		},
		{
			Name:       "ko, missing device_id",
			Body:       `{}`,
			NoCall:     true,
			HTTPStatus: http.StatusBadRequest,
		},
		{
			Name:       "ko, invalid payload",
			Body:       `[]`,
			NoCall:     true,
			HTTPStatus: http.StatusBadRequest,
		},
		{
			Name:           "ko, store error",
			Body:           `{"device_id": "1234"}`,
			ProvisionError: errors.New("error"),
			HTTPStatus:     http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			app := &app_mocks.App{}
			defer app.AssertExpectations(t)

			if !tc.NoCall {
				app.On("ProvisionDevice",
					mock.MatchedBy(func(_ context.Context) bool {
						return true
					}),
					mock.AnythingOfType("*model.Device"),
				).Return(tc.ProvisionError)
			}

			router, _ := NewRouter(app, nil)

			req, _ := http.NewRequest("POST", APIURLInternalDevices,
				strings.NewReader(tc.Body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.HTTPStatus, w.Code)
		})
	}
}

func TestInternalDelete(t *testing.T) {
	testCases := []struct {
		Name     string
		DeviceID string

		DeleteError error

		HTTPStatus int
	}{
		{
			Name:       "ok",
			DeviceID:   "1234",
			HTTPStatus: http.StatusNoContent,
		},
		{
			Name:        "ko, store error",
			DeviceID:    "1234",
			DeleteError: errors.New("error"),
			HTTPStatus:  http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			app := &app_mocks.App{}
			defer app.AssertExpectations(t)

			app.On("DeleteDevice",
				mock.MatchedBy(func(_ context.Context) bool {
					return true
				}),
				tc.DeviceID,
			).Return(tc.DeleteError)

			router, _ := NewRouter(app, nil)

			url := strings.Replace(APIURLInternalDevicesID,
				":deviceId", tc.DeviceID, 1)
			req, _ := http.NewRequest("DELETE", url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.HTTPStatus, w.Code)
		})
	}
}
