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
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	app_mocks "github.com/fleetkeeper/devicereport/app/mocks"
	"github.com/fleetkeeper/devicereport/model"
)

func TestSubmitReport(t *testing.T) {
	testCases := []struct {
		Name string
		Body string

		SubmitOutcomes []model.ModuleOutcome
		SubmitError    error

		HTTPStatus int
	}{
		{
			Name: "ok",
			Body: `{
				"device": {"serial_number": "1234"},
				"hardware": {"model": "MacBookPro16,1"},
				"future_module": {"anything": true}
			}`,

			SubmitOutcomes: []model.ModuleOutcome{
				{
					ModuleID: "hardware",
					Status:   model.OutcomeAccepted,
				},
				{
					ModuleID: "future_module",
					Status:   model.OutcomeSkipped,
				},
			},

			HTTPStatus: http.StatusOK,
		},
		{
			Name: "ko, missing device identifier",
			Body: `{"hardware": {}}`,

			SubmitError: model.ErrReportMalformed,

			HTTPStatus: http.StatusBadRequest,
		},
		{
			Name: "ko, not json",
			Body: `"hardware": {{{`,

			HTTPStatus: http.StatusBadRequest,
		},
		{
			Name: "ko, internal error",
			Body: `{"device": {"serial_number": "1234"}}`,

			SubmitError: errors.New("store unavailable"),

			HTTPStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			app := &app_mocks.App{}
			defer app.AssertExpectations(t)

			if tc.SubmitOutcomes != nil || tc.SubmitError != nil {
				app.On("SubmitReport",
					mock.MatchedBy(func(_ context.Context) bool {
						return true
					}),
					mock.AnythingOfType("*model.DeviceReport"),
				).Return(tc.SubmitOutcomes, tc.SubmitError)
			}

			router, _ := NewRouter(app, nil)

			req, _ := http.NewRequest("POST", APIURLDevicesReports,
				strings.NewReader(tc.Body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.HTTPStatus, w.Code)

			if tc.HTTPStatus == http.StatusOK {
				var body struct {
					DeviceID string                `json:"device_id"`
					Modules  []model.ModuleOutcome `json:"modules"`
				}
				err := json.Unmarshal(w.Body.Bytes(), &body)
				assert.NoError(t, err)
				assert.Equal(t, "1234", body.DeviceID)
				assert.Len(t, body.Modules,
					len(tc.SubmitOutcomes))
			}
		})
	}
}
