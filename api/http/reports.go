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
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	"github.com/fleetkeeper/devicereport/app"
	"github.com/fleetkeeper/devicereport/model"
)

// ReportsController contains the device-facing report submission end-point
type ReportsController struct {
	app app.App
}

// NewReportsController returns a new ReportsController
func NewReportsController(app app.App) *ReportsController {
	return &ReportsController{app: app}
}

// Submit responds to POST /reports. The request body is one complete
// telemetry snapshot; the response carries the per-module outcome list.
func (h ReportsController) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.FromContext(ctx)

	report := &model.DeviceReport{}
	if err := json.NewDecoder(c.Request.Body).Decode(report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": errors.Wrap(err,
				"malformed request body").Error(),
		})
		return
	}

	outcomes, err := h.app.SubmitReport(ctx, report)
	if err == model.ErrReportMalformed {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	} else if err != nil {
		l.Error(errors.Wrap(err, "failed to ingest report"))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"device_id": report.DeviceID(),
		"modules":   outcomes,
	})
}
