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
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/fleetkeeper/devicereport/app"
	"github.com/fleetkeeper/devicereport/model"
)

// InternalController contains internal provisioning end-points
type InternalController struct {
	app app.App
}

// NewInternalController returns a new InternalController
func NewInternalController(app app.App) *InternalController {
	return &InternalController{app: app}
}

// Provision responds to POST /devices
func (h InternalController) Provision(c *gin.Context) {
	ctx := c.Request.Context()

	device := &model.Device{}
	if err := c.ShouldBindJSON(device); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": errors.Wrap(err,
				"invalid payload").Error(),
		})
		return
	}
	if device.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "device_id: cannot be blank.",
		})
		return
	}

	if err := h.app.ProvisionDevice(ctx, device); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.Writer.WriteHeader(http.StatusCreated)
}

// Delete responds to DELETE /devices/:deviceId
func (h InternalController) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	deviceID := c.Param("deviceId")

	if err := h.app.DeleteDevice(ctx, deviceID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.Writer.WriteHeader(http.StatusNoContent)
}
