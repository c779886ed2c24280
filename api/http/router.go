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
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mendersoftware/go-lib-micro/accesslog"
	"github.com/mendersoftware/go-lib-micro/requestid"

	"github.com/fleetkeeper/devicereport/app"
	"github.com/fleetkeeper/devicereport/client/nats"
)

// API URL used by the HTTP router
const (
	APIURLDevices    = "/api/devices/v1/devicereport"
	APIURLInternal   = "/api/internal/v1/devicereport"
	APIURLManagement = "/api/management/v1/devicereport"

	APIURLDevicesReports = APIURLDevices + "/reports"

	APIURLInternalAlive     = APIURLInternal + "/alive"
	APIURLInternalHealth    = APIURLInternal + "/health"
	APIURLInternalDevices   = APIURLInternal + "/devices"
	APIURLInternalDevicesID = APIURLInternal + "/devices/:deviceId"

	APIURLManagementDevice = APIURLManagement + "/devices/:deviceId"
	APIURLManagementDeviceStatus = APIURLManagement +
		"/devices/:deviceId/status"
	APIURLManagementDeviceModule = APIURLManagement +
		"/devices/:deviceId/modules/:moduleId"
	APIURLManagementDeviceWatch = APIURLManagement +
		"/devices/:deviceId/watch"
)

// NewRouter returns the gin router
func NewRouter(
	app app.App,
	natsClient nats.Client,
) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	gin.DisableConsoleColor()

	router := gin.New()
	router.Use(accesslog.Middleware())
	router.Use(gin.Recovery())
	router.Use(requestid.Middleware())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowCredentials: true,
		AllowHeaders: []string{
			"Accept",
			"Allow",
			"Content-Type",
			"Origin",
			"Authorization",
			"Accept-Encoding",
			"Access-Control-Request-Headers",
			"Header-Access-Control-Request",
		},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowWebSockets: true,
		ExposeHeaders: []string{
			"Location",
			"Link",
		},
		MaxAge: time.Hour * 12,
	}))

	status := NewStatusController(app)
	router.GET(APIURLInternalAlive, status.Alive)
	router.GET(APIURLInternalHealth, status.Health)

	reports := NewReportsController(app)
	router.POST(APIURLDevicesReports, reports.Submit)

	internal := NewInternalController(app)
	router.POST(APIURLInternalDevices, internal.Provision)
	router.DELETE(APIURLInternalDevicesID, internal.Delete)

	management := NewManagementController(app, natsClient)
	router.GET(APIURLManagementDevice, management.GetDevice)
	router.GET(APIURLManagementDeviceStatus, management.GetDeviceStatus)
	router.GET(APIURLManagementDeviceModule, management.GetModuleRecord)
	router.GET(APIURLManagementDeviceWatch, management.Watch)

	return router, nil
}
