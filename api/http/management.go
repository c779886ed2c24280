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

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/mendersoftware/go-lib-micro/rest.utils"
	natsio "github.com/nats-io/nats.go"
	"github.com/pkg/errors"

	"github.com/fleetkeeper/devicereport/app"
	"github.com/fleetkeeper/devicereport/client/nats"
	"github.com/fleetkeeper/devicereport/model"
)

var (
	WebsocketReadBufferSize  = 1024
	WebsocketWriteBufferSize = 1024
)

const (
	channelSize = 25

	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = time.Minute
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

// ManagementController container for end-points
type ManagementController struct {
	app  app.App
	nats nats.Client
}

// NewManagementController returns a new ManagementController
func NewManagementController(
	app app.App,
	nc nats.Client,
) *ManagementController {
	return &ManagementController{
		app:  app,
		nats: nc,
	}
}

// GetDevice returns a device
func (h ManagementController) GetDevice(c *gin.Context) {
	ctx := c.Request.Context()
	deviceID := c.Param("deviceId")

	device, err := h.app.GetDevice(ctx, deviceID)
	if err == app.ErrDeviceNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	} else if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, device)
}

// GetDeviceStatus returns the device's derived health classification
func (h ManagementController) GetDeviceStatus(c *gin.Context) {
	ctx := c.Request.Context()
	deviceID := c.Param("deviceId")

	status, err := h.app.GetDeviceStatus(ctx, deviceID)
	if err == app.ErrDeviceNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"device_id": deviceID,
		"status":    status,
	})
}

// GetModuleRecord returns the latest normalized record of one module
func (h ManagementController) GetModuleRecord(c *gin.Context) {
	ctx := c.Request.Context()
	deviceID := c.Param("deviceId")
	moduleID := c.Param("moduleId")

	record, err := h.app.GetModuleRecord(ctx, deviceID, moduleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	} else if record == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "no record for module " + moduleID,
		})
		return
	}

	c.JSON(http.StatusOK, record)
}

// Watch streams ingest notifications for one device over a websocket until
// the client disconnects.
func (h ManagementController) Watch(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.FromContext(ctx)
	deviceID := c.Param("deviceId")

	if _, err := h.app.GetDevice(ctx, deviceID); err != nil {
		if err == app.ErrDeviceNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
			})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		}
		return
	}

	msgChan := make(chan *natsio.Msg, channelSize)
	sub, err := h.nats.ChanSubscribe(
		model.GetDeviceSubject(deviceID), msgChan)
	if err != nil {
		l.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to subscribe to ingest notifications",
		})
		return
	}
	//nolint:errcheck
	defer sub.Unsubscribe()

	// upgrade get request to websocket protocol
	upgrader := websocket.Upgrader{
		ReadBufferSize:  WebsocketReadBufferSize,
		WriteBufferSize: WebsocketWriteBufferSize,
		Subprotocols:    []string{"protomsg/msgpack"},
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
		Error: func(
			w http.ResponseWriter, r *http.Request, s int, e error) {
			rest.RenderError(c, s, e)
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		err = errors.Wrap(err,
			"unable to upgrade the request to websocket protocol")
		l.Error(err)
		return
	}
	//nolint:errcheck
	defer conn.Close()

	errChan := make(chan error, 1)
	go h.watchWriter(conn, msgChan, errChan)

	// keep reading to run the pong handler and observe the close
	conn.SetReadLimit(int64(WebsocketReadBufferSize))
	//nolint:errcheck
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		select {
		case err := <-errChan:
			if err != nil &&
				!websocket.IsCloseError(errors.Cause(err),
					websocket.CloseNormalClosure,
					websocket.CloseGoingAway) {
				l.Warnf("watch session for device %s ended: %v",
					deviceID, err)
			}
			return
		case <-ctx.Done():
			return
		default:
		}
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func (h ManagementController) watchWriter(
	conn *websocket.Conn,
	msgChan chan *natsio.Msg,
	errChan chan<- error,
) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case msg := <-msgChan:
			//nolint:errcheck
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := conn.WriteMessage(websocket.BinaryMessage, msg.Data)
			if err != nil {
				errChan <- err
				return
			}
		case <-ticker.C:
			err := conn.WriteControl(websocket.PingMessage,
				nil, time.Now().Add(writeWait))
			if err != nil {
				errChan <- err
				return
			}
		}
	}
}
