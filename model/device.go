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

package model

import (
	"strings"
	"time"
)

// Values for the derived device status. The status is recomputed on demand
// from the last-seen timestamp and the recent events window; it is never
// stored as authoritative state.
const (
	DeviceStatusActive  = "active"
	DeviceStatusStale   = "stale"
	DeviceStatusMissing = "missing"
	DeviceStatusWarning = "warning"
	DeviceStatusError   = "error"
)

// Device represents a managed endpoint and its attributes
type Device struct {
	ID        string     `json:"device_id" bson:"_id"`
	Source    string     `json:"source,omitempty" bson:"source,omitempty"`
	LastSeen  *time.Time `json:"last_seen,omitempty" bson:"last_seen,omitempty"`
	CreatedTs time.Time  `json:"created_ts" bson:"created_ts,omitempty"`
	UpdatedTs time.Time  `json:"updated_ts" bson:"updated_ts,omitempty"`
}

// GetDeviceSubject returns the broker subject carrying ingest notifications
// for one device.
func GetDeviceSubject(deviceID string) string {
	return strings.Join([]string{"reports", "device", deviceID}, ".")
}
