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

import "time"

// Event types meaningful to status derivation. The set of event types is
// open; any other value is carried but ignored when classifying a device.
const (
	EventTypeError   = "error"
	EventTypeWarning = "warning"
	EventTypeInfo    = "info"
)

// EventRecord is one event observed for a device.
type EventRecord struct {
	ID        string    `json:"id" bson:"_id"`
	DeviceID  string    `json:"device_id" bson:"device_id"`
	Type      string    `json:"type" bson:"type"`
	Message   string    `json:"message,omitempty" bson:"message,omitempty"`
	CreatedTs time.Time `json:"created_ts" bson:"created_ts"`
}
