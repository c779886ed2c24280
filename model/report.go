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
	"encoding/json"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
)

// ErrReportMalformed is returned when a report is structurally unusable,
// i.e. it does not carry a device identifier.
var ErrReportMalformed = errors.New("model: report has no device identifier")

// ReportDevice is the device identity block of an incoming report.
type ReportDevice struct {
	SerialNumber string `json:"serial_number"`
	Source       string `json:"source,omitempty"`
	UDID         string `json:"udid,omitempty"`
}

// DeviceReport is one complete telemetry snapshot submitted by a managed
// endpoint. Every top-level key of the wire payload that is not part of the
// report envelope is treated as one module's raw payload, keyed by module
// identifier. Module payload schemas are not fixed: clients may add fields
// at any time and the server passes them through untouched.
type DeviceReport struct {
	Device         ReportDevice `json:"device"`
	CollectedAt    time.Time    `json:"collected_at,omitempty"`
	CollectionType string       `json:"collection_type,omitempty"`
	ClientVersion  string       `json:"client_version,omitempty"`

	// Modules maps module identifier to that module's raw payload.
	Modules map[string]map[string]interface{} `json:"-"`
}

// envelope keys that are never module payloads
var reportEnvelopeKeys = map[string]struct{}{
	"device":          {},
	"collected_at":    {},
	"collection_type": {},
	"client_version":  {},
}

type reportEnvelope struct {
	Device         ReportDevice `json:"device"`
	CollectedAt    time.Time    `json:"collected_at"`
	CollectionType string       `json:"collection_type"`
	ClientVersion  string       `json:"client_version"`
}

// UnmarshalJSON decodes the report envelope and collects every remaining
// top-level object into Modules. Non-object values for unknown keys are
// ignored rather than rejected to stay forward compatible with clients
// shipping envelope extensions before the server knows about them.
func (r *DeviceReport) UnmarshalJSON(b []byte) error {
	var env reportEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.Device = env.Device
	r.CollectedAt = env.CollectedAt
	r.CollectionType = env.CollectionType
	r.ClientVersion = env.ClientVersion
	r.Modules = make(map[string]map[string]interface{}, len(raw))
	for key, val := range raw {
		if _, ok := reportEnvelopeKeys[key]; ok {
			continue
		}
		var payload map[string]interface{}
		if err := json.Unmarshal(val, &payload); err != nil {
			continue
		}
		r.Modules[key] = payload
	}
	return nil
}

// MarshalJSON is the inverse of UnmarshalJSON: module payloads are emitted
// as top-level objects next to the envelope fields.
func (r DeviceReport) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(r.Modules)+4)
	for id, payload := range r.Modules {
		doc[id] = payload
	}
	doc["device"] = r.Device
	if !r.CollectedAt.IsZero() {
		doc["collected_at"] = r.CollectedAt
	}
	if r.CollectionType != "" {
		doc["collection_type"] = r.CollectionType
	}
	if r.ClientVersion != "" {
		doc["client_version"] = r.ClientVersion
	}
	return json.Marshal(doc)
}

// DeviceID returns the report's device identifier.
func (r DeviceReport) DeviceID() string {
	return r.Device.SerialNumber
}

func (r DeviceReport) Validate() error {
	err := validation.ValidateStruct(&r.Device,
		validation.Field(&r.Device.SerialNumber, validation.Required),
	)
	if err != nil {
		return ErrReportMalformed
	}
	return nil
}
