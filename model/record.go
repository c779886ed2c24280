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
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field names stamped on every module record. The same names may occur
// inside a raw module payload but are never trusted from there.
const (
	FieldModuleID    = "module_id"
	FieldDeviceID    = "device_id"
	FieldCollectedAt = "collected_at"
)

// ModuleRecord is the normalized output of one module processor: the
// processor-stamped identity fields plus an open bag of passthrough fields
// copied verbatim from the raw module payload. The identity fields always
// win over same-named keys in the bag. A record is immutable once returned
// by a processor.
type ModuleRecord struct {
	ModuleID    string
	DeviceID    string
	CollectedAt time.Time

	// Fields holds every key of the raw module payload except the
	// identity field names above.
	Fields map[string]interface{}
}

func (r ModuleRecord) flatten() map[string]interface{} {
	doc := make(map[string]interface{}, len(r.Fields)+3)
	for k, v := range r.Fields {
		doc[k] = v
	}
	doc[FieldModuleID] = r.ModuleID
	doc[FieldDeviceID] = r.DeviceID
	doc[FieldCollectedAt] = r.CollectedAt
	return doc
}

// MarshalJSON flattens the record into a single object with the identity
// fields applied last.
func (r ModuleRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.flatten())
}

func (r *ModuleRecord) UnmarshalJSON(b []byte) error {
	var doc map[string]interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	r.ModuleID, _ = doc[FieldModuleID].(string)
	r.DeviceID, _ = doc[FieldDeviceID].(string)
	if ts, ok := doc[FieldCollectedAt].(string); ok {
		r.CollectedAt, _ = time.Parse(time.RFC3339Nano, ts)
	}
	delete(doc, FieldModuleID)
	delete(doc, FieldDeviceID)
	delete(doc, FieldCollectedAt)
	r.Fields = doc
	return nil
}

// MarshalBSON stores the record as a flat document, mirroring the JSON
// shape.
func (r ModuleRecord) MarshalBSON() ([]byte, error) {
	return bson.Marshal(r.flatten())
}

func (r *ModuleRecord) UnmarshalBSON(b []byte) error {
	var doc map[string]interface{}
	if err := bson.Unmarshal(b, &doc); err != nil {
		return err
	}
	r.ModuleID, _ = doc[FieldModuleID].(string)
	r.DeviceID, _ = doc[FieldDeviceID].(string)
	if ts, ok := doc[FieldCollectedAt].(primitive.DateTime); ok {
		r.CollectedAt = ts.Time()
	}
	delete(doc, FieldModuleID)
	delete(doc, FieldDeviceID)
	delete(doc, FieldCollectedAt)
	delete(doc, "_id")
	r.Fields = doc
	return nil
}

func (r ModuleRecord) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ModuleID, validation.Required),
		validation.Field(&r.DeviceID, validation.Required),
		validation.Field(&r.CollectedAt, validation.Required),
	)
}
