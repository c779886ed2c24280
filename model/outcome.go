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

// Values for the outcome status attribute
const (
	// OutcomeAccepted means the module payload was normalized and
	// validated successfully.
	OutcomeAccepted = "accepted"
	// OutcomeValidationFailed means the processor produced a record
	// that does not satisfy the record contract.
	OutcomeValidationFailed = "validation_failed"
	// OutcomeProcessingError means the processor failed while
	// transforming the raw payload.
	OutcomeProcessingError = "processing_error"
	// OutcomeSkipped means no processor is registered for the module
	// identifier.
	OutcomeSkipped = "skipped"
)

// ModuleOutcome is the per-module result of one ingestion attempt. Exactly
// one outcome is produced for every module key present in a report; one
// module's failure never affects its siblings. The outcome list belongs to
// the ingestion call that produced it and carries no ordering guarantee:
// consumers must key on ModuleID.
type ModuleOutcome struct {
	ModuleID string        `json:"module_id"`
	Status   string        `json:"status"`
	Record   *ModuleRecord `json:"record,omitempty"`
	// Reason holds the validation failure detail for
	// OutcomeValidationFailed.
	Reason string `json:"reason,omitempty"`
	// Err preserves the processing error cause for diagnostics. It is
	// not serialized; Reason carries the rendered message.
	Err error `json:"-"`
}

// Accepted reports whether the outcome carries a valid record.
func (o ModuleOutcome) Accepted() bool {
	return o.Status == OutcomeAccepted
}
