/*
Copyright 2026 the Foody QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package foody

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// traceParent is a W3C trace context.  Every request gets a fresh one so a
// failure can be found in the service logs.
type traceParent struct {
	traceID string
	spanID  string
}

func newTraceParent() traceParent {
	return traceParent{
		traceID: randomHex(16),
		spanID:  randomHex(8),
	}
}

func (t traceParent) String() string {
	return fmt.Sprintf("00-%s-%s-01", t.traceID, t.spanID)
}

func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)

	return hex.EncodeToString(b)
}
