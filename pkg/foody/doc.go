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

// Package foody provides the HTTP client used to exercise the Foody API.
//
// # Client
//
// APIClient is a thin wrapper over net/http rather than a generated client.
// Tests need the raw status code and body of every call, including the
// error paths, so nothing here turns a non-2xx status into an error:
//   - W3C trace context on every request, the trace ID is returned with
//     the response so failures can be correlated with service logs
//   - bearer authentication attached once a token is set
//   - optional request and response logging through logr
//
// # Decoding
//
// Decode and DecodeList map bodies onto the typed shapes in this package.
// Optional fields are pointers, and a body that isn't valid JSON is reported
// as a *DecodeError rather than silently producing zero values.
package foody
