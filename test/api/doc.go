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

// Package api provides Ginkgo fixtures for the Foody API integration suites.
//
// # Targets
//
// The suites run against the service named by FOODY_BASE_URL, logging in
// with FOODY_USERNAME and FOODY_PASSWORD.  Variables may also come from
// test/.env, see test/.env.example.  Without FOODY_BASE_URL an in-process
// service from pkg/foodytest is started, so the suites always run.
//
// # Ordering
//
// The food lifecycle is a chain: later steps edit and delete the food the
// first step created.  Those specs live in an Ordered container decorated
// with ContinueOnFailure, so one failing step is reported without skipping
// the rest.  Everything else creates its own data with
// CreateFoodWithCleanup and may run in any order.
package api
