/*
 *     Copyright 2024 The Medalcast Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package service

const (
	// StateUninitialized is the state before any model set is available.
	StateUninitialized = "Uninitialized"

	// StateTrained is the state after training a model set at startup.
	StateTrained = "Trained"

	// StateSaved is the state after persisting the trained model set.
	StateSaved = "Saved"

	// StateLoaded is the state serving a model set.
	StateLoaded = "Loaded"

	// StateFailed is the state after a failed startup.
	StateFailed = "Failed"
)

const (
	// EventLoad loads persisted artifacts.
	EventLoad = "Load"

	// EventTrain trains a model set when artifacts are missing.
	EventTrain = "Train"

	// EventSave persists the trained model set.
	EventSave = "Save"

	// EventServe serves the saved model set.
	EventServe = "Serve"

	// EventFail marks the startup failed.
	EventFail = "Fail"
)

const (
	// HealthStatusHealthy is reported when a model set is loaded.
	HealthStatusHealthy = "healthy"

	// HealthStatusDegraded is reported when no model set is loaded.
	HealthStatusDegraded = "degraded"
)
