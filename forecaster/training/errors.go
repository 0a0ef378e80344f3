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

package training

import "errors"

var (
	// ErrDataInsufficient is returned when the corpus cannot give a non-empty
	// train and test partition or a model cannot be fitted on it.
	ErrDataInsufficient = errors.New("data insufficient")

	// ErrModelNaN is returned when a model scores NaN on the test partition.
	ErrModelNaN = errors.New("model NAN")

	// ErrUnknownLabel is returned when encoding a label unseen at fit time.
	ErrUnknownLabel = errors.New("unknown label")
)
