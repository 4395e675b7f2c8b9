/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package fsscan

import "errors"

var (
	// ErrInvalidPath means a user-supplied segment tried to leave its directory.
	ErrInvalidPath = errors.New("invalid path")
	// ErrUnknownImageType means the type tag is not configured.
	ErrUnknownImageType = errors.New("unknown image type")
	// ErrImageNotFound means the image file does not exist.
	ErrImageNotFound = errors.New("image not found")

	errSizeUnparseable = errors.New("unparseable du output")
)
