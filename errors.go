//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package uid

import "errors"

var (
	// ErrEntropyUnavailable is returned when the operating system random
	// source fails. The failure is fatal for the calling request, the
	// engine never substitutes a weaker source.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")

	// ErrClockUnavailable is returned when the logical clock cannot supply
	// a usable timestamp. It concerns time-based families (v1, v7) only.
	ErrClockUnavailable = errors.New("system clock unavailable")

	// ErrInvalidArgument is returned on malformed input, e.g. a negative
	// batch count or an unusable nano id alphabet.
	ErrInvalidArgument = errors.New("invalid argument")
)
