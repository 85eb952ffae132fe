// Copyright (c) 2025, the pvemetrics authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors provides structured errors for the failure taxonomy of a
// collection cycle: enumeration failures and store failures are fatal for
// the cycle, everything else degrades to reduced data.
//
// Errors carry a code, a message, and the wrapped cause, and remain
// compatible with errors.Is / errors.As:
//
//	if serr := new(errors.StructuredError); stderrors.As(err, &serr) {
//	    if serr.Code == errors.ErrCodeEnumeration { ... }
//	}
package errors
