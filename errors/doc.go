// Copyright 2025 The liwca Authors
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

/*
Package errors provides semantic error types for the liwca module.

Each error kind has a sentinel error and a typed error that matches it via
the standard errors.Is function:

	d, err := liwca.ReadFile("sleep.dic")
	if err != nil {
	    var ferr *errors.FormatError
	    if stderrors.As(err, &ferr) {
	        log.Printf("bad input at line %d: %s", ferr.Line, ferr.Msg)
	    }
	}

	_, err = fetcher.Fetch(ctx, "sleeep")
	if errors.IsNotFound(err) {
	    // Unknown registry name.
	}
*/
package errors
