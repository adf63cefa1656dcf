// This file is part of Membank.
//
// Membank is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Membank is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Membank.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions are fatal and should be used when the
// values being tested are used in further tests and so must be correct. For
// example, testing that the lengths of two slices are equal before iterating
// over them in unison.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. The nil value is considered a success. This is because
// of how errors usually work (nil to indicate no error).
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The CappedWriter is also an io.Writer but one that will
// return an error once its capacity has been reached. It is useful for testing
// how functions respond to a failing output stream.
package test
