// Copyright 2026 Ian Lewis
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

// Package locate implements line lookups over large sorted text files
// without reading the files into memory.
//
// The files are expected to contain one record per line, sorted ascending by
// the byte value of the text being searched for. Lines may be terminated by
// "\n", "\r\n" or "\r". Sortedness is not validated; searching an unsorted
// file returns undefined, but never unsafe, results.
//
// Locator finds the first line matching a key using a binary search over
// byte offsets. Because a candidate offset rarely falls on a line boundary,
// every probe is first realigned to the start of the next full line.
//
// MultiLocator builds on Locator to extract every line between the first line
// matching one prefix and the last line matching another.
package locate
