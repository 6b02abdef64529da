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

// Package wordnet implements a library for looking up words in a WordNet
// database in pure Go.
//
// The database files are searched in place using binary search over their
// sorted lines and are never loaded into memory. The files used are:
//  1. index.sense, which maps sense keys to synset offsets.
//  2. data.noun, data.verb, data.adj and data.adv, which hold the synsets.
//  3. noun.exc, verb.exc, adj.exc and adv.exc, which list irregular
//     inflections.
//
// More info on the database files can be found at this URL:
// https://wordnet.princeton.edu/documentation/wndb5wn
package wordnet
