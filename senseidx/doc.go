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

// Package senseidx implements reading the WordNet index.sense file.
//
// The index.sense file maps sense keys to the synsets they belong to. The
// file is sorted by sense key so all of a lemma's entries are adjacent. Each
// line comes in four space separated parts:
//  1. The sense key: lemma%ss_type:lex_filenum:lex_id:head_word:head_id
//  2. The synset offset: the byte offset of the synset in the data file for
//     the sense's category.
//  3. The sense number: the sense's frequency rank within its category.
//  4. The tag count: the number of times the sense was tagged in the
//     semantic concordance texts.
//
// More info on the file format can be found at this URL:
// https://wordnet.princeton.edu/documentation/senseidx5wn
package senseidx
