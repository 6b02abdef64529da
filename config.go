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

package wordnet

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/ianlewis/go-wordnet/lookup"
)

const (
	// EnvDatabaseDir is the environment variable naming the database
	// directory used by Default.
	EnvDatabaseDir = "WORDNET_DATABASE_DIR"

	// EnvCacheSize is the environment variable holding the number of word
	// forms cached by Default.
	EnvCacheSize = "WORDNET_CACHE_WORD_FORMS"
)

// CacheSize parses a cache size configuration value. An empty value returns
// the default size. An invalid value is logged as a warning and the default
// size is returned.
func CacheSize(value string, logger *slog.Logger) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return lookup.DefaultCacheSize
	}
	if logger == nil {
		logger = slog.Default()
	}

	n, err := strconv.Atoi(value)
	if err == nil && n < 1 {
		err = strconv.ErrRange
	}
	if err != nil {
		logger.Warn("invalid cache size will be ignored",
			"setting", EnvCacheSize,
			"value", value,
			"default", lookup.DefaultCacheSize,
			"error", err,
		)
		return lookup.DefaultCacheSize
	}
	return n
}
