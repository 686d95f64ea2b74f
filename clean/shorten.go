// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clean

import (
	"regexp"
	"strings"

	"github.com/cleansl/cleansl/tables"
)

// ShortenMethods replaces long method names by their short aliases.
// For each alias used, its helper declaration is prepended once,
// followed by a blank line.
func ShortenMethods(text string, short []tables.ShortName) string {
	var helpers []string
	for _, s := range short {
		if s.Long == "" {
			continue
		}
		re := regexp.MustCompile(`(?:\bapp\.)?\b` + regexp.QuoteMeta(s.Long) + `\b`)
		if !re.MatchString(text) {
			continue
		}
		text = re.ReplaceAllLiteralString(text, s.Short)
		helpers = append(helpers, s.HelperLine())
	}
	if len(helpers) == 0 {
		return text
	}
	return strings.Join(helpers, "\n") + "\n\n" + text
}
