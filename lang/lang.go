// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package lang provides command text in alternative languages.
//
// The language precedence is the value of the "LANG" environment variable
// followed by a configurable default; then en_US.UTF-8.
//
// Use this build ldflag to configure the default,
//
//	-X github.com/platinasystems/gpu/lang.Default=fr_FR.UTF-8
package lang

import (
	"os"
	"sync"
)

const EnUS = "en_US.UTF-8"

var (
	Default = EnUS

	env struct {
		once sync.Once
		lang string
	}
)

type Alt map[string]string

// If available, this returns text in the prefered language.
func (m Alt) String() string {
	env.once.Do(func() { env.lang = os.Getenv("LANG") })
	for _, lang := range []string{env.lang, Default, EnUS} {
		if s, found := m[lang]; found {
			return s
		}
	}
	return ""
}
