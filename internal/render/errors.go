// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import "errors"

var (
	ErrRenderFailed = errors.New("render failed")
	ErrInvalidHTML  = errors.New("invalid html")
)
