// ==============================================================================================
// FILE: cmd/pyrite/errors.go
// ==============================================================================================

package main

import "github.com/pkg/errors"

var errNoSource = errors.New("no script given: pass a file path or --eval")
