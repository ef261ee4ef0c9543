// SPDX-License-Identifier: MIT
package lpviz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMethod is returned for a Method outside the known set.
var ErrUnknownMethod = errors.New("lpviz: unknown method")

// Method selects an engine.
type Method int

const (
	Simplex Method = iota
	IPM
	PDHG
	CentralPath
)

var methodNames = [...]string{
	Simplex:     "simplex",
	IPM:         "ipm",
	PDHG:        "pdhg",
	CentralPath: "central-path",
}

// Methods returns every engine in declaration order.
func Methods() []Method { return []Method{Simplex, IPM, PDHG, CentralPath} }

// String returns the engine name used in logs.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod maps a case-insensitive engine name to a Method.
// "centralpath" and "central_path" are accepted for CentralPath.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "centralpath", "central_path":
		return CentralPath, nil
	}
	for m, n := range methodNames {
		if n == name {
			return Method(m), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}
