package internal

import (
	"fmt"

	"github.com/BrandonKowalski/onboard/pkg/onboard/constants"
)

// AssertionFailure reports a programmer error. It panics in development
// mode. Otherwise it logs, and the caller degrades to a no-op.
func AssertionFailure(op string, err error, args ...any) {
	if constants.IsDevMode() {
		panic(fmt.Sprintf("assertion failure: %s: %v", op, err))
	}

	attrs := append([]any{"op", op, "error", err}, args...)
	GetInternalLogger().Error("Assertion failure", attrs...)
}
