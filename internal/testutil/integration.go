// Package testutil starts the external dependencies used by the opt-in
// integration tests.
package testutil

import (
	"os"
	"testing"
)

// SkipUnlessIntegration skips t in -short mode or when STOREFRONT_INTEGRATION
// is unset.
func SkipUnlessIntegration(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if os.Getenv("STOREFRONT_INTEGRATION") == "" {
		t.Skip("set STOREFRONT_INTEGRATION=1 to run integration tests")
	}
}
