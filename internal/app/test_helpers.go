package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/relforge/relforge/internal/hcl"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance for system testing, capturing
// the descriptor output and the debug-level log stream separately.
func SetupAppTest(t *testing.T, appConfig *Config) (*App, *bytes.Buffer, *SafeBuffer) {
	t.Helper()

	outBuf := &bytes.Buffer{}
	logBuf := &SafeBuffer{}
	appConfig.LogLevel = "debug"
	testApp := NewApp(outBuf, logBuf, appConfig, hcl.NewLoader())

	t.Cleanup(func() {
		if os.Getenv("RELFORGE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuf.String())
		}
	})

	return testApp, outBuf, logBuf
}
