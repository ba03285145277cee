package icon

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func newFakeResolver(run func(script string) ([]byte, error)) *PowerShellResolver {
	return &PowerShellResolver{
		run:           run,
		resolveTarget: func(path string) string { return path },
	}
}

func TestBuildScript_EscapesQuotes(t *testing.T) {
	script := buildScript(`C:\Program Files\O'Brien's Tools\app.exe`)

	if !strings.Contains(script, `O''Brien''s`) {
		t.Error("Expected embedded single quotes to be doubled")
	}
	// The literal must stay balanced: doubled quotes don't terminate it.
	if strings.Contains(script, `O'Brien's`) {
		t.Error("Found unescaped quote content in script")
	}
}

func TestResolve_ReturnsPayload(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	r := newFakeResolver(func(string) ([]byte, error) {
		return []byte(payload + "\r\n"), nil
	})

	got, err := r.Resolve(`C:\x\App.lnk`)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got != payload {
		t.Errorf("Expected trimmed payload %q, got %q", payload, got)
	}
}

func TestResolve_SubprocessFailureMeansNoIcon(t *testing.T) {
	r := newFakeResolver(func(string) ([]byte, error) {
		return nil, errors.New("exit status 1")
	})

	got, err := r.Resolve(`C:\x\App.lnk`)
	if err != nil {
		t.Fatalf("Expected failures to be swallowed, got error: %v", err)
	}
	if got != "" {
		t.Errorf("Expected no icon, got %q", got)
	}
}

func TestResolve_EmptyOutputMeansNoIcon(t *testing.T) {
	r := newFakeResolver(func(string) ([]byte, error) {
		return []byte("  \n"), nil
	})

	got, err := r.Resolve(`C:\x\App.lnk`)
	if err != nil || got != "" {
		t.Errorf("Expected no icon for empty output, got %q err=%v", got, err)
	}
}

func TestResolve_MalformedBase64MeansNoIcon(t *testing.T) {
	r := newFakeResolver(func(string) ([]byte, error) {
		return []byte("not@base64!"), nil
	})

	got, err := r.Resolve(`C:\x\App.lnk`)
	if err != nil || got != "" {
		t.Errorf("Expected no icon for malformed output, got %q err=%v", got, err)
	}
}

func TestResolve_UnparsableLinkFallsBackToShortcutPath(t *testing.T) {
	var scriptSeen string
	r := &PowerShellResolver{
		run: func(script string) ([]byte, error) {
			scriptSeen = script
			return []byte(base64.StdEncoding.EncodeToString([]byte("x"))), nil
		},
		resolveTarget: resolveLinkTarget,
	}

	// Not a real .lnk: target resolution must fall back to the path itself.
	if _, err := r.Resolve(`C:\x\Broken.lnk`); err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !strings.Contains(scriptSeen, `Broken.lnk`) {
		t.Error("Expected script to target the shortcut path itself on parse failure")
	}
}

type countingResolver struct {
	calls int64
	icon  string
}

func (c *countingResolver) Resolve(string) (string, error) {
	atomic.AddInt64(&c.calls, 1)
	return c.icon, nil
}

func TestCachedResolver_MemoizesPerPath(t *testing.T) {
	inner := &countingResolver{icon: "QUJD"}
	cached, err := NewCachedResolver(inner, 10)
	if err != nil {
		t.Fatalf("Failed to create cached resolver: %v", err)
	}

	for i := 0; i < 3; i++ {
		got, err := cached.Resolve(`C:\x\App.lnk`)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if got != "QUJD" {
			t.Errorf("Expected cached payload, got %q", got)
		}
	}
	if inner.calls != 1 {
		t.Errorf("Expected one underlying resolution, got %d", inner.calls)
	}

	cached.Resolve(`C:\x\Other.lnk`)
	if inner.calls != 2 {
		t.Errorf("Expected distinct paths to resolve separately, got %d calls", inner.calls)
	}
}

func TestCachedResolver_CachesNegativeResults(t *testing.T) {
	inner := &countingResolver{icon: ""}
	cached, _ := NewCachedResolver(inner, 10)

	cached.Resolve(`C:\x\NoIcon.lnk`)
	cached.Resolve(`C:\x\NoIcon.lnk`)

	if inner.calls != 1 {
		t.Errorf("Expected negative result to be cached, got %d calls", inner.calls)
	}
}

// One goroutine per visible row all share the cache; hits, misses, and the
// periodic log read must not race each other.
func TestCachedResolver_ConcurrentResolves(t *testing.T) {
	inner := &countingResolver{icon: "QUJD"}
	cached, err := NewCachedResolver(inner, 100)
	if err != nil {
		t.Fatalf("Failed to create cached resolver: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		path := fmt.Sprintf(`C:\x\App%d.lnk`, i)
		for j := 0; j < 4; j++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := cached.Resolve(path)
				if err != nil {
					t.Errorf("Resolve failed: %v", err)
					return
				}
				if got != "QUJD" {
					t.Errorf("Expected cached payload, got %q", got)
				}
			}()
		}
	}
	wg.Wait()

	if calls := atomic.LoadInt64(&inner.calls); calls < 20 {
		t.Errorf("Expected at least one underlying resolution per path, got %d", calls)
	}
}

func TestNoopResolver(t *testing.T) {
	got, err := NoopResolver{}.Resolve(`C:\x\App.lnk`)
	if err != nil || got != "" {
		t.Errorf("Expected no icon and no error, got %q err=%v", got, err)
	}
}
