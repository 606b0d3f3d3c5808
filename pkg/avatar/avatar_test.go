package avatar

import (
	"math/rand"
	"strings"
	"testing"
)

func TestPlaceholderStableUnderFixedSeed(t *testing.T) {
	first := Placeholder("John Smith", rand.New(rand.NewSource(42)))
	second := Placeholder("John Smith", rand.New(rand.NewSource(42)))
	if first != second {
		t.Errorf("Placeholder with fixed seed not stable: %q vs %q", first, second)
	}
}

func TestPlaceholderURL(t *testing.T) {
	url := Placeholder("Emily Johnson", rand.New(rand.NewSource(1)))

	if !strings.HasPrefix(url, "https://ui-avatars.com/api/?name=Emily+Johnson&background=") {
		t.Errorf("unexpected url prefix: %q", url)
	}
	if !strings.HasSuffix(url, "&color=fff") {
		t.Errorf("unexpected url suffix: %q", url)
	}

	found := false
	for _, color := range palette {
		if strings.Contains(url, "&background="+color+"&") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("url %q does not use a palette color", url)
	}
}
