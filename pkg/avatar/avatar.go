package avatar

import (
	"fmt"
	"math/rand"
	"strings"
)

// Accent colors for generated placeholder avatars.
var palette = []string{"0D8ABC", "27AE60", "E67E22", "8E44AD", "C0392B", "2C3E50"}

// Placeholder builds a ui-avatars.com image URL for an employee created
// without an avatar. The accent color is drawn from r, so callers that seed
// r get stable output.
func Placeholder(name string, r *rand.Rand) string {
	color := palette[r.Intn(len(palette))]
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=%s&color=fff",
		strings.ReplaceAll(name, " ", "+"), color)
}
