//go:build unit

package sqlc_test

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sqlcVersion = "v1.29.0"

var (
	queryName   = regexp.MustCompile(`^-- name: (\w+)`)
	queryBlock  = regexp.MustCompile(`(?m)^-- name: `)
	namedParam  = regexp.MustCompile(`sqlc\.n?arg\('?(\w+)'?\)|@(\w+)`)
	queryConst  = regexp.MustCompile("(?s)const \\w+ = `(.*?)`")
	versionLine = regexp.MustCompile(`(?m)^//\s+sqlc (v\S+)$`)
	sourceLine  = regexp.MustCompile(`(?m)^// source: (\S+)$`)
)

// numberParams rewrites named parameters to positional ones in first-use order.
func numberParams(q string) string {
	seen := map[string]int{}
	return namedParam.ReplaceAllStringFunc(q, func(m string) string {
		sub := namedParam.FindStringSubmatch(m)
		name := sub[1] + sub[2]
		if _, ok := seen[name]; !ok {
			seen[name] = len(seen) + 1
		}
		return "$" + strconv.Itoa(seen[name])
	})
}

func normalize(q string) string {
	return strings.Join(strings.Fields(strings.TrimSuffix(strings.TrimSpace(q), ";")), " ")
}

func sourceQueries(t *testing.T, path string) map[string]string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	out := map[string]string{}
	text := string(raw)
	starts := queryBlock.FindAllStringIndex(text, -1)
	for i, s := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		block := text[s[0]:end]
		name := queryName.FindStringSubmatch(block)[1]
		require.NotContains(t, out, name, "duplicate query %s in %s", name, path)
		out[name] = normalize(numberParams(block))
	}
	return out
}

func TestGeneratedMatchesQueries(t *testing.T) {
	sources, err := filepath.Glob(filepath.Join("..", "queries", "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, sources)

	for _, src := range sources {
		base := filepath.Base(src)
		t.Run(base, func(t *testing.T) {
			raw, err := os.ReadFile(base + ".go")
			require.NoError(t, err, "no generated file for %s; run sqlc generate", base)
			gen := string(raw)

			require.True(t, strings.HasPrefix(gen, "// Code generated by sqlc. DO NOT EDIT."))
			version := versionLine.FindStringSubmatch(gen)
			require.NotNil(t, version)
			assert.Equal(t, sqlcVersion, version[1])
			source := sourceLine.FindStringSubmatch(gen)
			require.NotNil(t, source)
			assert.Equal(t, base, source[1])

			var names []string
			generated := map[string]string{}
			for _, m := range queryConst.FindAllStringSubmatch(gen, -1) {
				name := queryName.FindStringSubmatch(m[1])[1]
				names = append(names, name)
				generated[name] = normalize(m[1])
			}
			assert.True(t, sort.StringsAreSorted(names), "generated queries out of order: %v", names)

			want := sourceQueries(t, src)
			assert.Len(t, generated, len(want))
			for name, q := range want {
				got, ok := generated[name]
				if !assert.True(t, ok, "%s missing from %s.go", name, base) {
					continue
				}
				assert.Equal(t, q, got, name)
			}
		})
	}

	generated, err := filepath.Glob("*.sql.go")
	require.NoError(t, err)
	assert.Len(t, generated, len(sources), "generated files without a query source")
}
