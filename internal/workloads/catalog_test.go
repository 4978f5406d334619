package workloads

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_SuitesInOrder(t *testing.T) {
	suites := Catalog(1)

	require.Len(t, suites, 3)
	assert.Equal(t, "inefficient", suites[0].Name)
	assert.Equal(t, "efficient", suites[1].Name)
	assert.Equal(t, "sample", suites[2].Name)
	assert.Len(t, suites[0].Workloads, len(suites[1].Workloads))
}

func TestCatalog_UniqueNamesAndNonNilWork(t *testing.T) {
	for _, s := range Catalog(1) {
		seen := map[string]bool{}
		for _, w := range s.Workloads {
			assert.False(t, seen[w.Name], "duplicate workload %s/%s", s.Name, w.Name)
			seen[w.Name] = true
			assert.NotNil(t, w.Work, "%s/%s", s.Name, w.Name)
		}
	}
}

func TestCatalog_WorkloadsComplete(t *testing.T) {
	if testing.Short() {
		t.Skip("runs every workload")
	}
	for _, s := range Catalog(1) {
		for _, w := range s.Workloads {
			assert.NoError(t, w.Work(), "%s/%s", s.Name, w.Name)
		}
	}
}

func TestLookup(t *testing.T) {
	suites := Catalog(1)

	s, ok := Lookup(suites, "sample")
	assert.True(t, ok)
	assert.Equal(t, "sample", s.Name)

	_, ok = Lookup(suites, "missing")
	assert.False(t, ok)
}

func TestResolve_DefaultsToEverySuite(t *testing.T) {
	suites := Catalog(1)
	total := 0
	for _, s := range suites {
		total += len(s.Workloads)
	}

	named, err := Resolve(suites, nil)

	require.NoError(t, err)
	assert.Len(t, named, total)
	assert.Equal(t, "inefficient/nested-loops", named[0].Name)
}

func TestResolve_SelectorOrder(t *testing.T) {
	named, err := Resolve(Catalog(1), []string{"efficient/formula-sum", "sample"})

	require.NoError(t, err)
	require.Len(t, named, 3)
	assert.Equal(t, "efficient/formula-sum", named[0].Name)
	assert.Equal(t, "sample/inefficient-code", named[1].Name)
	assert.Equal(t, "sample/efficient-code", named[2].Name)
}

func TestResolve_Unknown(t *testing.T) {
	for _, sel := range []string{"nope", "sample/nope"} {
		_, err := Resolve(Catalog(1), []string{sel})

		var unknown *UnknownError
		require.True(t, errors.As(err, &unknown), sel)
		assert.Equal(t, sel, unknown.Selector)
	}
}
