/*
File    : solparse/driver/driver_test.go
Package : driver

Covers the loading loop's dedup/discovery behavior and the topological
sort (spec §4.4, §8 "Topological order", §8 scenario 6 "Import graph"),
in the teacher's table-driven testify idiom.
*/
package driver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/solparse/session"
)

func newTestDriver(t *testing.T, files map[string]string, parallel bool) *Driver {
	t.Helper()
	sess := session.New()
	resolver := NewMapResolver(files)
	return New(sess, resolver, Options{Parallel: parallel})
}

func TestDriver_SingleFileNoImports(t *testing.T) {
	d := newTestDriver(t, map[string]string{
		"a.sol": "x;",
	}, false)
	_, err := d.AddRoot("a.sol")
	require.NoError(t, err)

	res, err := d.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Sources, 1)
	assert.False(t, res.HasErrors)
	assert.NotNil(t, res.Sources[0].Ast)
}

// TestDriver_ImportGraphTopologicalOrder is spec §8 scenario 6: three
// files A->B, B->C, A->C, loaded in order A, B, C. After sort the order
// is C, B, A, and every import id is less than its owner's new id.
func TestDriver_ImportGraphTopologicalOrder(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		files := map[string]string{
			"a.sol": `import "b.sol"; import "c.sol"; x;`,
			"b.sol": `import "c.sol"; y;`,
			"c.sol": `z;`,
		}
		d := newTestDriver(t, files, parallel)
		_, err := d.AddRoot("a.sol")
		require.NoError(t, err)

		res, err := d.Run(context.Background())
		require.NoError(t, err)
		require.Len(t, res.Sources, 3)
		assert.False(t, res.HasErrors, "parallel=%v", parallel)

		var aId, bId, cId SourceId = -1, -1, -1
		for i, s := range res.Sources {
			switch s.File.Path {
			case "a.sol":
				aId = SourceId(i)
			case "b.sol":
				bId = SourceId(i)
			case "c.sol":
				cId = SourceId(i)
			}
		}
		require.True(t, aId >= 0 && bId >= 0 && cId >= 0)

		assert.True(t, cId < bId, "parallel=%v", parallel)
		assert.True(t, bId < aId, "parallel=%v", parallel)

		for _, s := range res.Sources {
			for _, imp := range s.Imports {
				assert.True(t, imp.ToId < sourceIdOf(res.Sources, s), "import id must precede owner")
			}
		}
	}
}

func sourceIdOf(sources []*Source, target *Source) SourceId {
	for i, s := range sources {
		if s == target {
			return SourceId(i)
		}
	}
	return -1
}

func TestDriver_DedupByFileIdentity(t *testing.T) {
	files := map[string]string{
		"a.sol": `import "c.sol"; import "c.sol"; x;`,
		"c.sol": `z;`,
	}
	d := newTestDriver(t, files, false)
	_, err := d.AddRoot("a.sol")
	require.NoError(t, err)

	res, err := d.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Sources, 2, "importing the same file twice must not duplicate it")
}

func TestDriver_CyclicImportsDoNotHang(t *testing.T) {
	files := map[string]string{
		"a.sol": `import "b.sol"; x;`,
		"b.sol": `import "a.sol"; y;`,
	}
	d := newTestDriver(t, files, false)
	_, err := d.AddRoot("a.sol")
	require.NoError(t, err)

	res, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Sources, 2)
}

func TestDriver_UnresolvedImportEmitsDiagnostic(t *testing.T) {
	files := map[string]string{
		"a.sol": `import "missing.sol"; x;`,
	}
	d := newTestDriver(t, files, false)
	_, err := d.AddRoot("a.sol")
	require.NoError(t, err)

	res, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.HasErrors)
}

func TestDriver_NoInputFilesFails(t *testing.T) {
	d := newTestDriver(t, map[string]string{}, false)
	_, err := d.Run(context.Background())
	assert.Error(t, err)
}
