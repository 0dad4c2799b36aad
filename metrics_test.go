package vector

import (
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorStats(t *testing.T) {
	v := New[int]()
	assert.Equal(t, Stats{}, v.Stats())

	for i := range 3 {
		require.NoError(t, v.PushBack(i))
	}
	s := v.Stats()
	assert.Equal(t, 3, s.Size)
	assert.Equal(t, 4, s.Capacity)
	assert.InDelta(t, 0.75, s.Utilization, 1e-9)
	assert.Equal(t, uint64(3), s.Reallocations)
	assert.Equal(t, uint64(3), s.Relocations)
	assert.InDelta(t, 0.75, v.Utilization(), 1e-9)

	m := v.Move()
	assert.Equal(t, 0, v.Stats().Capacity)
	assert.Equal(t, 3, m.Stats().Size)
	assert.Equal(t, 4, m.Stats().Capacity)
	assert.Equal(t, uint64(3), m.Stats().Reallocations)
	assert.Equal(t, uint64(3), m.Stats().Relocations)
	assert.Equal(t, Stats{}, v.Stats())

	m.Release()
	assert.Equal(t, 0.0, m.Utilization())
}

func TestStatsConcurrentWithMutation(t *testing.T) {
	v := New[int]()
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			s := v.Stats()
			if s.Size < 0 || s.Capacity < 0 || s.Utilization < 0 {
				t.Errorf("inconsistent stats %+v", s)
				return
			}
		}
	}()
	for i := range 1000 {
		require.NoError(t, v.PushBack(i))
	}
	close(done)
	wg.Wait()
	assert.Equal(t, 1000, v.Stats().Size)
}

func TestCollector(t *testing.T) {
	v := New[int]()
	for i := range 3 {
		require.NoError(t, v.PushBack(i))
	}
	c := NewCollector("test", v)

	expected := `
# HELP vector_capacity The current number of slots in the backing arena.
# TYPE vector_capacity gauge
vector_capacity{vector="test"} 4
# HELP vector_reallocations_total The number of times the backing arena was replaced.
# TYPE vector_reallocations_total counter
vector_reallocations_total{vector="test"} 3
# HELP vector_relocations_total The number of elements moved or copied into a new arena.
# TYPE vector_relocations_total counter
vector_relocations_total{vector="test"} 3
# HELP vector_size The current number of live elements.
# TYPE vector_size gauge
vector_size{vector="test"} 3
# HELP vector_utilization The ratio of live elements to capacity.
# TYPE vector_utilization gauge
vector_utilization{vector="test"} 0.75
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))
	assert.Equal(t, 5, testutil.CollectAndCount(c))
}

func TestWithMetrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	v := New(WithMetrics[string](reg, "names"))
	require.NoError(t, v.PushBack("a"))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"vector_capacity",
		"vector_reallocations_total",
		"vector_relocations_total",
		"vector_size",
		"vector_utilization",
	}, names)

	// A second vector under the same name keeps the first registration.
	assert.NotPanics(t, func() { New(WithMetrics[string](reg, "names")) })
}

func TestWithMetricsNewSized(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewSized(2, WithMetrics[int](reg, "sized"))
	require.NoError(t, err)

	n, err := testutil.GatherAndCount(reg, "vector_size")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRegisterNil(t *testing.T) {
	assert.NotPanics(t, func() { Register(nil, NewCollector("x", New[int]())) })
}
