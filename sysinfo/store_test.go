package sysinfo

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreStartsAbsent(t *testing.T) {
	s := NewStore()

	assert.Equal(t, Record{}, s.Snapshot())
	assert.False(t, s.Committed())
	assert.False(t, s.Closed())
	assert.NotEmpty(t, s.ID())
	assert.NotEqual(t, s.ID(), NewStore().ID())
}

func TestStoreCommitsOnce(t *testing.T) {
	s := NewStore()

	first := Record{NetworkAddress: ptr("10.0.0.1")}
	second := Record{NetworkAddress: ptr("10.0.0.2")}

	require.True(t, s.Commit(first))
	assert.False(t, s.Commit(second))

	snap := s.Snapshot()
	require.NotNil(t, snap.NetworkAddress)
	assert.Equal(t, "10.0.0.1", *snap.NetworkAddress)
	assert.True(t, s.Committed())
}

func TestStoreDropsCommitAfterClose(t *testing.T) {
	s := NewStore()
	s.Close()

	assert.False(t, s.Commit(Record{OSName: ptr("Linux")}))
	assert.Equal(t, Record{}, s.Snapshot())
	assert.False(t, s.Committed())
}

func TestStoreCloseRacingCommit(t *testing.T) {
	for i := 0; i < 200; i++ {
		s := NewStore()
		rec := Record{OSName: ptr("Linux")}

		var (
			wg      sync.WaitGroup
			applied bool
			start   = make(chan struct{})
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			applied = s.Commit(rec)
		}()
		go func() {
			defer wg.Done()
			<-start
			s.Close()
		}()
		close(start)
		wg.Wait()

		require.True(t, s.Closed())
		assert.Equal(t, applied, s.Committed())
		if applied {
			assert.Equal(t, rec, s.Snapshot())
		} else {
			assert.Equal(t, Record{}, s.Snapshot())
		}

		// Once closed, nothing else lands.
		assert.False(t, s.Commit(Record{OSName: ptr("Darwin")}))
		assert.Equal(t, applied, s.Snapshot().OSName != nil)
	}
}

func TestStoreSnapshotIsNeverPartial(t *testing.T) {
	s := NewStore()
	full := Record{
		NetworkAddress: ptr("10.0.0.1"),
		OSName:         ptr("Linux"),
		TotalStorage:   ptr(uint64(2)),
		FreeStorage:    ptr(uint64(1)),
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				snap := s.Snapshot()
				if snap.NetworkAddress == nil {
					assert.Equal(t, Record{}, snap)
				} else {
					assert.Equal(t, full, snap)
				}
			}
		}()
	}

	s.Commit(full)
	wg.Wait()
}

func TestStoreMount(t *testing.T) {
	agg := NewAggregator(zerolog.Nop(), Providers{
		Permissions: mustAuthority(t, PolicyGranted),
		Location:    &FixedLocator{Coordinate: Coordinate{Latitude: 1.5, Longitude: 2.5}},
	})

	s := NewStore()
	require.True(t, s.Mount(context.Background(), agg))
	assert.Equal(t, "1.500000, 2.500000", FormatCoordinate(s.Snapshot().Coordinate))

	assert.False(t, s.Mount(context.Background(), agg))
}

func mustAuthority(t *testing.T, policy string) *PolicyAuthority {
	t.Helper()
	a, err := NewPolicyAuthority(policy, nil, nil)
	require.NoError(t, err)
	return a
}
