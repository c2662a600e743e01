package sysinfo

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Aggregator runs every lookup once and merges the results into a Record.
// Lookup failures are logged and collapse to absent fields; they never
// cross the Collect boundary.
type Aggregator struct {
	log       zerolog.Logger
	providers Providers
}

// NewAggregator creates an Aggregator. A nil provider is treated as a
// lookup that always fails.
func NewAggregator(log zerolog.Logger, providers Providers) *Aggregator {
	return &Aggregator{
		log:       log,
		providers: providers,
	}
}

// Collect performs the lookups and returns the merged record.
//
// The network and storage lookups are issued concurrently with the
// permission request. The location lookup runs after the permission request
// and only when it returned PermissionGranted. Metadata is read once every
// asynchronous lookup has settled.
func (a *Aggregator) Collect(ctx context.Context) (rec Record) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error().Interface("panic", r).Msg("device info aggregation failed")
			rec = Record{}
		}
	}()

	var (
		address     *string
		total, free *uint64
		coordinate  *Coordinate
	)

	var g errgroup.Group

	g.Go(func() error {
		a.lookup("network", func() error {
			if a.providers.Network == nil {
				return errNotConfigured
			}
			addr, err := a.providers.Network.Address(ctx)
			if err != nil {
				return err
			}
			address = nonEmpty(addr)
			return nil
		})
		return nil
	})

	g.Go(func() error {
		a.lookup("storage", func() error {
			if a.providers.Storage == nil {
				return errNotConfigured
			}
			t, f, err := a.providers.Storage.Capacity(ctx)
			if err != nil {
				return err
			}
			total, free = &t, &f
			return nil
		})
		return nil
	})

	g.Go(func() error {
		if !a.locationGranted(ctx) {
			return nil
		}
		a.lookup("location", func() error {
			if a.providers.Location == nil {
				return errNotConfigured
			}
			c, err := a.providers.Location.Position(ctx)
			if err != nil {
				return err
			}
			coordinate = &c
			return nil
		})
		return nil
	})

	_ = g.Wait()

	var meta Metadata
	if a.providers.Metadata != nil {
		meta = a.providers.Metadata.Metadata()
	}

	rec = Record{
		NetworkAddress: address,
		DeviceClass:    meta.DeviceClass,
		OSName:         meta.OSName,
		OSVersion:      meta.OSVersion,
		ModelName:      meta.ModelName,
		TotalStorage:   total,
		FreeStorage:    free,
		Coordinate:     coordinate,
	}

	a.log.Debug().
		Bool("network", rec.NetworkAddress != nil).
		Bool("storage", rec.TotalStorage != nil).
		Bool("location", rec.Coordinate != nil).
		Bool("device_class", rec.DeviceClass != nil).
		Msg("device info aggregated")

	return rec
}

func (a *Aggregator) locationGranted(ctx context.Context) bool {
	status := PermissionUndetermined

	a.lookup("permission", func() error {
		if a.providers.Permissions == nil {
			return errNotConfigured
		}
		s, err := a.providers.Permissions.RequestLocation(ctx)
		if err != nil {
			return err
		}
		status = s
		return nil
	})

	if status != PermissionGranted {
		a.log.Debug().Str("status", string(status)).Msg("location permission not granted")
		return false
	}

	return true
}

// lookup runs fn, logging and swallowing its error or panic.
func (a *Aggregator) lookup(name string, fn func() error) {
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", errLookupPanic, r)
			}
		}()
		return fn()
	}()

	if err != nil {
		a.log.Warn().Err(err).Str("lookup", name).Msg("lookup unavailable")
	}
}
