// Package forks provides the pool of exclusive resources philosophers
// contend for.
//
// A [Fork] carries no data; holding it is its only meaning. Forks live in a
// [Pool] indexed 0..n-1 and are handed out by index with wraparound, which
// is how the ring is closed:
//
//	pool := forks.NewPool(5)
//	left, right := pool.Get(id-1), pool.Get(id)
//
//	g, err := left.Acquire(ctx, id)
//	if err != nil {
//	    return err
//	}
//	defer g.Release()
package forks
