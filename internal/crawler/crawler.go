// Package crawler walks the local filesystem and produces direntry.Entry
// records, reading per-entry metadata in parallel across a fixed worker
// pool sized to the host's logical CPU count.
package crawler

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/FrogSnot/HardBore/internal/direntry"
	"github.com/FrogSnot/HardBore/internal/workpool"
)

// ErrNotFound is returned by Read when path does not exist.
var ErrNotFound = errors.New("path does not exist")

// ErrNotADirectory is returned by Read when path exists but is not a directory.
var ErrNotADirectory = errors.New("path is not a directory")

type statJob struct {
	path string
}

// Read lists the immediate children of path, building a direntry.Entry for
// each one in parallel, and returns the aggregated directory contents.
//
// It fails with ErrNotFound if path does not exist, ErrNotADirectory if it
// exists but isn't a directory, and a wrapped I/O error if the directory
// itself cannot be read. Per-entry metadata failures are silently dropped —
// they never fail the call.
func Read(path string, showHidden bool) (direntry.Contents, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return direntry.Contents{}, ErrNotFound
		}
		return direntry.Contents{}, errors.Wrapf(err, "failed to stat %q", path)
	}
	if !info.IsDir() {
		return direntry.Contents{}, ErrNotADirectory
	}

	names, err := os.ReadDir(path)
	if err != nil {
		return direntry.Contents{}, errors.Wrapf(err, "failed to read directory %q", path)
	}

	entriesCh := make(chan direntry.Entry, len(names))
	var wg sync.WaitGroup

	pool := workpool.New[statJob](0, func(_ int, job statJob) error {
		defer wg.Done()
		if e, ok := direntry.Build(job.path); ok {
			entriesCh <- e
		}
		return nil
	})

	wg.Add(len(names))
	for _, name := range names {
		pool.Submit(statJob{path: filepath.Join(path, name.Name())})
	}
	pool.Close()

	go func() {
		wg.Wait()
		close(entriesCh)
	}()

	entries := make([]direntry.Entry, 0, len(names))
	for e := range entriesCh {
		if !showHidden && e.Hidden {
			continue
		}
		entries = append(entries, e)
	}
	_ = pool.Wait()

	direntry.SortEntries(entries)
	totalItems, totalSize := direntry.Aggregate(entries)

	var parent string
	if p := filepath.Dir(path); p != path {
		parent = p
	}

	return direntry.Contents{
		Path:       path,
		Parent:     parent,
		Entries:    entries,
		TotalItems: totalItems,
		TotalSize:  totalSize,
	}, nil
}

// Crawl walks the tree rooted at root, returning every entry whose metadata
// could be read. maxDepth bounds the walk (a negative value means
// unbounded); depth 0 is root itself. Hidden entries are not filtered —
// callers apply their own policy. Entries whose metadata cannot be read are
// silently skipped: partial results are preferred over a failed walk.
// Result order is unspecified.
//
// Directory recursion fans out through an errgroup.Group rather than a bare
// sync.WaitGroup, bounding how many directories are being listed at once
// independently of the stat workpool below it.
func Crawl(root string, maxDepth int) []direntry.Entry {
	entriesCh := make(chan direntry.Entry, 1024)
	var statWG sync.WaitGroup

	pool := workpool.New[statJob](0, func(_ int, job statJob) error {
		defer statWG.Done()
		if e, ok := direntry.Build(job.path); ok {
			entriesCh <- e
		}
		return nil
	})

	results := make([]direntry.Entry, 0, 256)
	done := make(chan struct{})
	go func() {
		for e := range entriesCh {
			results = append(results, e)
		}
		close(done)
	}()

	statWG.Add(1)
	pool.Submit(statJob{path: root})

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(maxWalkers())
	g.Go(func() error {
		return walkDir(root, 0, maxDepth, pool, &statWG, g)
	})
	_ = g.Wait() // walkDir never returns an error; every entry is best-effort

	statWG.Wait()
	pool.Close()
	_ = pool.Wait()
	close(entriesCh)
	<-done

	return results
}

// maxWalkers bounds how many directories Crawl lists concurrently.
func maxWalkers() int {
	return runtime.NumCPU() * 4
}

// walkDir submits a stat job for every descendant of dir, up to maxDepth
// (unbounded when negative), recursing into subdirectories through g so the
// errgroup's SetLimit bounds how many directories are listed concurrently;
// when no slot is free, the subdirectory is walked on the current goroutine.
// Errors from os.ReadDir are tolerated, not propagated: a directory this
// process can't read (permissions, a race with deletion) is simply skipped.
func walkDir(dir string, depth, maxDepth int, pool *workpool.Pool[statJob], statWG *sync.WaitGroup, g *errgroup.Group) error {
	if maxDepth >= 0 && depth >= maxDepth {
		return nil
	}

	names, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	for _, name := range names {
		child := filepath.Join(dir, name.Name())

		statWG.Add(1)
		pool.Submit(statJob{path: child})

		if name.IsDir() {
			child := child
			walk := func() error {
				return walkDir(child, depth+1, maxDepth, pool, statWG, g)
			}
			// A walker blocking in g.Go while holding a slot could deadlock
			// once every slot is taken, so a full group walks inline instead.
			if !g.TryGo(walk) {
				_ = walk()
			}
		}
	}
	return nil
}
