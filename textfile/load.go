package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/seqalgo"
)

// Some constants for batch size defaults, in lines
const (
	smallBatch  = 16
	mediumBatch = 256
	largeBatch  = 1024
)

// ErrStarted is returned when lines are requested from a file which is already
// loading.
var ErrStarted = errors.New("textfile: loading has already been started")

// ErrClosed is returned when subscribing to a file which has finished loading
// or has been closed.
var ErrClosed = errors.New("textfile: file is closed")

// Batch is a run of consecutive lines of a text file. First is the zero-based
// line number of Lines[0]. Line terminators are stripped.
type Batch struct {
	First int
	Lines []string
}

// File represents an OS text file which will be loaded line by line.
type File struct {
	path      string         // file name
	info      os.FileInfo    // result from Stat(path)
	file      *os.File       // file handle
	cast      *caster.Caster // broadcaster for async file loading
	batchSize int            // lines per batch
	start     sync.Once      // loading is started at most once
	stop      sync.Once      // broadcasting is stopped at most once
	done      chan struct{}  // closed when loading has finished
	mu        sync.Mutex     // guards started and lastError
	started   bool
	lastError error // remember last I/O error
}

// Open opens a file, which must be a regular file, for loading. batchSize is a
// recommended number of lines per batch; 0 lets Open choose a default from
// the size of the file. Opening of the file is always done synchronously.
func Open(name string, batchSize int) (*File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("textfile: %s is not a regular file: %w", name, seqalgo.ErrIllegalArguments)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	if batchSize <= 0 {
		switch {
		case fi.Size() < 4096:
			batchSize = smallBatch
		case fi.Size() < 1<<20:
			batchSize = mediumBatch
		default:
			batchSize = largeBatch
		}
	}
	tf := &File{
		path:      name,
		info:      fi,
		file:      file,
		cast:      caster.New(context.Background()), // we will broadcast batches when loaded
		batchSize: batchSize,
		done:      make(chan struct{}),
	}
	return tf, nil
}

// Path returns the name the file has been opened with.
func (tf *File) Path() string {
	return tf.path
}

// Subscribe returns a channel receiving all batches of lines published after
// the call. Clients subscribe before calling Start to receive the complete
// file. The channel is closed when loading has finished or ctx is done.
func (tf *File) Subscribe(ctx context.Context) (<-chan Batch, error) {
	ch, ok := tf.cast.Sub(ctx, 4)
	if !ok {
		return nil, fmt.Errorf("textfile: cannot subscribe to %s: %w", tf.path, ErrClosed)
	}
	out := make(chan Batch)
	go func() {
		defer close(out)
		for m := range ch {
			if ctx.Err() != nil {
				continue // drain until the caster lets go of us
			}
			select {
			case out <- m.(Batch):
			case <-ctx.Done():
			}
		}
	}()
	return out, nil
}

// Start starts loading the file in the background. Calling Start more than
// once has no effect.
func (tf *File) Start() {
	tf.start.Do(func() {
		tf.mu.Lock()
		tf.started = true
		tf.mu.Unlock()
		go tf.load()
	})
}

// Wait blocks until loading has finished.
func (tf *File) Wait() {
	<-tf.done
}

// Lines subscribes to the file, starts loading it and returns an iterator
// over the line numbers and lines of the file. If the file is already loading,
// the iterator yields nothing and Err reports ErrStarted.
func (tf *File) Lines(ctx context.Context) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		tf.mu.Lock()
		started := tf.started
		tf.mu.Unlock()
		if started {
			tf.setError(ErrStarted)
			return
		}
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		batches, err := tf.Subscribe(ctx)
		if err != nil {
			tf.setError(err)
			return
		}
		tf.Start()
		for b := range batches {
			for i, line := range b.Lines {
				if !yield(b.First+i, line) {
					return
				}
			}
		}
	}
}

// Err returns the last error which occurred while loading the file.
func (tf *File) Err() error {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return tf.lastError
}

func (tf *File) setError(err error) {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	tf.lastError = err
}

// Close stops broadcasting and closes the underlying OS file. If loading is in
// progress, Close waits for it to finish.
func (tf *File) Close() error {
	tf.mu.Lock()
	started := tf.started
	tf.mu.Unlock()
	if started {
		tf.Wait()
	}
	tf.stopCasting()
	return tf.file.Close()
}

func (tf *File) stopCasting() {
	tf.stop.Do(func() { tf.cast.Close() })
}

// --- File loading goroutine ------------------------------------------------

func (tf *File) load() {
	defer close(tf.done)
	defer tf.stopCasting()
	r := bufio.NewReader(tf.file)
	batch := Batch{Lines: make([]string, 0, tf.batchSize)}
	lineno, published := 0, 0
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			batch.Lines = append(batch.Lines, strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
			lineno++
		}
		if len(batch.Lines) == tf.batchSize || (err != nil && len(batch.Lines) > 0) {
			tf.cast.Pub(batch)
			published++
			batch = Batch{First: lineno, Lines: make([]string, 0, tf.batchSize)}
		}
		if err != nil {
			if err != io.EOF {
				tf.setError(fmt.Errorf("textfile: error loading %s: %w", tf.path, err))
			}
			break
		}
	}
	tracer().Debugf("textfile: loaded %d lines of %s in %d batches", lineno, tf.path, published)
}
