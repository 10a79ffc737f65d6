package textfile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"unicode"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
)

// DefaultCapacity is the number of words buffered between the reading
// goroutine and the loading goroutine.
const DefaultCapacity = 64

// Options control how words are collected. A nil *Options selects defaults.
type Options struct {
	FoldCase bool // insert lower-cased words
	Capacity uint // buffer size for words in flight; 0 means DefaultCapacity
}

// Load reads a file, which must be a UTF-8 text file, and returns a tree of
// its distinct words. Words are inserted in the order in which they first
// appear in the file.
//
// Opening of the file is done synchronously, reading is done in the
// background. If ctx is cancelled before the file has been read completely,
// Load returns the words collected so far together with ctx.Err().
func Load(ctx context.Context, name string, opts *Options) (*ordtree.Tree[string], error) {
	file, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	tracer().Debugf("loading words from %s", name)
	return Read(ctx, file, opts)
}

// openFile opens an OS file for reading, checking for error conditions.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("textfile: %w", err)
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("textfile: %s is not a regular file: %w", name, ordtree.ErrIllegalArguments)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, fmt.Errorf("textfile: %w", err)
	}
	return file, nil
}

// Read collects the distinct words of a UTF-8 text into a tree, in reading order.
// See Load.
func Read(ctx context.Context, r io.Reader, opts *Options) (*ordtree.Tree[string], error) {
	if r == nil {
		return nil, ordtree.ErrIllegalArguments
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &Options{}
	}
	capacity := opts.Capacity
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	cast := caster.New(ctx)
	sub, ok := cast.Sub(ctx, capacity)
	if !ok {
		return nil, fmt.Errorf("textfile: cannot subscribe to word broadcast: %w", ctx.Err())
	}
	rd := &errReader{r: r}
	errc := make(chan error, 1)
	go func() {
		// publish words to the loading goroutine
		defer cast.Close()
		for word := range Words(rd) {
			if !cast.Pub(word) {
				break
			}
		}
		errc <- rd.err
	}()
	tree := ordtree.New[string]()
	count := 0
	for msg := range sub {
		word := msg.(string)
		if opts.FoldCase {
			word = strings.ToLower(word)
		}
		tree.Insert(word)
		count++
	}
	// the reader may still be blocked in Read on cancellation; errc is buffered,
	// so the reading goroutine exits once that Read returns
	select {
	case err := <-errc:
		if err != nil {
			return tree, fmt.Errorf("textfile: error reading text: %w", err)
		}
	case <-ctx.Done():
		tracer().Infof("reading cancelled after %d words", count)
		return tree, ctx.Err()
	}
	if err := ctx.Err(); err != nil {
		return tree, err
	}
	tracer().Infof("read %d words, %d distinct", count, tree.Size())
	return tree, nil
}

// Words returns an iterator over the words of a UTF-8 text. Word boundaries
// are determined by UAX#29; segments without letters or digits, such as
// whitespace and punctuation, are skipped.
func Words(r io.Reader) iter.Seq[string] {
	return func(yield func(string) bool) {
		segmenter := segment.NewSegmenter(uax29.NewWordBreaker(1))
		segmenter.Init(bufio.NewReader(r))
		for segmenter.Next() {
			frag := string(segmenter.Bytes())
			if !isWord(frag) {
				continue
			}
			if !yield(frag) {
				return
			}
		}
	}
}

func isWord(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	}) >= 0
}

// errReader remembers the first non-EOF error of a reader, as the segmenter
// swallows read errors.
type errReader struct {
	r   io.Reader
	err error
}

func (er *errReader) Read(p []byte) (int, error) {
	n, err := er.r.Read(p)
	if err != nil && err != io.EOF && er.err == nil {
		er.err = err
	}
	return n, err
}
