package resources

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/schuko"
)

// NotFound returns an application error for a missing font file.
func NotFound(res string, err error) error {
	return core.WrapError(err, core.EMISSING, "font not found: %s", res)
}

// ReadError returns an application error for a font file which exists but
// could not be read.
func ReadError(res string, err error) error {
	return core.WrapError(err, core.EREAD, "cannot read font file: %s", res)
}

// --- Promises --------------------------------------------------------------

// DataPromise is a handle for binary data which is loaded at most once.
type DataPromise interface {
	// Data blocks until the data is loaded or ctx is done.
	Data(ctx context.Context) ([]byte, error)
}

// ReadFunc reads the binary data of a file.
type ReadFunc func(file string) ([]byte, error)

type dataPlusErr struct {
	data []byte
	err  error
}

type dataLoader struct {
	file  string
	read  ReadFunc
	start sync.Once
	done  chan struct{}
	r     dataPlusErr
}

func newDataLoader(file string, read ReadFunc) *dataLoader {
	return &dataLoader{file: file, read: read, done: make(chan struct{})}
}

// Data is part of interface DataPromise. The first call starts loading.
func (loader *dataLoader) Data(ctx context.Context) ([]byte, error) {
	loader.start.Do(func() {
		go func() {
			tracer().Debugf("loading %s", loader.file)
			loader.r.data, loader.r.err = loader.read(loader.file)
			close(loader.done)
		}()
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-loader.done:
		return loader.r.data, loader.r.err
	}
}

// --- Loaders ---------------------------------------------------------------

// Loader hands out promises for files, one promise per file name.
type Loader struct {
	sync.Mutex
	read     ReadFunc
	promises map[string]*dataLoader
}

// NewLoader creates a loader which reads files with read.
func NewLoader(read ReadFunc) *Loader {
	return &Loader{
		read:     read,
		promises: make(map[string]*dataLoader),
	}
}

// Load returns the promise for a file. Loading will start with the first
// call to Data.
func (l *Loader) Load(file string) DataPromise {
	l.Lock()
	defer l.Unlock()
	if p, ok := l.promises[file]; ok {
		return p
	}
	p := newDataLoader(file, l.read)
	l.promises[file] = p
	return p
}

// NewFileLoader creates a loader for font files relative to a base directory.
//
// Configuration keys:
//
//	context        base directory of relative font file paths (default ".")
//	system-fonts   if "true", files not found are searched for among the
//	               fonts installed on the system
func NewFileLoader(conf schuko.Configuration) *Loader {
	base := conf.GetString("context")
	if base == "" {
		base = "."
	}
	systemFonts := strings.EqualFold(conf.GetString("system-fonts"), "true")
	tracer().Infof("resolving font files relative to %s", base)
	return NewLoader(func(file string) ([]byte, error) {
		return readFontFile(base, file, systemFonts)
	})
}

func readFontFile(base, file string, systemFonts bool) ([]byte, error) {
	fpath := file
	if !filepath.IsAbs(fpath) {
		fpath = filepath.Join(base, file)
	}
	data, err := os.ReadFile(fpath)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, ReadError(file, err)
	}
	if systemFonts {
		if spath, ferr := findfont.Find(filepath.Base(file)); ferr == nil && spath != "" {
			tracer().Infof("%s is a system font: %s", file, spath)
			if data, err = os.ReadFile(spath); err != nil {
				return nil, ReadError(spath, err)
			}
			return data, nil
		}
	}
	return nil, NotFound(file, err)
}
