package emit

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/npillmayer/fontpack/core"
)

// DirSink writes assets as files into a directory.
type DirSink struct {
	Dir string
}

// NewDirSink checks and possibly creates an output folder.
// Non-existing sub-folders will be created as necessary (with permissions 755).
func NewDirSink(dir string) (*DirSink, error) {
	if dir == "" {
		dir = "."
	}
	_, err := os.Stat(dir)
	if os.IsNotExist(err) {
		tracer().Infof("creating output directory %s", dir)
		if err = os.MkdirAll(dir, 0755); err != nil {
			return nil, core.WrapError(err, core.EINVALID, "output directory cannot be created: %s", dir)
		}
	} else if err != nil {
		return nil, err
	}
	return &DirSink{Dir: dir}, nil
}

// Write is part of interface Sink. Names may contain sub-folders.
func (sink *DirSink) Write(name string, data []byte) error {
	fpath := filepath.Join(sink.Dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(fpath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fpath, data, 0644)
}

// Remove is part of interface Sink.
func (sink *DirSink) Remove(name string) error {
	return os.Remove(filepath.Join(sink.Dir, filepath.FromSlash(name)))
}

// MemorySink keeps assets in memory.
type MemorySink struct {
	sync.Mutex
	Files map[string][]byte
}

// NewMemorySink creates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{Files: make(map[string][]byte)}
}

// Write is part of interface Sink.
func (sink *MemorySink) Write(name string, data []byte) error {
	sink.Lock()
	defer sink.Unlock()
	sink.Files[name] = data
	return nil
}

// Remove is part of interface Sink.
func (sink *MemorySink) Remove(name string) error {
	sink.Lock()
	defer sink.Unlock()
	delete(sink.Files, name)
	return nil
}

// Names returns the names of all assets, sorted.
func (sink *MemorySink) Names() []string {
	sink.Lock()
	defer sink.Unlock()
	names := make([]string, 0, len(sink.Files))
	for name := range sink.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
