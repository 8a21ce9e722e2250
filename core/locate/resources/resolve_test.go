package resources

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromiseLoadsOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.resources")
	defer teardown()
	//
	var reads int32
	loader := NewLoader(func(file string) ([]byte, error) {
		atomic.AddInt32(&reads, 1)
		return []byte(file), nil
	})
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := loader.Load("a.ttf").Data(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "a.ttf", string(data))
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&reads))
	assert.Same(t, loader.Load("a.ttf"), loader.Load("a.ttf"))
}

func TestPromiseIsLazy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.resources")
	defer teardown()
	//
	var reads int32
	loader := NewLoader(func(file string) ([]byte, error) {
		atomic.AddInt32(&reads, 1)
		return nil, nil
	})
	loader.Load("a.ttf")
	loader.Load("b.ttf")
	assert.Equal(t, int32(0), atomic.LoadInt32(&reads), "no file should be read before awaiting")
}

func TestPromiseContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.resources")
	defer teardown()
	//
	release := make(chan struct{})
	defer close(release)
	loader := NewLoader(func(file string) ([]byte, error) {
		<-release
		return nil, nil
	})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := loader.Load("slow.ttf").Data(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestFileLoader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.resources")
	defer teardown()
	//
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ttf"), []byte("font"), 0644))
	loader := NewFileLoader(testconfig.Conf{"context": dir})
	data, err := loader.Load("a.ttf").Data(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "font", string(data))
	//
	_, err = loader.Load("missing.ttf").Data(context.Background())
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}
