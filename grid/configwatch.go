package grid

import (
	"encoding/json"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// geometryFile is the on-disk shape WatchGeometryFile expects: the same six
// numbers ConfigureGeometry accepts, all optional so a host can override
// a subset.
type geometryFile struct {
	ColHeaderHeight *int `json:"col_header_height"`
	RowHeaderWidth  *int `json:"row_header_width"`
	DefColWidth     *int `json:"def_col_width"`
	DefRowHeight    *int `json:"def_row_height"`
	PaddingHorz     *int `json:"padding_horz"`
	PaddingVert     *int `json:"padding_vert"`
}

// ConfigWatcher applies a JSON geometry config file to a View whenever it
// changes on disk, debounced by a short idle timer on top of fsnotify's
// own event coalescing. Purely additive convenience (§4.10); nothing in
// §4.3 requires it.
type ConfigWatcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// WatchGeometryFile starts watching path and applies it to v on every
// write, plus once immediately. The view's operations are single-
// threaded (§5), so every apply is run through dispatch, which must
// marshal the call onto the view's owning thread (e.g. a tcell event
// loop's post-to-UI-thread hook); pass nil to call directly, which is
// only safe if the caller itself drives the view from this watcher's
// goroutine. Call Close to stop.
func WatchGeometryFile(v *View, path string, debounce time.Duration, dispatch func(func())) (*ConfigWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, err
	}
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	cw := &ConfigWatcher{watcher: w, done: make(chan struct{})}
	dispatch(func() { applyGeometryFile(v, path) })

	go func() {
		var timer *time.Timer
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, func() { dispatch(func() { applyGeometryFile(v, path) }) })
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-cw.done:
				return
			}
		}
	}()
	return cw, nil
}

// Close stops the watcher goroutine and releases the underlying
// fsnotify.Watcher.
func (cw *ConfigWatcher) Close() error {
	close(cw.done)
	return cw.watcher.Close()
}

func applyGeometryFile(v *View, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var gf geometryFile
	if err := json.Unmarshal(data, &gf); err != nil {
		return
	}
	cfg := GeometryConfig{}
	set := func(mask GeometryMask, p *int, dst *int) {
		if p != nil {
			cfg.Mask |= mask
			*dst = *p
		}
	}
	set(GeomColHeaderHeight, gf.ColHeaderHeight, &cfg.ColHeaderHeight)
	set(GeomRowHeaderWidth, gf.RowHeaderWidth, &cfg.RowHeaderWidth)
	set(GeomDefColWidth, gf.DefColWidth, &cfg.DefColWidth)
	set(GeomDefRowHeight, gf.DefRowHeight, &cfg.DefRowHeight)
	set(GeomPaddingHorz, gf.PaddingHorz, &cfg.PaddingHorz)
	set(GeomPaddingVert, gf.PaddingVert, &cfg.PaddingVert)
	if cfg.Mask != 0 {
		v.ConfigureGeometry(cfg)
	}
}
