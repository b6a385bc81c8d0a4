// Package character 异步加载角色贴图
//
// 解码在后台 goroutine 中进行，结果通过 channel 交回；场景在 Update 中轮询，
// 所有状态变化都发生在逻辑线程上。
package character

import (
	"fmt"
	"image"
	_ "image/png" // 注册 PNG 解码器
	"io"
	"io/fs"
	"log"
	"sync/atomic"
)

// Result 加载结果，Image 和 Err 恰有一个非空；路径为空时两者都为空
type Result struct {
	Image image.Image
	Err   error
}

// Loader 一次性加载器
type Loader struct {
	fsys fs.FS

	done     chan Result
	progress atomic.Int64 // 千分比
	result   *Result
	started  bool
}

// NewLoader 从 fsys 中读取贴图
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys: fsys,
		done: make(chan Result, 1),
	}
}

// Load 开始加载，只能调用一次
func (l *Loader) Load(path string) {
	if l.started {
		return
	}
	l.started = true

	if path == "" {
		l.progress.Store(1000)
		l.done <- Result{}
		return
	}

	log.Printf("[Character] loading %s", path)
	go func() {
		img, err := l.decode(path)
		if err != nil {
			l.done <- Result{Err: fmt.Errorf("failed to load character %s: %w", path, err)}
			return
		}
		l.done <- Result{Image: img}
	}()
}

func (l *Loader) decode(path string) (image.Image, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if info, err := f.Stat(); err == nil && info.Size() > 0 {
		r = &progressReader{r: f, total: info.Size(), progress: &l.progress}
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode: %w", err)
	}
	l.progress.Store(1000)
	return img, nil
}

// Poll 非阻塞地检查结果；加载完成后每次调用都返回同一结果
func (l *Loader) Poll() (Result, bool) {
	if l.result != nil {
		return *l.result, true
	}
	select {
	case res := <-l.done:
		l.result = &res
		if res.Err != nil {
			log.Printf("[Character] %v", res.Err)
		} else if res.Image != nil {
			b := res.Image.Bounds()
			log.Printf("[Character] loaded %dx%d", b.Dx(), b.Dy())
		}
		return res, true
	default:
		return Result{}, false
	}
}

// Progress 读取进度 [0, 1]
func (l *Loader) Progress() float64 {
	return float64(l.progress.Load()) / 1000
}

type progressReader struct {
	r        io.Reader
	total    int64
	read     int64
	progress *atomic.Int64
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)
	// 读完不等于解码完，留到 decode 结束时再置满
	v := p.read * 999 / p.total
	if v > 999 {
		v = 999
	}
	p.progress.Store(v)
	return n, err
}
