package character

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
	"time"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

// waitResult 轮询直到加载结束
func waitResult(t *testing.T, l *Loader) Result {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if res, ok := l.Poll(); ok {
			return res
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("loader did not finish")
	return Result{}
}

func TestLoaderSuccess(t *testing.T) {
	fsys := fstest.MapFS{
		"data/avatar.png": &fstest.MapFile{Data: encodePNG(t, 8, 16)},
	}
	l := NewLoader(fsys)
	l.Load("data/avatar.png")

	res := waitResult(t, l)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Image == nil || res.Image.Bounds().Dx() != 8 || res.Image.Bounds().Dy() != 16 {
		t.Fatalf("unexpected image %v", res.Image)
	}
	if l.Progress() != 1 {
		t.Errorf("progress = %v, want 1", l.Progress())
	}

	// 再次轮询返回同一结果
	again, ok := l.Poll()
	if !ok || again.Image != res.Image {
		t.Error("Poll should keep returning the settled result")
	}
}

func TestLoaderErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		path string
	}{
		{"文件不存在", fstest.MapFS{}, "data/missing.png"},
		{"不是图片", fstest.MapFS{"data/bad.png": &fstest.MapFile{Data: []byte("not a png")}}, "data/bad.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoader(tt.fsys)
			l.Load(tt.path)
			res := waitResult(t, l)
			if res.Err == nil {
				t.Fatal("expected an error")
			}
			if res.Image != nil {
				t.Error("failed load should not return an image")
			}
		})
	}
}

// TestLoaderEmptyPath 没有配置角色时立即完成
func TestLoaderEmptyPath(t *testing.T) {
	l := NewLoader(fstest.MapFS{})
	l.Load("")

	res, ok := l.Poll()
	if !ok {
		t.Fatal("empty path should settle immediately")
	}
	if res.Err != nil || res.Image != nil {
		t.Errorf("empty path result = %+v, want zero", res)
	}
	if l.Progress() != 1 {
		t.Errorf("progress = %v, want 1", l.Progress())
	}
}

func TestLoaderPollBeforeLoad(t *testing.T) {
	l := NewLoader(fstest.MapFS{})
	if _, ok := l.Poll(); ok {
		t.Error("Poll before Load should not report completion")
	}
}
