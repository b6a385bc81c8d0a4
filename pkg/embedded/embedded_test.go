package embedded

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func initTestFS() {
	Init(
		fstest.MapFS{"assets/character/avatar.png": &fstest.MapFile{Data: []byte("png")}},
		fstest.MapFS{
			"data/portfolio.yaml": &fstest.MapFile{Data: []byte("sections: []")},
			"data/extra.yaml":     &fstest.MapFile{Data: []byte("{}")},
		},
	)
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	initTestFS()
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
	initialized = false
}

// TestNotInitialized 未初始化时所有访问都返回同一错误
func TestNotInitialized(t *testing.T) {
	initialized = false

	if _, err := Open("assets/test.png"); err == nil || err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Open: unexpected error %v", err)
	}
	if _, err := ReadFile("data/test.yaml"); !errors.Is(err, errNotInitialized) {
		t.Errorf("ReadFile: unexpected error %v", err)
	}
	if Exists("data/portfolio.yaml") {
		t.Error("Exists should be false before Init()")
	}
}

func TestReadFileRouting(t *testing.T) {
	initTestFS()
	defer func() { initialized = false }()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"数据文件", "data/portfolio.yaml", "sections: []", false},
		{"资源文件", "assets/character/avatar.png", "png", false},
		{"带 ./ 前缀", "./data/portfolio.yaml", "sections: []", false},
		{"未知前缀", "config/portfolio.yaml", "", true},
		{"不存在", "data/missing.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExistsAndGlob(t *testing.T) {
	initTestFS()
	defer func() { initialized = false }()

	if !Exists("assets/character/avatar.png") {
		t.Error("avatar should exist")
	}
	if Exists("assets/character/missing.png") {
		t.Error("missing file should not exist")
	}

	matches, err := Glob("data/*.yaml")
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("expected 2 yaml files, got %v", matches)
	}
}

// TestRoutedFS 路由文件系统可以直接交给 fs.ReadFile
func TestRoutedFS(t *testing.T) {
	initTestFS()
	defer func() { initialized = false }()

	data, err := fs.ReadFile(FS(), "assets/character/avatar.png")
	if err != nil || string(data) != "png" {
		t.Fatalf("fs.ReadFile via FS() = %q, %v", data, err)
	}

	if _, err := FS().Open("../escape"); !errors.Is(err, fs.ErrInvalid) {
		t.Errorf("invalid path should be rejected, got %v", err)
	}

	_, err = FS().Open("other/file")
	var pe *fs.PathError
	if !errors.As(err, &pe) {
		t.Errorf("unknown prefix should yield *fs.PathError, got %T", err)
	}
}
