package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/world.yaml":          {Data: []byte("width: 1300\n")},
		"data/levels/level-1.yaml": {Data: []byte("id: level-1\n")},
		"data/levels/level-2.yaml": {Data: []byte("id: level-2\n")},
		"data/levels/readme.txt":   {Data: []byte("not yaml")},
	}
}

// TestNotInitialized 测试未初始化时的错误
func TestNotInitialized(t *testing.T) {
	Init(nil)

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false after Init(nil)")
	}
	if _, err := ReadFile("data/world.yaml"); err == nil {
		t.Error("Expected error when calling ReadFile() before Init()")
	}
	if _, err := Glob("data/*.yaml"); err == nil {
		t.Error("Expected error when calling Glob() before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "普通路径", path: "data/world.yaml", want: "width: 1300\n"},
		{name: "带./前缀", path: "./data/world.yaml", want: "width: 1300\n"},
		{name: "未知前缀", path: "assets/world.yaml", wantErr: true},
		{name: "文件不存在", path: "data/missing.yaml", wantErr: true},
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

func TestGlobAndExists(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	matches, err := Glob("data/levels/*.yaml")
	if err != nil {
		t.Fatalf("Glob() error: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Glob() = %v, want 2 yaml files", matches)
	}

	if !Exists("data/levels/level-1.yaml") {
		t.Error("Exists() should find level-1.yaml")
	}
	if Exists("data/levels/level-9.yaml") {
		t.Error("Exists() should not find level-9.yaml")
	}
}
