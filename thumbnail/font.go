package thumbnail

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// FontSize 说明文字字号
const FontSize = 14

// DefaultFonts 未指定字体时依次查找的字体
var DefaultFonts = []string{
	"Helvetica",
	"NotoSerif-Regular",
	"Menlo",
	"DejaVuSerif",
	"arial",
}

var fontExts = []string{".ttf", ".otf", ".ttc"}

// LoadFont 加载说明文字字体
// name 可以是字体文件路径或字体名；为空时查找 DefaultFonts，都找不到时使用内置点阵字体。
// 指定的字体无法加载时返回错误。
func LoadFont(name string) (font.Face, error) {
	if name != "" {
		path := name
		if _, err := os.Stat(path); err != nil {
			if path = findFont(name, FontDirs()); path == "" {
				return nil, errors.Errorf("找不到字体 %s", name)
			}
		}
		return openFace(path)
	}

	dirs := FontDirs()
	for _, n := range DefaultFonts {
		if path := findFont(n, dirs); path != "" {
			if face, err := openFace(path); err == nil {
				return face, nil
			}
		}
	}
	return basicfont.Face7x13, nil
}

// openFace 解析 TrueType/OpenType 字体文件
func openFace(path string) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "读取字体 %s 失败", path)
	}

	var f *opentype.Font
	if strings.EqualFold(filepath.Ext(path), ".ttc") {
		collection, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, errors.Wrapf(err, "解析字体 %s 失败", path)
		}
		if f, err = collection.Font(0); err != nil {
			return nil, errors.Wrapf(err, "解析字体 %s 失败", path)
		}
	} else if f, err = opentype.Parse(data); err != nil {
		return nil, errors.Wrapf(err, "解析字体 %s 失败", path)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "创建字体 %s 失败", path)
	}
	return face, nil
}

// findFont 在字体目录中按文件名（不区分大小写，不含扩展名）查找字体
func findFont(name string, dirs []string) string {
	want := strings.ToLower(name)
	for _, dir := range dirs {
		var found string
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if !isFontExt(ext) {
				return nil
			}
			if strings.ToLower(strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))) == want {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if found != "" {
			return found
		}
	}
	return ""
}

func isFontExt(ext string) bool {
	for _, e := range fontExts {
		if ext == e {
			return true
		}
	}
	return false
}

// FontDirs 系统字体目录
func FontDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
			filepath.Join(home, "Library", "Fonts"),
		}
	case "windows":
		dirs := []string{filepath.Join(os.Getenv("WINDIR"), "Fonts")}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
		return dirs
	default:
		return []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
			filepath.Join(home, ".local", "share", "fonts"),
			filepath.Join(home, ".fonts"),
		}
	}
}
