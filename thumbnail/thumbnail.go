// Package thumbnail 生成带说明文字的缩略图
// 说明文字格式为 "宽x高 (格式) [大小]"，位于缩略图下方的白色条带中
package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	"github.com/Wsine/images-upload-cli/utils"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	// DefaultSize 缩略图最大边长
	DefaultSize = 300
	// CaptionHeight 说明文字条带高度
	CaptionHeight = 16
	// Quality JPEG 质量
	Quality = 95
)

// Make 生成缩略图，返回 JPEG 数据
// 原图等比缩放到 size x size 以内（不放大），下方附加说明文字条带
func Make(img []byte, face font.Face, size int) ([]byte, error) {
	src, format, err := image.Decode(bytes.NewReader(img))
	if err != nil {
		return nil, errors.Wrap(err, "解码图片失败")
	}

	bounds := src.Bounds()
	w, h := fit(bounds.Dx(), bounds.Dy(), size)

	canvas := image.NewRGBA(image.Rect(0, 0, w, h+CaptionHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(canvas, image.Rect(0, 0, w, h), src, bounds, draw.Over, nil)

	if face != nil {
		drawer := &font.Drawer{
			Dst:  canvas,
			Src:  image.NewUniform(color.Black),
			Face: face,
			Dot:  fixed.P(w/5, h+face.Metrics().Ascent.Ceil()),
		}
		drawer.DrawString(Caption(bounds.Dx(), bounds.Dy(), format, len(img)))
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: Quality}); err != nil {
		return nil, errors.Wrap(err, "编码缩略图失败")
	}
	return buf.Bytes(), nil
}

// Caption 说明文字，例如 "100x100 (PNG) [91.0 B]"
func Caption(width, height int, format string, size int) string {
	return fmt.Sprintf("%dx%d (%s) [%s]", width, height, strings.ToUpper(format), utils.HumanSize(float64(size)))
}

// fit 计算等比缩放后的尺寸，不放大
func fit(w, h, size int) (int, int) {
	if w <= size && h <= size {
		return w, h
	}
	if w >= h {
		return size, max(1, (h*size+w/2)/w)
	}
	return max(1, (w*size+h/2)/h), size
}
