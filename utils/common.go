package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ImageExt 根据图片内容（而不是文件扩展名）判断图片格式
// 返回小写格式名，例如 png、jpeg、gif、webp；无法识别时返回空字符串
func ImageExt(img []byte) string {
	mtype := mimetype.Detect(img)
	subtype, ok := strings.CutPrefix(mtype.String(), "image/")
	if !ok {
		return ""
	}
	// image/vnd.microsoft.icon、image/x-icon 之类取扩展名
	if strings.ContainsAny(subtype, ".-+;") {
		return strings.TrimPrefix(mtype.Extension(), ".")
	}
	return subtype
}

// ImageName 构造上传用的文件名，例如 img.png
func ImageName(img []byte) string {
	return "img." + ImageExt(img)
}

// HumanSize 将字节数转换为易读格式，例如 "91.0 B"、"1.5 MiB"
func HumanSize(num float64) string {
	units := []string{"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi"}
	for _, unit := range units {
		if math.Abs(num) < 1024.0 {
			return fmt.Sprintf("%3.1f %sB", num, unit)
		}
		num /= 1024.0
	}
	return fmt.Sprintf("%.1f YiB", num)
}

// ContentHash 返回内容的 sha256 十六进制摘要
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
