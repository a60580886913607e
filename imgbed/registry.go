// Package imgbed - 图床注册表
package imgbed

import (
	"sort"

	"github.com/Wsine/images-upload-cli/core"
)

// hosting 注册表条目
type hosting struct {
	env []string                        // 必需的环境变量
	new func(cfg *core.Config) Platform // 构造函数
}

// hostings 图床名 -> 条目，初始化后不再修改
var hostings = map[string]hosting{
	"anhmoe":     {nil, func(cfg *core.Config) Platform { return NewAnhmoePlatform(cfg) }},
	"beeimg":     {nil, func(*core.Config) Platform { return &BeeimgPlatform{} }},
	"catbox":     {nil, func(*core.Config) Platform { return &CatboxPlatform{} }},
	"fastpic":    {nil, func(*core.Config) Platform { return &FastpicPlatform{} }},
	"filecoffee": {nil, func(*core.Config) Platform { return &FilecoffeePlatform{} }},
	"freeimage":  {[]string{"FREEIMAGE_KEY"}, func(cfg *core.Config) Platform { return NewFreeimagePlatform(cfg) }},
	"gyazo":      {[]string{"GYAZO_TOKEN"}, func(cfg *core.Config) Platform { return &GyazoPlatform{config: cfg} }},
	"imageban":   {[]string{"IMAGEBAN_TOKEN"}, func(cfg *core.Config) Platform { return &ImagebanPlatform{config: cfg} }},
	"imagebin":   {nil, func(*core.Config) Platform { return &ImagebinPlatform{} }},
	"imgbb":      {[]string{"IMGBB_KEY"}, func(cfg *core.Config) Platform { return &ImgbbPlatform{config: cfg} }},
	"imgchest":   {[]string{"IMGCHEST_KEY"}, func(cfg *core.Config) Platform { return &ImgchestPlatform{config: cfg} }},
	"imgur":      {nil, func(cfg *core.Config) Platform { return &ImgurPlatform{config: cfg} }},
	"lensdump":   {[]string{"LENSDUMP_KEY"}, func(cfg *core.Config) Platform { return NewLensdumpPlatform(cfg) }},
	"pixeldrain": {nil, func(*core.Config) Platform { return &PixeldrainPlatform{} }},
	"pixhost":    {nil, func(*core.Config) Platform { return &PixhostPlatform{} }},
	"ptpimg":     {[]string{"PTPIMG_KEY"}, func(cfg *core.Config) Platform { return &PtpimgPlatform{config: cfg} }},
	"smms":       {[]string{"SMMS_KEY"}, func(cfg *core.Config) Platform { return &SmmsPlatform{config: cfg} }},
	"sxcu":       {nil, func(*core.Config) Platform { return &SxcuPlatform{} }},
	"telegraph":  {nil, func(*core.Config) Platform { return &TelegraphPlatform{} }},
	"thumbsnap":  {[]string{"THUMBSNAP_KEY"}, func(cfg *core.Config) Platform { return &ThumbsnapPlatform{config: cfg} }},
	"tixte":      {[]string{"TIXTE_KEY"}, func(cfg *core.Config) Platform { return &TixtePlatform{config: cfg} }},
	"up2sha":     {[]string{"UP2SHA_KEY"}, func(cfg *core.Config) Platform { return &Up2shaPlatform{config: cfg} }},
	"uplio":      {[]string{"UPLIO_KEY"}, func(cfg *core.Config) Platform { return &UplioPlatform{config: cfg} }},
	"uploadcare": {[]string{"UPLOADCARE_KEY"}, func(cfg *core.Config) Platform { return &UploadcarePlatform{config: cfg} }},
	"vgy":        {[]string{"VGY_KEY"}, func(cfg *core.Config) Platform { return &VgyPlatform{config: cfg} }},

	"picgo": {nil, func(cfg *core.Config) Platform { return &PicgoPlatform{config: cfg} }},

	"oss": {ossEnv, func(cfg *core.Config) Platform { return &OSSPlatform{config: cfg} }},
	"cos": {cosEnv, func(cfg *core.Config) Platform { return &COSPlatform{config: cfg} }},
	"s3":  {s3Env, func(cfg *core.Config) Platform { return &S3Platform{config: cfg} }},
}

// Hostings 返回所有支持的图床名（已排序）
func Hostings() []string {
	names := make([]string, 0, len(hostings))
	for name := range hostings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve 根据图床名创建平台实例，未知图床返回 InvalidParameterError
func Resolve(name string, cfg *core.Config) (Platform, error) {
	h, ok := hostings[name]
	if !ok {
		return nil, &core.InvalidParameterError{Param: "--hosting", Value: name, Expected: Hostings()}
	}
	return h.new(cfg), nil
}

// RequiredEnv 返回图床必需的环境变量，未知图床返回 nil
func RequiredEnv(name string) []string {
	h, ok := hostings[name]
	if !ok {
		return nil
	}
	return append([]string(nil), h.env...)
}
