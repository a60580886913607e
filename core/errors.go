// Package core - 错误类型定义
package core

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ConfigError 必需的配置项（API密钥/令牌）缺失
// 在发起任何网络请求之前返回
type ConfigError struct {
	Variable   string // 缺失的环境变量名
	ConfigPath string // 建议写入的配置文件路径
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("请在环境变量或配置文件 '%s' 中设置 %s", e.ConfigPath, e.Variable)
}

// InvalidParameterError 命令行参数不合法（未知图床、未知格式、图片路径无效等）
type InvalidParameterError struct {
	Param    string   // 参数名
	Value    string   // 实际传入的值
	Expected []string // 合法取值（可为空）
}

func (e *InvalidParameterError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("参数 %s 的值 '%s' 无效", e.Param, e.Value)
	}
	return fmt.Sprintf("参数 %s 的值 '%s' 无效，可选值: %s",
		e.Param, e.Value, strings.Join(e.Expected, ", "))
}

// IsConfigError 判断错误链中是否包含 ConfigError
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// IsInvalidParameter 判断错误链中是否包含 InvalidParameterError
func IsInvalidParameter(err error) bool {
	var paramErr *InvalidParameterError
	return errors.As(err, &paramErr)
}
