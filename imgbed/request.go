// Package imgbed - HTTP 请求与响应解析辅助
package imgbed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"regexp"
	"strings"

	"github.com/Wsine/images-upload-cli/utils"
	"github.com/pkg/errors"
)

// maxResponseSize 响应体读取上限
const maxResponseSize = 8 << 20

// headers 附加请求头
type headers map[string]string

// field 普通表单字段，保持顺序
type field struct {
	name  string
	value string
}

// formFile 表单文件字段
type formFile struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

// fileField 未指定文件名的文件字段（文件名 upload，类型 application/octet-stream）
func fileField(name string, data []byte) formFile {
	return formFile{
		field:       name,
		filename:    "upload",
		contentType: "application/octet-stream",
		data:        data,
	}
}

// namedFileField 以 img.<格式> 为文件名的文件字段
func namedFileField(name string, data []byte) formFile {
	f := fileField(name, data)
	f.filename = utils.ImageName(data)
	return f
}

// response 已读取完毕的HTTP响应
type response struct {
	URL        string
	StatusCode int
	Status     string
	Body       []byte
}

// text 响应文本
func (r *response) text() string {
	return string(r.Body)
}

// decodeJSON 解析JSON响应，失败时返回 LinkNotFoundError
func (r *response) decodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return &LinkNotFoundError{URL: r.URL, Body: r.Body, Cause: err}
	}
	return nil
}

// link 校验解析出的链接非空
func (r *response) link(link string) (string, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", &LinkNotFoundError{URL: r.URL, Body: r.Body}
	}
	return link, nil
}

// search 在响应文本中按正则查找第一个分组
func (r *response) search(pattern *regexp.Regexp) (string, error) {
	match := pattern.FindStringSubmatch(r.text())
	if match == nil {
		return "", &LinkNotFoundError{URL: r.URL, Body: r.Body}
	}
	return r.link(match[1])
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeForm 构造 multipart/form-data 请求体
func encodeForm(fields []field, files []formFile) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", errors.Wrapf(err, "写入表单字段 %s 失败", f.name)
		}
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(f.field), quoteEscaper.Replace(f.filename)))
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", errors.Wrapf(err, "创建文件字段 %s 失败", f.field)
		}
		if _, err := part.Write(f.data); err != nil {
			return nil, "", errors.Wrapf(err, "写入文件字段 %s 失败", f.field)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "结束表单失败")
	}
	return body, w.FormDataContentType(), nil
}

// postForm 以 multipart/form-data 发送 POST 请求
func postForm(ctx context.Context, client *http.Client, endpoint string, hdr headers, fields []field, files ...formFile) (*response, error) {
	body, contentType, err := encodeForm(fields, files)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, errors.Wrapf(err, "构造请求 %s 失败", endpoint)
	}
	req.Header.Set("Content-Type", contentType)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	return do(client, req)
}

// get 发送 GET 请求
func get(ctx context.Context, client *http.Client, endpoint string) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "构造请求 %s 失败", endpoint)
	}
	return do(client, req)
}

// do 发送请求并读取响应，非 2xx 时返回 StatusError
func do(client *http.Client, req *http.Request) (*response, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "请求 %s 失败", req.URL.Redacted())
	}
	defer resp.Body.Close()

	data, err := readAllWithLimit(resp.Body, maxResponseSize)
	if err != nil {
		return nil, errors.Wrapf(err, "读取 %s 的响应失败", req.URL.Redacted())
	}

	// 跟随重定向后以最终地址为准
	finalURL := req.URL
	if resp.Request != nil {
		finalURL = resp.Request.URL
	}
	r := &response{
		URL:        finalURL.String(),
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       data,
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return r, &StatusError{URL: r.URL, StatusCode: r.StatusCode, Status: r.Status, Body: r.Body}
	}
	return r, nil
}

// readAllWithLimit 最多读取 limit 字节，超出时报错
func readAllWithLimit(r io.Reader, limit int64) ([]byte, error) {
	lr := &io.LimitedReader{R: r, N: limit + 1}
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, errors.Errorf("响应超过 %d 字节上限", limit)
	}
	return data, nil
}
