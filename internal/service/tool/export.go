package tool

import (
	"bytes"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/ashwinyue/toolhub/internal/data"
	"github.com/ashwinyue/toolhub/internal/model"
)

var seedTemplate = template.Must(template.New("seed").Funcs(template.FuncMap{
	"quote":    strconv.Quote,
	"category": categoryIdent,
	"status":   statusIdent,
	"tags":     tagsLiteral,
}).Parse(`package data

import "github.com/ashwinyue/toolhub/internal/model"

// SeedTimestamp 种子数据的统一时间戳（毫秒）
const SeedTimestamp int64 = {{.SeedTimestamp}}

// Tools 工具种子数据
var Tools = []model.Tool{
{{- range .Tools}}
	{
		ID: {{quote .ID}},
		Name: {{quote .Name}},
		Description: {{quote .Description}},
		Icon: {{quote .Icon}},
		URL: {{quote .URL}},
		Category: {{category .Category}},
		Status: {{status .Status}},
		Tags: {{tags .Tags}},
		Featured: {{.Featured}},
		Weight: {{.Weight}},
		CreatedAt: {{.CreatedAt}},
		UpdatedAt: {{.UpdatedAt}},
	},
{{- end}}
}
`))

// ExportToolsCode 导出当前工具列表为种子数据源码
// 输出用于人工审核后覆盖 internal/data/tools.go
func (m *Manager) ExportToolsCode() string {
	tools := m.GetAllTools()

	var buf bytes.Buffer
	if err := seedTemplate.Execute(&buf, struct {
		SeedTimestamp int64
		Tools         []model.Tool
	}{data.SeedTimestamp, tools}); err != nil {
		// 模板和数据均由本包控制，执行失败属于编程错误
		panic(err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.String()
	}
	return string(formatted)
}

// ExportToolsYAML 导出当前工具列表为 YAML 种子
func (m *Manager) ExportToolsYAML() ([]byte, error) {
	return data.MarshalTools(m.GetAllTools())
}

func categoryIdent(c model.ToolCategory) string {
	if c.IsValid() {
		return "model.Category" + titleCase(string(c))
	}
	return "model.ToolCategory(" + strconv.Quote(string(c)) + ")"
}

func statusIdent(s model.ToolStatus) string {
	if s.IsValid() {
		return "model.Status" + titleCase(string(s))
	}
	return "model.ToolStatus(" + strconv.Quote(string(s)) + ")"
}

func tagsLiteral(tags []string) string {
	quoted := make([]string, len(tags))
	for i, tag := range tags {
		quoted[i] = strconv.Quote(tag)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
