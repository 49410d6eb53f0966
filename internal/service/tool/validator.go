package tool

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/ashwinyue/toolhub/internal/model"
)

const (
	maxNameLength        = 100
	maxTagLength         = 20
	maxDescriptionLength = 500
	minWeight            = 0
	maxWeight            = 1000
)

const weightRangeMessage = "weight must be between 0 and 1000"

// ValidationResult 校验结果
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateTool 校验工具表单
// 所有规则都会检查，错误按规则顺序返回。管理器本身不会调用校验，
// 由调用方在修改前执行。
func ValidateTool(tool ToolInput) ValidationResult {
	errs := []string{}

	switch {
	case strings.TrimSpace(tool.Name) == "":
		errs = append(errs, "tool name is required")
	case utf8.RuneCountInString(tool.Name) > maxNameLength:
		errs = append(errs, "tool name must not exceed 100 characters")
	}

	switch {
	case strings.TrimSpace(tool.URL) == "":
		errs = append(errs, "tool URL is required")
	case !isValidURL(tool.URL):
		errs = append(errs, "invalid URL: must be a valid http or https address")
	}

	if tool.Category == "" {
		errs = append(errs, "category is required")
	}

	if tool.Status == "" {
		errs = append(errs, "status is required")
	}

	if len(tool.Tags) == 0 {
		errs = append(errs, "at least one tag is required")
	} else {
		for _, tag := range tool.Tags {
			if utf8.RuneCountInString(tag) > maxTagLength {
				errs = append(errs, "each tag must not exceed 20 characters")
				break
			}
		}
	}

	if utf8.RuneCountInString(tool.Description) > maxDescriptionLength {
		errs = append(errs, "description must not exceed 500 characters")
	}

	if tool.Weight != nil && (*tool.Weight < minWeight || *tool.Weight > maxWeight) {
		errs = append(errs, weightRangeMessage)
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// ValidateUpdate 校验更新后的完整工具
func ValidateUpdate(current ToolInput, update ToolUpdate) ValidationResult {
	merged := current
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Description != nil {
		merged.Description = *update.Description
	}
	if update.URL != nil {
		merged.URL = *update.URL
	}
	if update.Category != nil {
		merged.Category = *update.Category
	}
	if update.Status != nil {
		merged.Status = *update.Status
	}
	if update.Tags != nil {
		merged.Tags = update.Tags
	}
	if update.Weight != nil {
		merged.Weight = update.Weight
	}
	return ValidateTool(merged)
}

// ValidateWeights 校验批量权重，错误信息带上工具ID
func ValidateWeights(updates []WeightUpdate) ValidationResult {
	errs := []string{}
	for _, u := range updates {
		if u.Weight < minWeight || u.Weight > maxWeight {
			errs = append(errs, u.ID+": "+weightRangeMessage)
		}
	}
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// InputFromTool 把已有工具转换为表单数据
func InputFromTool(t model.Tool) ToolInput {
	weight := t.Weight
	return ToolInput{
		Name:        t.Name,
		Description: t.Description,
		Icon:        t.Icon,
		URL:         t.URL,
		Category:    t.Category,
		Status:      t.Status,
		Tags:        append([]string(nil), t.Tags...),
		Featured:    t.Featured,
		Weight:      &weight,
	}
}
