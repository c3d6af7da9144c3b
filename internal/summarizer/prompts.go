package summarizer

import "fmt"

// The structured templates fix the section layout of the final document:
// overview, key points, key information, main arguments, action items.

const summaryPromptZH = `你是一个专业的内容总结专家。请对以下内容进行全面分析和总结。

**要求：**
1. 首先提供一个简洁的摘要（2-3句话）
2. 列出核心要点（使用项目符号）
3. 提取关键信息和重要数据
4. 如果有的话，总结主要观点和结论
5. 标注任何行动项或建议

**输出格式：**
# 内容总结

## 摘要
[简洁的内容概述]

## 核心要点
- [要点1]
- [要点2]
- ...

## 关键信息
[重要的数据、事实、引用等]

## 主要观点
[主要论点和结论]

## 行动建议（如适用）
[可执行的建议或下一步]

---

**以下是需要总结的内容：**

%s
`

const summaryPromptEN = `You are a professional content summarizer. Please analyze and summarize the following content comprehensively.

**Requirements:**
1. Provide a brief summary (2-3 sentences)
2. List key points (using bullet points)
3. Extract important information and data
4. Summarize main arguments and conclusions if any
5. Note any action items or recommendations

**Output Format:**
# Content Summary

## Summary
[Brief overview of the content]

## Key Points
- [Point 1]
- [Point 2]
- ...

## Key Information
[Important data, facts, quotes, etc.]

## Main Arguments
[Main arguments and conclusions]

## Action Items (if applicable)
[Actionable recommendations or next steps]

---

**Content to summarize:**

%s
`

func structuredPrompt(language, content string) string {
	if language == "en" {
		return fmt.Sprintf(summaryPromptEN, content)
	}
	return fmt.Sprintf(summaryPromptZH, content)
}

// chunkPrompt asks for lightweight key points only; the full template is
// reserved for the final integration pass.
func chunkPrompt(language, chunk string) string {
	if language == "en" {
		return fmt.Sprintf("Please summarize the key points of the following content concisely:\n\n%s", chunk)
	}
	return fmt.Sprintf("请简洁总结以下内容的要点：\n\n%s", chunk)
}

func directSystem(language string) string {
	if language == "en" {
		return "You are a professional content analysis and summarization expert."
	}
	return "你是一个专业的内容分析和总结专家。"
}

func chunkSystem(language string) string {
	if language == "en" {
		return "You are a professional content summarizer. Provide concise key-point summaries."
	}
	return "你是一个专业的内容总结专家。请提供简洁的要点总结。"
}

func integrationSystem(language string) string {
	if language == "en" {
		return "You are a professional content analysis and summarization expert. The input consists of partial summaries; integrate them into one coherent summary."
	}
	return "你是一个专业的内容分析和总结专家。以下是分段总结，请整合为一个完整的总结。"
}

func partLabel(language string, i int) string {
	if language == "en" {
		return fmt.Sprintf("**Part %d summary:**", i)
	}
	return fmt.Sprintf("**第%d部分总结:**", i)
}
