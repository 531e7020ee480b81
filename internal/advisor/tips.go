package advisor

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Fallback replaces the tips block whenever generation is unavailable or
// fails. The caller still gets a complete report.
const Fallback = "<p style='color:red;'>⚠️ 暫時無法生成創新建議。</p>"

const heading = "<br><div style='font-size:24px;font-weight:bold;'>💡 創新建議</div><br>"

// BuildPrompt asks for ten investor-facing recommendations with emoji, in
// Traditional Chinese, strictly in the third person.
func BuildPrompt(country, industry, experience string) string {
	return fmt.Sprintf("為一位在%s%s領域擁有%s年經驗的專業人士，生成10條吸引投資者的實用建議，並附上表情符號。"+
		"語氣應犀利、具有策略性且專業。請用繁體中文回答。"+
		"重點：請使用客觀的第三人稱視角撰寫，例如使用「該類專業人士」或「他們」，絕對不要使用「您」或「您的」。",
		country, industry, experience)
}

// TipsBlock generates the advice fragment: one paragraph per non-empty line
// of the generator's output, under a fixed heading. One attempt, no retry;
// every failure path logs and returns the fallback fragment.
func TipsBlock(ctx context.Context, gen TextGenerator, country, industry, experience string) string {
	if gen == nil {
		zap.L().Error("text-generation client not configured")
		return Fallback
	}

	text, err := gen.Generate(ctx, BuildPrompt(country, industry, experience))
	if err != nil {
		zap.L().Error("tips generation failed", zap.Error(err))
		return Fallback
	}

	var b strings.Builder
	b.WriteString(heading)
	count := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fmt.Fprintf(&b, "<p style='font-size:16px; line-height:1.6; margin-bottom: 1em;'>%s</p>", line)
		count++
	}
	if count == 0 {
		zap.L().Error("tips generation returned no usable lines")
		return Fallback
	}
	return b.String()
}
