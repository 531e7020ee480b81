package report

import (
	"fmt"
	"strings"

	"github.com/katachat/investor-insight-agent/internal/models"
)

// Title heads both document variants.
const Title = "<h4 style='text-align:center;font-size:24px;'>🎯 AI 策略洞察</h4>"

const banner = "<h1>新的投資者洞察提交</h1>"

const footer = "<div style='background-color:#f9f9f9;color:#333;padding:20px;border-left:6px solid #8C52FF; border-radius:8px;margin-top:30px;'>" +
	"<strong>📊 AI 洞察來源:</strong><ul style='margin-top:10px;margin-bottom:10px;padding-left:20px;line-height:1.7;'>" +
	"<li>來自新加坡、馬來西亞和台灣的匿名專業人士資料</li>" +
	"<li>來自 OpenAI 和全球市場的投資者情緒模型及趨勢基準</li></ul>" +
	"<p style='margin-top:10px;line-height:1.7;'>所有資料均符合個人資料保護法(PDPA)且不會被儲存。我們的 AI 系統在偵測具統計意義的模式時，不會引用任何個人記錄。</p>" +
	"<p style='margin-top:10px;line-height:1.7;'><strong>附註:</strong> 這份初步洞察僅僅是個開始。一份更個人化、資料更具體的報告——反映您提供的完整資訊——將在 <strong>24 至 48 小時</strong> 內準備好並傳送到收件人的信箱。" +
	"這將使我們的 AI 系統能夠將您的資料與細微的區域和產業特定基準進行交叉引用，確保提供針對確切挑戰的更精準建議。" +
	"如果希望盡快進行對話，我們很樂意在您方便的時間安排一次 <strong>15 分鐘的通話</strong>。 🎯</p></div>"

// Fragments collects the rendered report pieces in assembly order.
type Fragments struct {
	Chart     string
	Narrative string
	Advice    string
}

// Document holds the two HTML variants produced per request. Display is the
// same fragment sequence as Full minus the banner and submission summary.
type Document struct {
	Full    string // emailed to the service mailbox
	Display string // returned to the caller
}

// Assemble concatenates the fragments with the static footer and, for the
// full variant, the raw field-by-field submission summary.
func Assemble(p models.IntakeProfile, f Fragments) Document {
	display := Title + f.Chart + f.Narrative + f.Advice + footer
	return Document{
		Full:    banner + summaryBlock(p) + display,
		Display: display,
	}
}

func summaryBlock(p models.IntakeProfile) string {
	var b strings.Builder
	b.WriteString("<br><div style='font-size:14px;color:#333;line-height:1.6;'>")
	b.WriteString("<h3 style='font-size:16px;'>📝 提交摘要</h3>")
	rows := p.SummaryRows()
	for i, r := range rows {
		fmt.Fprintf(&b, "<strong>%s:</strong> %s", r.Label, r.Value)
		if i < len(rows)-1 {
			b.WriteString("<br>")
		}
	}
	b.WriteString("</div><hr>")
	return b.String()
}
