package report

import (
	"fmt"
	"strings"
)

// Descriptive clauses keyed by recognized industry values. Unrecognized
// industries fall back to a generic phrasing built from the raw value.
var industryClauses = map[string]string{
	"保險":   "競爭激烈的保險領域",
	"不動產":  "充滿活力的不動產市場",
	"金融":   "高風險的金融世界",
	"科技":   "快速發展的科技產業",
	"製造業":  "基礎穩固的製造業",
	"教育":   "富有影響力的教育領域",
	"醫療保健": "至關重要的醫療保健產業",
}

var challengeClauses = map[string]string{
	"尋求新資金":  "尋求新資本以驅動下一階段的成長",
	"擴張策略不明": "規劃一條清晰且具防禦性的擴張路徑",
	"投資信心不足": "為投資者建立一個令人信服且有證據支持的案例",
	"品牌定位薄弱": "強化品牌敘事和市場定位的策略要務",
}

// IndustryClause resolves an industry value to its descriptive clause.
func IndustryClause(industry string) string {
	if c, ok := industryClauses[industry]; ok {
		return c
	}
	return fmt.Sprintf("於 %s 領域", industry)
}

// ChallengeClause resolves a challenge value to its descriptive clause.
func ChallengeClause(challenge string) string {
	if c, ok := challengeClauses[challenge]; ok {
		return c
	}
	return fmt.Sprintf("解決 %s 的主要挑戰", challenge)
}

// OpeningCount is the number of candidate opening sentences.
const OpeningCount = 3

// NarrativeInput carries everything the composer interpolates. All string
// fields arrive already normalized, so no field here is ever empty.
type NarrativeInput struct {
	Age           int
	Experience    string
	Industry      string
	Country       string
	Challenge     string
	Context       string
	TargetProfile string
	Metrics       []Category
}

func openings(in NarrativeInput, industryClause string) [OpeningCount]string {
	return [OpeningCount]string{
		fmt.Sprintf("對於一位在%s%s深耕約%s年的專業人士而言，到達策略十字路口不僅是常態，更是雄心的體現。",
			in.Country, industryClause, in.Experience),
		fmt.Sprintf("一位擁有%s年%s%s經驗的專業人士，其職業生涯是適應能力和專業知識的明證，並自然地引向關鍵的轉折與反思時刻。",
			in.Experience, in.Country, industryClause),
		fmt.Sprintf("在%d歲的年紀，於%s的%s導航%s年，培養了獨特的視角，尤其是在面對職業成長的下一階段時。",
			in.Age, in.Country, industryClause, in.Experience),
	}
}

// ComposeNarrative produces the strategy-summary fragment: a fixed heading
// followed by four paragraphs of third-person prose. Only the interpolated
// values and the randomly chosen opening vary between requests.
func ComposeNarrative(in NarrativeInput, src Source) string {
	industry := IndustryClause(in.Industry)
	challenge := ChallengeClause(in.Challenge)
	opening := openings(in, industry)[src.IntN(OpeningCount)]

	brand, fit, stick := in.Metrics[0].Values[0], in.Metrics[0].Values[1], in.Metrics[0].Values[2]
	conf, scale, trust := in.Metrics[1].Values[0], in.Metrics[1].Values[1], in.Metrics[1].Values[2]
	partn, premium, leader := in.Metrics[2].Values[0], in.Metrics[2].Values[1], in.Metrics[2].Values[2]

	var b strings.Builder
	b.WriteString("<br><div style='font-size:24px;font-weight:bold;'>🧠 策略摘要</div><br>")
	fmt.Fprintf(&b,
		"<p style='line-height:1.7; text-align:justify; margin-bottom: 1em;'>%s 這份報告反映了一個關鍵時刻，其焦點轉向%s。數據顯示，擁有此背景的專業人士具備%d%%的強大品牌認知，意味著已建立一定的市場影響力。 "+
			"然而，分析也指出了一个機會：需要提升價值主張的清晰度（客戶契合度為%d%%），並確保其專業聲譽具有持久的影響力（聲譽穩固性為%d%%）。目標是從單純的被認知，過渡到能產生共鳴的影響力。</p>",
		opening, challenge, brand, fit, stick)
	fmt.Fprintf(&b,
		"<p style='line-height:1.7; text-align:justify; margin-bottom: 1em;'>在%s的投資環境中，一個引人入勝的故事至關重要。%d%%的敘事信心表明，該人士的核心專業敘事元素是強而有力的。關鍵似乎在於解決規模化模型的問題，目前為%d%%。 "+
			"這表明，優化「如何做」——即闡明一個清晰、可複製的成長模型——可能會顯著提升投資者吸引力。令人鼓舞的是，%d%%的信任憑證得分顯示，過往的記錄是堅實的資產，為建構未來引人注目的敘事提供了信譽基礎。</p>",
		in.Country, conf, scale, trust)
	fmt.Fprintf(&b,
		"<p style='line-height:1.7; text-align:justify; margin-bottom: 1em;'>策略的最終評判標準是執行力。%d%%的合作準備得分，標誌著強大的協作能力——這是吸引特定類型高水準合作夥伴或投資者時的關鍵要素。 "+
			"此外，%d%%的高階通路使用率揭示了提升品牌定位的未開發潛力。再加上%d%%的穩固領導形象，訊息非常明確：具備這樣背景的專業人士已被視為可信。下一步是策略性地佔據能反映其全部價值的高影響力空間。</p>",
		partn, premium, leader)
	b.WriteString(
		"<p style='line-height:1.7; text-align:justify; margin-bottom: 1em;'>將這樣的資料與新加坡、馬來西亞和台灣的同行進行基準比較，不僅是衡量現狀，更是為了揭示策略優勢。 " +
			"數據表明，驅動這一策略焦點的專業直覺通常是正確的。對於處於此階段的專業人士來說，前進的道路通常在於資訊、模型和市場的精準對齊。本分析可作為一個框架，為這類專業人士將當前氣勢轉化為決定性突破提供所需的清晰度。</p>")
	return b.String()
}
