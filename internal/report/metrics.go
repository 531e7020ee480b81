package report

// Category is one named group of three labeled percentage scores. It drives
// both the chart and the narrative.
type Category struct {
	Title  string
	Labels [3]string
	Values [3]int
}

type bounds struct{ lo, hi int }

// Fixed category layout; bounds are inclusive and differ per slot.
var categorySpecs = [3]struct {
	title  string
	labels [3]string
	bounds [3]bounds
}{
	{
		title:  "市場定位",
		labels: [3]string{"品牌認知", "客戶契合", "聲譽穩固"},
		bounds: [3]bounds{{70, 90}, {65, 85}, {70, 90}},
	},
	{
		title:  "投資者吸引力",
		labels: [3]string{"敘事信心", "規模化模型", "信任憑證"},
		bounds: [3]bounds{{70, 85}, {60, 80}, {75, 90}},
	},
	{
		title:  "策略執行力",
		labels: [3]string{"合作準備", "高階通路", "領導形象"},
		bounds: [3]bounds{{65, 85}, {65, 85}, {75, 90}},
	},
}

// GenerateMetrics draws a fresh set of the three report categories. Nothing
// but the random source influences the values; every request gets its own
// draw.
func GenerateMetrics(src Source) []Category {
	out := make([]Category, len(categorySpecs))
	for i, spec := range categorySpecs {
		cat := Category{Title: spec.title, Labels: spec.labels}
		for j, b := range spec.bounds {
			cat.Values[j] = b.lo + src.IntN(b.hi-b.lo+1)
		}
		out[i] = cat
	}
	return out
}
