package report

import (
	"fmt"
	"strings"
)

var barColors = [3]string{"#8C52FF", "#5E9CA0", "#F2A900"}

// RenderChart renders the metric categories as an inline-styled HTML bar
// chart: one title per category, one horizontal bar per label, bar width
// equal to the percentage value. Colors cycle through the palette by slot.
func RenderChart(metrics []Category) string {
	var b strings.Builder
	for _, m := range metrics {
		fmt.Fprintf(&b, "<strong style='font-size:18px;color:#333;'>%s</strong><br>", m.Title)
		for j, label := range m.Labels {
			val := m.Values[j]
			fmt.Fprintf(&b,
				"<div style='display:flex;align-items:center;margin-bottom:8px;'>"+
					"<span style='width:120px; font-size: 15px;'>%s</span>"+
					"<div style='flex:1;background:#eee;border-radius:5px;overflow:hidden;'>"+
					"<div style='width:%d%%;height:14px;background:%s;'></div></div>"+
					"<span style='margin-left:10px; font-size: 15px;'>%d%%</span></div>",
				label, val, barColors[j%len(barColors)], val)
		}
		b.WriteString("<br>")
	}
	return b.String()
}
