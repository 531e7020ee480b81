package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katachat/investor-insight-agent/internal/models"
)

func TestAssembleVariants(t *testing.T) {
	p := models.IntakeProfile{FullName: "Test", Country: "台灣"}.Normalize()
	f := Fragments{
		Chart:     "<div>chart</div>",
		Narrative: "<p>narrative</p>",
		Advice:    "<p>advice</p>",
	}

	doc := Assemble(p, f)

	// display keeps the fragment order: title, chart, narrative, advice, footer
	idx := func(s string) int { return strings.Index(doc.Display, s) }
	require.NotEqual(t, -1, idx(Title))
	assert.Less(t, idx(Title), idx(f.Chart))
	assert.Less(t, idx(f.Chart), idx(f.Narrative))
	assert.Less(t, idx(f.Narrative), idx(f.Advice))
	assert.Less(t, idx(f.Advice), idx("📊 AI 洞察來源"))

	// display contains no banner and no submission summary
	assert.NotContains(t, doc.Display, "新的投資者洞察提交")
	assert.NotContains(t, doc.Display, "📝 提交摘要")

	// full is banner + summary + display, nothing more
	assert.True(t, strings.HasSuffix(doc.Full, doc.Display))
	assert.True(t, strings.HasPrefix(doc.Full, "<h1>新的投資者洞察提交</h1>"))
	assert.Contains(t, doc.Full, "📝 提交摘要")
}

func TestSummaryBlockListsEveryField(t *testing.T) {
	p := models.IntakeProfile{
		FullName: "Test", Email: "t@example.com",
	}.Normalize()

	doc := Assemble(p, Fragments{})

	assert.Contains(t, doc.Full, "<strong>英文姓名:</strong> Test")
	assert.Contains(t, doc.Full, "<strong>電子信箱:</strong> t@example.com")
	// unset fields show the sentinel
	assert.Contains(t, doc.Full, "<strong>中文姓名:</strong> N/A")
	assert.Equal(t, 14, strings.Count(doc.Full, "<strong>")-strings.Count(doc.Display, "<strong>"))
}
