package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFillsMissingFields(t *testing.T) {
	p := IntakeProfile{FullName: "Test", Country: "台灣"}
	n := p.Normalize()

	assert.Equal(t, "Test", n.FullName)
	assert.Equal(t, "台灣", n.Country)
	assert.Equal(t, NotAvailable, n.ChineseName)
	assert.Equal(t, NotAvailable, n.DOB)
	assert.Equal(t, NotAvailable, n.Email)

	// original untouched
	assert.Empty(t, p.DOB)
}

func TestSummaryRowsCoverEveryField(t *testing.T) {
	p := IntakeProfile{
		FullName: "Test", ChineseName: "測試", DOB: "1990-05-10",
		ContactNumber: "0912345678", Company: "Acme", Role: "CEO",
		Country: "台灣", Experience: "5", Industry: "科技",
		Challenge: "尋求新資金", Context: "ctx", TargetProfile: "tp",
		Advisor: "adv", Email: "t@example.com",
	}.Normalize()

	rows := p.SummaryRows()
	require.Len(t, rows, 14)
	assert.Equal(t, SummaryRow{"英文姓名", "Test"}, rows[0])
	assert.Equal(t, SummaryRow{"電子信箱", "t@example.com"}, rows[13])
	for _, r := range rows {
		assert.NotEmpty(t, r.Label)
		assert.NotEmpty(t, r.Value)
	}
}
