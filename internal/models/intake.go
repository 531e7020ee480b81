package models

// Sentinel used for every intake field the submitter left out.
const NotAvailable = "N/A"

// IntakeProfile is one submitted investor/advisee profile. Every field is an
// optional string; Normalize fills gaps with the N/A sentinel so downstream
// formatting never branches on missing data.
type IntakeProfile struct {
	FullName      string `json:"fullName"`
	ChineseName   string `json:"chineseName"`
	DOB           string `json:"dob"`
	ContactNumber string `json:"contactNumber"`
	Company       string `json:"company"`
	Role          string `json:"role"`
	Country       string `json:"country"`
	Experience    string `json:"experience"`
	Industry      string `json:"industry"`
	Challenge     string `json:"challenge"`
	Context       string `json:"context"`
	TargetProfile string `json:"targetProfile"`
	Advisor       string `json:"advisor"`
	Email         string `json:"email"`
}

// Normalize returns a copy with every empty field set to the N/A sentinel.
// The original submission is left untouched.
func (p IntakeProfile) Normalize() IntakeProfile {
	fields := []*string{
		&p.FullName, &p.ChineseName, &p.DOB, &p.ContactNumber,
		&p.Company, &p.Role, &p.Country, &p.Experience,
		&p.Industry, &p.Challenge, &p.Context, &p.TargetProfile,
		&p.Advisor, &p.Email,
	}
	for _, f := range fields {
		if *f == "" {
			*f = NotAvailable
		}
	}
	return p
}

// SummaryRow is one labeled line of the submission-summary block.
type SummaryRow struct {
	Label string
	Value string
}

// SummaryRows lists every raw intake field with its Traditional Chinese
// label, in the order the emailed summary presents them.
func (p IntakeProfile) SummaryRows() []SummaryRow {
	return []SummaryRow{
		{"英文姓名", p.FullName},
		{"中文姓名", p.ChineseName},
		{"出生日期", p.DOB},
		{"聯絡電話", p.ContactNumber},
		{"國家/地區", p.Country},
		{"公司名稱", p.Company},
		{"目前職位", p.Role},
		{"經驗年資", p.Experience},
		{"所屬產業", p.Industry},
		{"主要挑戰", p.Challenge},
		{"背景簡介", p.Context},
		{"目標畫像", p.TargetProfile},
		{"推薦人", p.Advisor},
		{"電子信箱", p.Email},
	}
}
