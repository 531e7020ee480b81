package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katachat/investor-insight-agent/internal/advisor"
	"github.com/katachat/investor-insight-agent/internal/mailer"
	"github.com/katachat/investor-insight-agent/internal/models"
	"github.com/katachat/investor-insight-agent/internal/report"
)

// Bound on the whole pipeline, mostly spent in the text-generation call.
const requestTimeout = 45 * time.Second

const internalErrMsg = "發生內部伺服器錯誤。"

// Handler runs the report synthesis pipeline for one submission at a time.
// Collaborators are fixed at startup; per-request state lives on the stack.
type Handler struct {
	gen    advisor.TextGenerator
	sender mailer.Sender
	rng    report.Source
	now    func() time.Time
}

func NewHandler(gen advisor.TextGenerator, sender mailer.Sender) *Handler {
	return &Handler{
		gen:    gen,
		sender: sender,
		rng:    report.ProcessSource{},
		now:    time.Now,
	}
}

// HandleAnalyze processes one intake submission: normalize, generate
// metrics, compose the report, email the full variant (best-effort), return
// the display variant. Email failure never affects the response.
func (h *Handler) HandleAnalyze(c *gin.Context) {
	var intake models.IntakeProfile
	if err := c.ShouldBindJSON(&intake); err != nil {
		zap.L().Error("failed to decode intake submission", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalErrMsg})
		return
	}

	email := intake.Email
	if email == "" {
		email = "沒有提供電子郵件"
	}
	log := zap.L().With(
		zap.String("request_id", uuid.NewString()),
		zap.String("email", email),
	)
	log.Info("received intake submission")

	profile := intake.Normalize()

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	age := report.ComputeAge(profile.DOB, h.now())
	metrics := report.GenerateMetrics(h.rng)

	narrative := report.ComposeNarrative(report.NarrativeInput{
		Age:           age,
		Experience:    profile.Experience,
		Industry:      profile.Industry,
		Country:       profile.Country,
		Challenge:     profile.Challenge,
		Context:       profile.Context,
		TargetProfile: profile.TargetProfile,
		Metrics:       metrics,
	}, h.rng)

	advice := advisor.TipsBlock(ctx, h.gen, profile.Country, profile.Industry, profile.Experience)

	doc := report.Assemble(profile, report.Fragments{
		Chart:     report.RenderChart(metrics),
		Narrative: narrative,
		Advice:    advice,
	})

	if err := h.sender.Send("新的投資者洞察: "+profile.FullName, doc.Full); err != nil {
		log.Error("email delivery failed", zap.Error(err))
	} else {
		log.Info("email sent")
	}

	c.JSON(http.StatusOK, gin.H{"html_result": doc.Display})
}
